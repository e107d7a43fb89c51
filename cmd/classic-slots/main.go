package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/heartreels/audio"
	"github.com/lixenwraith/heartreels/classic"
	"github.com/lixenwraith/heartreels/config"
	"github.com/lixenwraith/heartreels/engine"
	"github.com/lixenwraith/heartreels/logging"
	"github.com/lixenwraith/heartreels/scene"
)

const logFileName = "classic-slots.log"

var (
	configFlag = flag.String("config", "", "YAML config file (default $"+config.EnvConfigPath+")")
	envFlag    = flag.String("env", ".env", "dotenv file to load")
	debugFlag  = flag.Bool("debug", false, "write debug logs to the log directory")
	muteFlag   = flag.Bool("mute", false, "start muted")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "classic-slots: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog, err := logging.Setup(cfg.Logging.Debug, cfg.Logging.Dir, logFileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "classic-slots: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		closeLog()
		fmt.Fprintf(os.Stderr, "classic-slots: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(*envFlag); err != nil {
		return config.Config{}, err
	}

	path := *configFlag
	if path == "" {
		path = config.EnvOr(config.EnvConfigPath, "")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return config.Config{}, err
	}
	if *debugFlag {
		cfg.Logging.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config:\n%w", err)
	}
	return cfg, nil
}

func run(cfg config.Config, logger *zap.Logger) error {
	screen, err := engine.NewScreen(false)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nCLASSIC-SLOTS CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(!cfg.Audio.Enabled)

	machine := classic.NewMachine(cfg.Classic, rand.New(rand.NewSource(time.Now().UnixNano())))
	game := engine.NewGame(screen, scene.NewClassicScene(machine, sound, logger), engine.NewMonotonicTimeProvider(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := game.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
