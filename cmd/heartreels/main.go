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

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/heartreels/asset"
	"github.com/lixenwraith/heartreels/audio"
	"github.com/lixenwraith/heartreels/config"
	"github.com/lixenwraith/heartreels/engine"
	"github.com/lixenwraith/heartreels/logging"
	"github.com/lixenwraith/heartreels/scene"
)

const logFileName = "heartreels.log"

var (
	configFlag = flag.String("config", "", "YAML config file (default $"+config.EnvConfigPath+")")
	envFlag    = flag.String("env", ".env", "dotenv file to load")
	assetsFlag = flag.String("assets", "", "PNG sprite directory, built-in art when empty")
	debugFlag  = flag.Bool("debug", false, "write debug logs to the log directory")
	muteFlag   = flag.Bool("mute", false, "start muted")
	seedFlag   = flag.Int64("seed", 0, "random seed, 0 uses the clock")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "heartreels: %v\n", err)
		os.Exit(2)
	}

	lib, err := asset.LoadLibrary(cfg.Assets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "heartreels: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Setup(cfg.Logging.Debug, cfg.Logging.Dir, logFileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "heartreels: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, lib, logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		closeLog()
		fmt.Fprintf(os.Stderr, "heartreels: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the YAML file, the .env file, environment
// variables and finally flags
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

	if *assetsFlag != "" {
		cfg.Assets.Dir = *assetsFlag
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

func run(cfg config.Config, lib *asset.Library, logger *zap.Logger) error {
	screen, err := engine.NewScreen(true)
	if err != nil {
		return err
	}

	// Restore the terminal before reporting a crash so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("crashed", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			fmt.Fprintf(os.Stderr, "\nHEARTREELS CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(!cfg.Audio.Enabled)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", zap.Int64("seed", seed), zap.Strings("symbols", cfg.Machine.Symbols))

	heart := scene.NewHeartScene(cfg, lib, rand.New(rand.NewSource(seed)), sound, logger)
	game := engine.NewGame(screen, heart, engine.NewMonotonicTimeProvider(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := game.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
