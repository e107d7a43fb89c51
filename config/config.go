// Package config loads machine settings from a YAML file, a .env file and
// HEARTREELS_* environment variables, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/heartreels/constants"
)

// Environment variables understood by ApplyEnv
const (
	EnvConfigPath = "HEARTREELS_CONFIG"
	EnvAssetDir   = "HEARTREELS_ASSETS"
	EnvDebug      = "HEARTREELS_DEBUG"
	EnvMute       = "HEARTREELS_MUTE"
	EnvLogDir     = "HEARTREELS_LOG_DIR"
)

// Config is the full application configuration
type Config struct {
	Machine     MachineConfig     `yaml:"machine"`
	Celebration CelebrationConfig `yaml:"celebration"`
	Assets      AssetConfig       `yaml:"assets"`
	Audio       AudioConfig       `yaml:"audio"`
	Classic     ClassicConfig     `yaml:"classic"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// MachineConfig describes the symbol strip, the jackpot table and reel physics
type MachineConfig struct {
	Symbols             []string   `yaml:"symbols"`
	WinningCombinations [][]string `yaml:"winning_combinations"`

	SymbolHeight           float64 `yaml:"symbol_height"`
	ReelHeight             float64 `yaml:"reel_height"`
	MinSpeed               float64 `yaml:"min_speed"`
	MaxSpeed               float64 `yaml:"max_speed"`
	MinSlowDownFrames      int     `yaml:"min_slow_down_frames"`
	SlowDownJitterFrames   int     `yaml:"slow_down_jitter_frames"`
	DecelerationRate       float64 `yaml:"deceleration_rate"`
	FinalDecelerationRate  float64 `yaml:"final_deceleration_rate"`
	FinalDecelerationOnset float64 `yaml:"final_deceleration_onset"`
	StopSpeed              float64 `yaml:"stop_speed"`
}

// CelebrationConfig times the jackpot sequence
type CelebrationConfig struct {
	BlinkDuration   time.Duration `yaml:"blink_duration"`
	BlinkInterval   time.Duration `yaml:"blink_interval"`
	FallingDuration time.Duration `yaml:"falling_duration"`
	SpawnChance     float64       `yaml:"spawn_chance"`
	MaxParticles    int           `yaml:"max_particles"`
	FadeDistance    float64       `yaml:"fade_distance"`
	PruneMargin     float64       `yaml:"prune_margin"`
}

// AssetConfig maps symbols to sprite files or text glyphs. An empty Dir
// selects the built-in sprites.
type AssetConfig struct {
	Dir     string            `yaml:"dir"`
	Sprites map[string]string `yaml:"sprites"`
	Glyphs  map[string]string `yaml:"glyphs"`
}

// AudioConfig toggles sound
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig controls the debug log file
type LoggingConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

// ClassicConfig is the fruit machine variant
type ClassicConfig struct {
	StartingBalance  decimal.Decimal  `yaml:"starting_balance"`
	MinBet           decimal.Decimal  `yaml:"min_bet"`
	BetStep          decimal.Decimal  `yaml:"bet_step"`
	SpinDuration     time.Duration    `yaml:"spin_duration"`
	WinFlashDuration time.Duration    `yaml:"win_flash_duration"`
	Symbols          []string         `yaml:"symbols"`
	Payouts          map[string]int64 `yaml:"payouts"` // Triple of symbol pays bet x multiplier
}

// Default returns the stock heart machine configuration
func Default() Config {
	return Config{
		Machine: MachineConfig{
			Symbols:                append([]string(nil), constants.DefaultSymbols...),
			WinningCombinations:    copyCombinations(constants.DefaultWinningCombinations),
			SymbolHeight:           constants.SymbolHeight,
			ReelHeight:             constants.ReelHeight,
			MinSpeed:               constants.MinSpinSpeed,
			MaxSpeed:               constants.MaxSpinSpeed,
			MinSlowDownFrames:      constants.MinSlowDownFrames,
			SlowDownJitterFrames:   constants.SlowDownJitterFrames,
			DecelerationRate:       constants.DecelerationRate,
			FinalDecelerationRate:  constants.FinalDecelerationRate,
			FinalDecelerationOnset: constants.FinalDecelerationOnset,
			StopSpeed:              constants.StopSpeed,
		},
		Celebration: CelebrationConfig{
			BlinkDuration:   constants.JackpotBlinkDuration,
			BlinkInterval:   constants.JackpotBlinkInterval,
			FallingDuration: constants.HeartsFallingDuration,
			SpawnChance:     constants.HeartSpawnChance,
			MaxParticles:    constants.MaxHearts,
			FadeDistance:    constants.HeartFadeDistance,
			PruneMargin:     constants.HeartPruneMargin,
		},
		Assets: AssetConfig{
			Sprites: map[string]string{
				constants.SymbolBubu:  "bubu.png",
				constants.SymbolDudu:  "dudu.png",
				constants.SymbolFries: "fries.png",
			},
			Glyphs: map[string]string{
				constants.SymbolHeart: "❤",
			},
		},
		Audio: AudioConfig{Enabled: true},
		Classic: ClassicConfig{
			StartingBalance:  decimal.NewFromInt(1000),
			MinBet:           decimal.NewFromInt(10),
			BetStep:          decimal.NewFromInt(10),
			SpinDuration:     2 * time.Second,
			WinFlashDuration: time.Second,
			Symbols:          []string{"🍒", "🍊", "🍇", "7️⃣", "💎"},
			Payouts: map[string]int64{
				"🍒":   3,
				"🍊":   5,
				"🍇":   7,
				"7️⃣": 10,
				"💎":   20,
			},
		},
		Logging: LoggingConfig{Dir: "logs"},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from a .env file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %q: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from HEARTREELS_* variables
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvAssetDir); v != "" {
		cfg.Assets.Dir = v
	}
	if v := os.Getenv(EnvLogDir); v != "" {
		cfg.Logging.Dir = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvDebug, v, err)
		}
		cfg.Logging.Debug = debug
	}
	if v := os.Getenv(EnvMute); v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMute, v, err)
		}
		cfg.Audio.Enabled = !mute
	}
	return nil
}

// EnvOr returns the variable's value or fallback when unset
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func copyCombinations(in [][]string) [][]string {
	out := make([][]string, len(in))
	for i, combo := range in {
		out[i] = append([]string(nil), combo...)
	}
	return out
}
