// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultConfigPath     = "configs/config.yaml"
	DefaultLogFile        = "logs/latency-wars.log"
	DefaultTitle          = "Latency Wars Trading Bots Dashboard"
	DefaultMaxRestarts    = 3
	DefaultRestartDelayMS = 500

	envPrefix = "LATENCYWARS"
)

var (
	ErrEmptyLogFile        = errors.New("log_file must not be empty")
	ErrInvalidMaxRestarts  = errors.New("invalid ui.max_restarts")
	ErrInvalidRestartDelay = errors.New("invalid ui.restart_delay_ms")
)

// Config holds application settings. Every key is optional.
type Config struct {
	DebugLogging bool     `mapstructure:"debug_logging"`
	LogFile      string   `mapstructure:"log_file"`
	Title        string   `mapstructure:"title"`
	AltScreen    bool     `mapstructure:"alt_screen"`
	UI           UIConfig `mapstructure:"ui"`
}

// UIConfig controls how the terminal program is restarted after a crash.
type UIConfig struct {
	MaxRestarts    int           `mapstructure:"max_restarts"`
	RestartDelayMS int           `mapstructure:"restart_delay_ms"`
	RestartDelay   time.Duration `mapstructure:"-"`
}

// Load reads configuration from path, a .env file in the working directory
// and LATENCYWARS_* environment variables, in increasing order of
// precedence. An empty path skips the file and uses defaults.
func Load(path string) (*Config, error) {
	// A missing .env is not an error.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config error: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	cfg.UI.RestartDelay = time.Duration(cfg.UI.RestartDelayMS) * time.Millisecond

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration without consulting the
// environment.
func Default() *Config {
	return &Config{
		LogFile:   DefaultLogFile,
		Title:     DefaultTitle,
		AltScreen: true,
		UI: UIConfig{
			MaxRestarts:    DefaultMaxRestarts,
			RestartDelayMS: DefaultRestartDelayMS,
			RestartDelay:   DefaultRestartDelayMS * time.Millisecond,
		},
	}
}

// setDefaults registers Default's values with v so file and env layers
// override them key by key.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("debug_logging", d.DebugLogging)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("title", d.Title)
	v.SetDefault("alt_screen", d.AltScreen)
	v.SetDefault("ui.max_restarts", d.UI.MaxRestarts)
	v.SetDefault("ui.restart_delay_ms", d.UI.RestartDelayMS)
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.LogFile) == "" {
		return ErrEmptyLogFile
	}
	if c.UI.MaxRestarts < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxRestarts, c.UI.MaxRestarts)
	}
	if c.UI.RestartDelayMS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRestartDelay, c.UI.RestartDelayMS)
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	return nil
}
