// Package config loads mstlab settings from a YAML file, MSTLAB_* environment
// variables and built-in defaults, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix (MSTLAB_LOG_LEVEL, ...).
const EnvPrefix = "MSTLAB"

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	Engine EngineConfig `mapstructure:"engine"`
}

// LogConfig configures the zap logger built by package observability.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // console | json
	File       string `mapstructure:"file"`   // empty disables the rotating file sink
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// ServerConfig configures the HTTP collaborator.
type ServerConfig struct {
	Listen     string        `mapstructure:"listen"`
	RateLimit  float64       `mapstructure:"rate_limit"` // requests per second per client IP
	Burst      int           `mapstructure:"burst"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// EngineConfig configures boundary validation in front of the graph engine.
type EngineConfig struct {
	// MinWeight is the smallest edge weight accepted at the boundary.
	MinWeight float64 `mapstructure:"min_weight"`
	// MaxWeight is the largest accepted weight; 0 disables the ceiling.
	MaxWeight float64 `mapstructure:"max_weight"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("server.listen", ":8080")
	v.SetDefault("server.rate_limit", 20.0)
	v.SetDefault("server.burst", 40)
	v.SetDefault("server.session_ttl", "30m")
	v.SetDefault("engine.min_weight", 1.0)
	v.SetDefault("engine.max_weight", 100.0)
}

// New returns a viper instance wired for mstlab: defaults, env prefix and
// the config file search path (cfgFile if set, else ./mstlab.yaml or
// ~/.mstlab/mstlab.yaml).
func New(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".mstlab"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("mstlab")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the configuration through v. A missing config file is not an
// error when no explicit file was requested.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFile is New followed by Load.
func LoadFile(cfgFile string) (*Config, error) {
	return Load(New(cfgFile))
}

// Default returns the configuration made only of defaults.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)

	return &cfg
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want console or json)", ErrInvalidConfig, c.Log.Format)
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("%w: server.rate_limit must be > 0", ErrInvalidConfig)
	}
	if c.Server.Burst < 1 {
		return fmt.Errorf("%w: server.burst must be >= 1", ErrInvalidConfig)
	}
	if c.Engine.MaxWeight != 0 && c.Engine.MaxWeight < c.Engine.MinWeight {
		return fmt.Errorf("%w: engine.max_weight below engine.min_weight", ErrInvalidConfig)
	}
	if c.Server.SessionTTL <= 0 {
		return fmt.Errorf("%w: server.session_ttl must be > 0", ErrInvalidConfig)
	}

	return nil
}
