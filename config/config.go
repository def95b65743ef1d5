package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Export ExportConfig `mapstructure:"export"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// ExportConfig tunes the export pipeline.
type ExportConfig struct {
	// OutputDir is where exported files are delivered.
	OutputDir string `mapstructure:"output_dir"`
	// Quality is the JPEG compression quality (1-100).
	Quality int `mapstructure:"quality"`
	// Scale is the rasterization supersampling factor.
	Scale float64 `mapstructure:"scale"`
	// SettleDelay is the pause before rasterizing, letting the view settle.
	SettleDelay time.Duration `mapstructure:"settle_delay"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BRS_ (Bancomeme
// Receipt Studio). Nested keys use underscore: BRS_SERVER_PORT,
// BRS_EXPORT_OUTPUT_DIR, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("export.output_dir", "./exports")
	v.SetDefault("export.quality", 92)
	v.SetDefault("export.scale", 2.0)
	v.SetDefault("export.settle_delay", "300ms")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: BRS_EXPORT_QUALITY -> export.quality
	v.SetEnvPrefix("BRS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Export.Quality < 1 || cfg.Export.Quality > 100 {
		return nil, fmt.Errorf("export.quality must be in [1, 100], got %d", cfg.Export.Quality)
	}
	if cfg.Export.Scale <= 0 {
		return nil, fmt.Errorf("export.scale must be positive, got %v", cfg.Export.Scale)
	}

	return &cfg, nil
}
