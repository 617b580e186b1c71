package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"ohlc-data/internal/layout"
	"ohlc-data/internal/saver"
)

// Config holds application configuration from env, optionally merged over a YAML file named by OHLC_CONFIG.
type Config struct {
	DataDir          string        `mapstructure:"data_dir"`
	SaveFormat       string        `mapstructure:"save_format"`
	LogLevel         string        `mapstructure:"log_level"`  // debug | info | warn | error
	LogFormat        string        `mapstructure:"log_format"` // text | json
	EnvDir           string        `mapstructure:"env_dir"`    // directory holding the .env credential file
	Timezone         string        `mapstructure:"timezone"`   // location for typed date boundaries
	AlpacaDataURL    string        `mapstructure:"alpaca_data_url"`
	AlpacaFeed       string        `mapstructure:"alpaca_feed"`
	AlpacaAdjustment string        `mapstructure:"alpaca_adjustment"`
	HTTPTimeout      time.Duration `mapstructure:"http_timeout"`
	WriteReport      bool          `mapstructure:"write_report"`

	location *time.Location
}

var defaults = map[string]any{
	"data_dir":          layout.DefaultRoot,
	"save_format":       "csv",
	"log_level":         "info",
	"log_format":        "text",
	"env_dir":           ".",
	"timezone":          "UTC",
	"alpaca_data_url":   "",
	"alpaca_feed":       "iex",
	"alpaca_adjustment": "raw",
	"http_timeout":      "60s",
	"write_report":      true,
}

// LoadConfig reads config from environment, over the optional OHLC_CONFIG file, over defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	if path := os.Getenv("OHLC_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	if saver.NewBarSaver(c.SaveFormat) == nil {
		return fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, parquet, json)", c.SaveFormat)
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	c.location = loc
	return nil
}

// Location is where typed start/end boundaries are interpreted. Defaults to UTC.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}
