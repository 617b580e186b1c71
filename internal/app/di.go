package app

import (
	"fmt"
	"os"

	"ohlc-data/internal/credentials"
	"ohlc-data/internal/prompt"
	"ohlc-data/internal/saver"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideBarSaver creates BarSaver from config (for Wire).
// Returns error if SaveFormat is not supported.
func ProvideBarSaver(cfg *Config) (saver.BarSaver, error) {
	s := saver.NewBarSaver(cfg.SaveFormat)
	if s == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, parquet, json)", cfg.SaveFormat)
	}
	return s, nil
}

// ProvideCredentialStore returns the .env store under EnvDir (for Wire).
func ProvideCredentialStore(cfg *Config) *credentials.FileStore {
	return credentials.NewFileStore(cfg.EnvDir)
}

// ProvidePrompter reads from stdin and writes to stdout (for Wire).
func ProvidePrompter() *prompt.Prompter {
	return prompt.New(os.Stdin, os.Stdout)
}
