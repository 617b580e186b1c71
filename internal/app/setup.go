package app

import (
	"fmt"
	"log/slog"

	"ohlc-data/internal/credentials"
	"ohlc-data/internal/provider"
	"ohlc-data/internal/provider/alpaca"
	"ohlc-data/internal/provider/yahoo"
	"ohlc-data/internal/request"
)

// CredentialAsker captures a key pair from the operator.
type CredentialAsker interface {
	Credentials() (credentials.Credentials, error)
}

// CreateProvider creates the DataProvider for source. For Alpaca the store is
// checked once; when it is empty, ask is used to capture credentials, they are
// saved, and the adapter is built from the saved copy.
func CreateProvider(cfg *Config, source request.Source, store credentials.Store, ask CredentialAsker) (provider.DataProvider, error) {
	switch source {
	case request.SourceYahoo:
		return yahoo.New(cfg.HTTPTimeout), nil
	case request.SourceAlpaca:
		creds, err := ensureCredentials(store, ask)
		if err != nil {
			return nil, err
		}
		return alpaca.New(creds, alpaca.Options{
			BaseURL:    cfg.AlpacaDataURL,
			Feed:       cfg.AlpacaFeed,
			Adjustment: cfg.AlpacaAdjustment,
			Timeout:    cfg.HTTPTimeout,
		})
	default:
		return nil, fmt.Errorf("unsupported data provider: %s. Options: alpaca, yahoo", source)
	}
}

func ensureCredentials(store credentials.Store, ask CredentialAsker) (credentials.Credentials, error) {
	if !store.Exists() {
		if ask == nil {
			return credentials.Credentials{}, fmt.Errorf("alpaca credentials missing and no way to ask for them")
		}
		slog.Info("alpaca credentials not found, asking operator")
		c, err := ask.Credentials()
		if err != nil {
			return credentials.Credentials{}, fmt.Errorf("capture credentials: %w", err)
		}
		if err := store.Save(c); err != nil {
			return credentials.Credentials{}, fmt.Errorf("save credentials: %w", err)
		}
		slog.Info("credential file created")
	}
	c, err := store.Load()
	if err != nil {
		return credentials.Credentials{}, fmt.Errorf("load credentials: %w", err)
	}
	return c, nil
}
