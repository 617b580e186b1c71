//go:build wireinject
// +build wireinject

package main

import (
	"ohlc-data/internal/app"
	"ohlc-data/internal/credentials"
	"ohlc-data/internal/prompt"
	"ohlc-data/internal/saver"

	"github.com/google/wire"
)

// App holds application dependencies built by Wire.
// The DataProvider is not part of it: the source is only known once input is read.
type App struct {
	Config   *app.Config
	Store    credentials.Store
	Saver    saver.BarSaver
	Prompter *prompt.Prompter
}

// InitializeApp builds App (Config, credential store, saver, prompter) via Wire.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideBarSaver,
		app.ProvideCredentialStore,
		app.ProvidePrompter,
		wire.Bind(new(credentials.Store), new(*credentials.FileStore)),
		wire.Struct(new(App), "Config", "Store", "Saver", "Prompter"),
	)
	return nil, nil
}
