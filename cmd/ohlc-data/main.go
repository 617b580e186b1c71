package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ohlc-data/internal/app"
	"ohlc-data/internal/layout"
	"ohlc-data/internal/request"
	"ohlc-data/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

type flags struct {
	symbols     string
	symbolsFile string
	source      string
	period      string
	interval    string
	start       string
	end         string
}

func (f flags) interactive() bool {
	return f.symbols == "" && f.symbolsFile == ""
}

func main() {
	var f flags
	flag.StringVar(&f.symbols, "symbols", "", "symbols separated by commas or spaces (skips prompts)")
	flag.StringVar(&f.symbolsFile, "symbols-file", "", "file of symbols, .txt or .json (skips prompts)")
	flag.StringVar(&f.source, "source", "alpaca", "data source: alpaca | yahoo")
	flag.StringVar(&f.period, "period", "", "lookback period, e.g. 1y or 30d")
	flag.StringVar(&f.interval, "interval", "1d", "bar interval: 5m 15m 30m 1h 4h 1d")
	flag.StringVar(&f.start, "start", "", "start boundary, YYYY-MM-DD (1d) or YYYY-MM-DD HH:MM:SS")
	flag.StringVar(&f.end, "end", "", "end boundary, same format as -start")
	flag.Parse()

	os.Exit(run(f))
}

func run(f flags) int {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return 1
	}
	cfg := a.Config
	slog.SetDefault(slogx.New(os.Stderr, cfg.LogLevel, cfg.LogFormat))

	created, err := layout.Bootstrap(cfg.DataDir)
	if err != nil {
		slog.Error("failed to create data dir", "dir", cfg.DataDir, "error", err)
		return 1
	}
	if created {
		slog.Info("created data dir", "dir", cfg.DataDir)
	}

	in, err := readInput(a, f)
	if err != nil {
		slog.Error("failed to read input", "error", err)
		return 1
	}
	req, err := request.Build(in, cfg.Location())
	if err != nil {
		slog.Error("invalid request", "error", err)
		return 1
	}

	dp, err := app.CreateProvider(cfg, req.Source, a.Store, a.Prompter)
	if err != nil {
		slog.Error("failed to create data provider", "error", err)
		return 1
	}
	defer dp.Close()
	slog.Info("using data provider", "provider", dp.GetName(), "format", cfg.SaveFormat, "dir", cfg.DataDir)

	ctx, stop := interruptContext(context.Background())
	defer stop()

	sum := app.RunDownload(ctx, cfg, dp, a.Saver, req, os.Stdout)
	if len(sum.Failed) > 0 {
		return 1
	}
	return 0
}

// interruptContext is cancelled by the first SIGINT or SIGTERM, which lets the
// remaining symbols fail fast. The handler is then released so a second signal
// terminates the process even while an HTTP call is blocking.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()
	return ctx, stop
}

func readInput(a *App, f flags) (request.Input, error) {
	if f.interactive() {
		return a.Prompter.DownloadInput(a.Config.Location())
	}
	in := request.Input{
		Source:   f.source,
		Period:   f.period,
		Interval: f.interval,
		Start:    f.start,
		End:      f.end,
	}
	if f.symbolsFile != "" {
		symbols, err := request.LoadSymbolsFromFile(f.symbolsFile)
		if err != nil {
			return in, err
		}
		in.Symbols = append(in.Symbols, symbols...)
	}
	if f.symbols != "" {
		symbols, err := request.ParseSymbols(f.symbols)
		if err != nil {
			return in, err
		}
		in.Symbols = append(in.Symbols, symbols...)
	}
	return in, nil
}
