package app

import (
	"context"
	"fmt"
	"io"

	"ohlc-data/internal/download"
	"ohlc-data/internal/provider"
	"ohlc-data/internal/request"
	"ohlc-data/internal/saver"
)

// RunDownload fetches every symbol of req in order and prints a per-symbol summary to out.
func RunDownload(ctx context.Context, cfg *Config, dp provider.DataProvider, s saver.BarSaver, req request.Download, out io.Writer) download.Summary {
	r := &download.Runner{
		Provider: dp,
		Saver:    s,
		Root:     cfg.DataDir,
		Report:   cfg.WriteReport,
	}
	sum := r.Run(ctx, req)
	PrintSummary(out, sum)
	return sum
}

// PrintSummary writes one line per symbol, then the totals.
func PrintSummary(out io.Writer, sum download.Summary) {
	for _, res := range sum.Succeeded {
		fmt.Fprintf(out, "OK    %-5s %6d bars  %s\n", res.Symbol, res.Bars, res.Path)
	}
	for _, res := range sum.Failed {
		fmt.Fprintf(out, "FAIL  %-5s %v\n", res.Symbol, res.Err)
	}
	fmt.Fprintf(out, "%d succeeded, %d failed (%s)\n", len(sum.Succeeded), len(sum.Failed), sum.Provider)
}
