// Package download runs a validated request against one provider, one symbol at a time.
package download

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"ohlc-data/internal/layout"
	"ohlc-data/internal/model"
	"ohlc-data/internal/provider"
	"ohlc-data/internal/request"
	"ohlc-data/internal/saver"
)

// Job is one fetch unit: a symbol and the request it came from.
type Job struct {
	Symbol  string
	Request request.Download
}

// Result is the outcome of one job.
type Result struct {
	Symbol string
	Path   string
	Bars   int
	Err    error
}

// OK reports whether the job wrote its file.
func (r Result) OK() bool { return r.Err == nil }

// Summary collects per-symbol outcomes of one run, in input order.
type Summary struct {
	RunID     string
	Provider  string
	Started   time.Time
	Finished  time.Time
	Succeeded []Result
	Failed    []Result
}

// Jobs fans a request out into one job per symbol, keeping input order.
func Jobs(req request.Download) []Job {
	jobs := make([]Job, 0, len(req.Symbols))
	for _, s := range req.Symbols {
		jobs = append(jobs, Job{Symbol: s, Request: req.ForSymbol(s)})
	}
	return jobs
}

// Runner wires a provider to a saver under a data root.
type Runner struct {
	Provider provider.DataProvider
	Saver    saver.BarSaver
	Root     string
	Report   bool // write .lastrun.*.json under Root
	Logger   *slog.Logger
}

// Run processes every symbol sequentially. A failing symbol is recorded and the rest still run.
// Existing files are overwritten without confirmation.
func (r *Runner) Run(ctx context.Context, req request.Download) Summary {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sum := Summary{
		RunID:    uuid.NewString(),
		Provider: r.Provider.GetName(),
		Started:  time.Now().UTC(),
	}
	logger = logger.With("run_id", sum.RunID, "provider", sum.Provider)

	jobs := Jobs(req)
	logger.Info("download start", "symbols", len(jobs), "interval", req.Interval, "period", string(req.Period))
	for i, job := range jobs {
		logger.Info("fetch", "n", fmt.Sprintf("%d/%d", i+1, len(jobs)), "symbol", job.Symbol)
		res := r.runJob(ctx, job)
		if res.OK() {
			logger.Info("saved", "symbol", res.Symbol, "bars", res.Bars, "path", res.Path)
			sum.Succeeded = append(sum.Succeeded, res)
		} else {
			logger.Error("download fail", "symbol", res.Symbol, "error", res.Err)
			sum.Failed = append(sum.Failed, res)
		}
	}
	sum.Finished = time.Now().UTC()
	if len(sum.Failed) > 0 {
		logger.Warn("download done", "success", len(sum.Succeeded), "failed", len(sum.Failed), "reasons", FailedReasons(sum.Failed))
	} else {
		logger.Info("download done", "success", len(sum.Succeeded), "failed", 0)
	}

	if r.Report {
		if err := writeRunReport(r.Root, sum); err != nil {
			logger.Warn("could not write run report", "error", err)
		}
	}
	return sum
}

func (r *Runner) runJob(ctx context.Context, job Job) Result {
	res := Result{Symbol: job.Symbol}
	req := job.Request

	// Resolve the destination first so an unmapped interval never reaches the provider.
	path, err := layout.FilePath(r.Root, job.Symbol, string(req.Period), string(req.Interval), r.Saver.Extension())
	if err != nil {
		res.Err = err
		return res
	}
	res.Path = path

	bars, err := r.Provider.Fetch(ctx, provider.QueryFor(req, job.Symbol))
	if err != nil {
		res.Err = provider.Wrap(r.Provider.GetName(), job.Symbol, err)
		return res
	}
	if len(bars) == 0 {
		res.Err = provider.Wrap(r.Provider.GetName(), job.Symbol, provider.ErrNoData)
		return res
	}
	model.SortBars(bars)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		res.Err = fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		return res
	}
	if err := r.Saver.Save(bars, path); err != nil {
		res.Err = fmt.Errorf("save %s: %w", path, err)
		return res
	}
	res.Bars = len(bars)
	return res
}
