// Package yahoo fetches historical bars from Yahoo Finance through finance-go's chart API.
package yahoo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"ohlc-data/internal/model"
	"ohlc-data/internal/provider"
	"ohlc-data/internal/request"
)

const name = "Yahoo"

// Earliest is where an open-ended window starts.
var Earliest = time.Unix(0, 0).UTC()

// chartFunc runs one chart query and drains its iterator.
type chartFunc func(p *chart.Params) ([]finance.ChartBar, error)

// Provider is a DataProvider backed by Yahoo Finance.
type Provider struct {
	chart chartFunc
	now   func() time.Time
	log   *slog.Logger
}

var _ provider.DataProvider = (*Provider)(nil)

var (
	clientOnce    sync.Once
	setHTTPClient = finance.SetHTTPClient
)

// New creates a Yahoo provider. finance-go keeps its HTTP client package-wide,
// so only the first timeout given in a process is installed.
func New(timeout time.Duration) *Provider {
	if timeout > 0 {
		clientOnce.Do(func() {
			setHTTPClient(&http.Client{Timeout: timeout})
		})
	}
	return newWithChart(getChart)
}

func newWithChart(fn chartFunc) *Provider {
	return &Provider{
		chart: fn,
		now:   time.Now,
		log:   slog.Default().With("provider", name),
	}
}

func getChart(p *chart.Params) ([]finance.ChartBar, error) {
	iter := chart.Get(p)
	var bars []finance.ChartBar
	for iter.Next() {
		if b := iter.Bar(); b != nil {
			bars = append(bars, *b)
		}
	}
	return bars, iter.Err()
}

// GetName returns provider name
func (p *Provider) GetName() string { return name }

// Close has nothing to release.
func (p *Provider) Close() error { return nil }

// Fetch requests bars for one symbol. 4h bars are built from 1h bars because Yahoo has no 4h interval.
func (p *Provider) Fetch(ctx context.Context, q provider.Query) ([]model.Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, provider.Wrap(name, q.Symbol, err)
	}
	upstream, err := upstreamInterval(q.Interval)
	if err != nil {
		return nil, provider.Wrap(name, q.Symbol, err)
	}
	start, end := provider.Window(q, p.now().UTC(), Earliest)
	p.log.Debug("get chart", "symbol", q.Symbol, "interval", upstream, "start", start, "end", end)

	raw, err := p.chart(&chart.Params{
		Symbol:   q.Symbol,
		Interval: upstream,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
	})
	if err != nil {
		return nil, provider.Wrap(name, q.Symbol, fmt.Errorf("chart: %w", err))
	}

	bars := convertBars(raw)
	if q.Interval == request.Interval4h {
		bars = aggregate(bars, q.Interval.Duration())
	}
	if len(bars) == 0 {
		return nil, provider.Wrap(name, q.Symbol, provider.ErrNoData)
	}
	return bars, nil
}

func upstreamInterval(iv request.Interval) (datetime.Interval, error) {
	switch iv {
	case request.Interval5m, request.Interval15m, request.Interval30m, request.Interval1h, request.Interval1d:
		return datetime.Interval(iv), nil
	case request.Interval4h:
		return datetime.Interval(request.Interval1h), nil
	default:
		return "", fmt.Errorf("unsupported interval %q", iv)
	}
}

// convertBars drops null bars (holidays, halts), where every price is zero.
func convertBars(raw []finance.ChartBar) []model.Bar {
	bars := make([]model.Bar, 0, len(raw))
	for _, b := range raw {
		if b.Open.IsZero() && b.High.IsZero() && b.Low.IsZero() && b.Close.IsZero() {
			continue
		}
		bars = append(bars, model.Bar{
			Timestamp: time.Unix(int64(b.Timestamp), 0).UTC(),
			Open:      b.Open.InexactFloat64(),
			High:      b.High.InexactFloat64(),
			Low:       b.Low.InexactFloat64(),
			Close:     b.Close.InexactFloat64(),
			Volume:    int64(b.Volume),
		})
	}
	model.SortBars(bars)
	return bars
}
