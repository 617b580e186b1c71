// Package alpaca fetches historical bars from the Alpaca market data API.
package alpaca

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"ohlc-data/internal/credentials"
	"ohlc-data/internal/model"
	"ohlc-data/internal/provider"
	"ohlc-data/internal/request"
)

const name = "Alpaca"

// Earliest is where an open-ended window starts; Alpaca history begins in 2016.
var Earliest = time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)

// barsClient is the part of *marketdata.Client the adapter uses.
type barsClient interface {
	GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error)
}

// Options configure the market data client.
type Options struct {
	BaseURL    string        // empty means the SDK default
	Feed       string        // iex | sip | otc
	Adjustment string        // raw | split | dividend | all
	Timeout    time.Duration // overall HTTP timeout
}

// Provider is a DataProvider backed by Alpaca historical bars.
type Provider struct {
	client     barsClient
	feed       marketdata.Feed
	adjustment marketdata.Adjustment
	now        func() time.Time
	log        *slog.Logger
}

var _ provider.DataProvider = (*Provider)(nil)

// New builds a Provider from confirmed credentials. It never reads credential state itself.
func New(creds credentials.Credentials, opts Options) (*Provider, error) {
	if creds.APIKey == "" || creds.SecretKey == "" {
		return nil, fmt.Errorf("alpaca: API key and secret key are required")
	}
	clientOpts := marketdata.ClientOpts{
		APIKey:     creds.APIKey,
		APISecret:  creds.SecretKey,
		HTTPClient: newHTTPClient(opts.Timeout),
	}
	if opts.BaseURL != "" {
		clientOpts.BaseURL = opts.BaseURL
	}
	return newWithClient(marketdata.NewClient(clientOpts), opts), nil
}

func newWithClient(c barsClient, opts Options) *Provider {
	feed := strings.ToLower(strings.TrimSpace(opts.Feed))
	if feed == "" {
		feed = "iex"
	}
	adj := strings.ToLower(strings.TrimSpace(opts.Adjustment))
	if adj == "" {
		adj = "raw"
	}
	return &Provider{
		client:     c,
		feed:       marketdata.Feed(feed),
		adjustment: marketdata.Adjustment(adj),
		now:        time.Now,
		log:        slog.Default().With("provider", name),
	}
}

// GetName returns provider name
func (p *Provider) GetName() string { return name }

// Close releases nothing; the SDK client holds no open connections between calls.
func (p *Provider) Close() error { return nil }

// Fetch requests bars for one symbol over the query's window.
func (p *Provider) Fetch(ctx context.Context, q provider.Query) ([]model.Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, provider.Wrap(name, q.Symbol, err)
	}
	tf, err := timeFrame(q.Interval)
	if err != nil {
		return nil, provider.Wrap(name, q.Symbol, err)
	}
	start, end := provider.Window(q, p.now().UTC(), Earliest)
	p.log.Debug("get bars", "symbol", q.Symbol, "timeframe", tf.String(), "start", start, "end", end, "feed", p.feed)

	raw, err := p.client.GetBars(q.Symbol, marketdata.GetBarsRequest{
		TimeFrame:  tf,
		Adjustment: p.adjustment,
		Start:      start,
		End:        end,
		Feed:       p.feed,
	})
	if err != nil {
		return nil, provider.Wrap(name, q.Symbol, fmt.Errorf("GetBars: %w", err))
	}
	if len(raw) == 0 {
		return nil, provider.Wrap(name, q.Symbol, provider.ErrNoData)
	}

	bars := make([]model.Bar, 0, len(raw))
	for _, b := range raw {
		bars = append(bars, model.Bar{
			Timestamp: b.Timestamp,
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			Volume:    int64(b.Volume),
		})
	}
	model.SortBars(bars)
	return bars, nil
}

func timeFrame(iv request.Interval) (marketdata.TimeFrame, error) {
	switch iv {
	case request.Interval5m:
		return marketdata.NewTimeFrame(5, marketdata.Min), nil
	case request.Interval15m:
		return marketdata.NewTimeFrame(15, marketdata.Min), nil
	case request.Interval30m:
		return marketdata.NewTimeFrame(30, marketdata.Min), nil
	case request.Interval1h:
		return marketdata.NewTimeFrame(1, marketdata.Hour), nil
	case request.Interval4h:
		return marketdata.NewTimeFrame(4, marketdata.Hour), nil
	case request.Interval1d:
		return marketdata.NewTimeFrame(1, marketdata.Day), nil
	default:
		return marketdata.TimeFrame{}, fmt.Errorf("unsupported interval %q", iv)
	}
}
