package yahoo

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ohlc-data/internal/model"
	"ohlc-data/internal/provider"
	"ohlc-data/internal/request"
)

func chartBar(ts time.Time, o, h, l, c float64, v int) finance.ChartBar {
	return finance.ChartBar{
		Timestamp: int(ts.Unix()),
		Open:      decimal.NewFromFloat(o),
		High:      decimal.NewFromFloat(h),
		Low:       decimal.NewFromFloat(l),
		Close:     decimal.NewFromFloat(c),
		Volume:    v,
	}
}

type recorder struct {
	params *chart.Params
	bars   []finance.ChartBar
	err    error
}

func (r *recorder) get(p *chart.Params) ([]finance.ChartBar, error) {
	r.params = p
	return r.bars, r.err
}

func TestFetchDaily(t *testing.T) {
	d1 := time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	r := &recorder{bars: []finance.ChartBar{
		chartBar(d2, 2, 3, 1, 2.5, 20),
		chartBar(d1, 1, 2, 0.5, 1.5, 10),
		chartBar(d1.AddDate(0, 0, 2), 0, 0, 0, 0, 0),
	}}
	p := newWithChart(r.get)
	p.now = func() time.Time { return time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC) }

	bars, err := p.Fetch(context.Background(), provider.Query{Symbol: "AAPL", Period: "1y", Interval: request.Interval1d})
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.Equal(t, d1, bars[0].Timestamp)
	assert.Equal(t, 2.5, bars[1].Close)
	assert.Equal(t, int64(20), bars[1].Volume)

	assert.Equal(t, "AAPL", r.params.Symbol)
	assert.Equal(t, datetime.Interval("1d"), r.params.Interval)
	require.NotNil(t, r.params.Start)
	assert.Equal(t, 2023, r.params.Start.Year)
}

func TestFetch4hAggregatesHourly(t *testing.T) {
	base := time.Date(2024, 1, 2, 13, 0, 0, 0, time.UTC)
	r := &recorder{bars: []finance.ChartBar{
		chartBar(base, 10, 11, 9, 10.5, 100),
		chartBar(base.Add(time.Hour), 10.5, 12, 10, 11, 50),
		chartBar(base.Add(2*time.Hour), 11, 11.5, 10.8, 11.2, 25),
		chartBar(base.Add(3*time.Hour), 11.2, 11.4, 11, 11.3, 5),
	}}
	p := newWithChart(r.get)

	bars, err := p.Fetch(context.Background(), provider.Query{Symbol: "SPY", Period: "30d", Interval: request.Interval4h})
	require.NoError(t, err)
	assert.Equal(t, datetime.Interval("1h"), r.params.Interval)
	require.Len(t, bars, 2)

	assert.Equal(t, time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), bars[0].Timestamp)
	assert.Equal(t, model.Bar{Timestamp: bars[0].Timestamp, Open: 10, High: 12, Low: 9, Close: 11.2, Volume: 175}, bars[0])
	assert.Equal(t, time.Date(2024, 1, 2, 16, 0, 0, 0, time.UTC), bars[1].Timestamp)
	assert.Equal(t, int64(5), bars[1].Volume)
}

func TestFetchErrors(t *testing.T) {
	p := newWithChart((&recorder{err: errors.New("Not Found")}).get)
	_, err := p.Fetch(context.Background(), provider.Query{Symbol: "ZZZZZ", Period: "1y", Interval: request.Interval1d})
	var pe *provider.Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "ZZZZZ", pe.Symbol)

	p = newWithChart((&recorder{}).get)
	_, err = p.Fetch(context.Background(), provider.Query{Symbol: "AAPL", Period: "1y", Interval: request.Interval1d})
	assert.True(t, errors.Is(err, provider.ErrNoData))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Fetch(ctx, provider.Query{Symbol: "AAPL", Period: "1y", Interval: request.Interval1d})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, aggregate(nil, 4*time.Hour))
}

func TestNewInstallsHTTPClientOnce(t *testing.T) {
	clientOnce = sync.Once{}
	orig := setHTTPClient
	t.Cleanup(func() {
		setHTTPClient = orig
		clientOnce = sync.Once{}
	})
	var got []time.Duration
	setHTTPClient = func(c *http.Client) { got = append(got, c.Timeout) }

	New(5 * time.Second)
	New(30 * time.Second)
	New(0)
	assert.Equal(t, []time.Duration{5 * time.Second}, got)
}
