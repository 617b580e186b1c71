package yahoo

import (
	"time"

	"github.com/shopspring/decimal"

	"ohlc-data/internal/model"
)

type bucket struct {
	start                  time.Time
	open, high, low, close decimal.Decimal
	volume                 int64
}

// aggregate folds sorted bars into buckets of width step aligned on UTC midnight.
// open is the first bar's open, close the last bar's close, high/low the extremes, volume the sum.
func aggregate(bars []model.Bar, step time.Duration) []model.Bar {
	var out []model.Bar
	var cur *bucket
	flush := func() {
		if cur == nil {
			return
		}
		out = append(out, model.Bar{
			Timestamp: cur.start,
			Open:      cur.open.InexactFloat64(),
			High:      cur.high.InexactFloat64(),
			Low:       cur.low.InexactFloat64(),
			Close:     cur.close.InexactFloat64(),
			Volume:    cur.volume,
		})
	}
	for _, b := range bars {
		start := b.Timestamp.UTC().Truncate(step)
		high := decimal.NewFromFloat(b.High)
		low := decimal.NewFromFloat(b.Low)
		if cur == nil || !cur.start.Equal(start) {
			flush()
			cur = &bucket{
				start:  start,
				open:   decimal.NewFromFloat(b.Open),
				high:   high,
				low:    low,
				close:  decimal.NewFromFloat(b.Close),
				volume: b.Volume,
			}
			continue
		}
		if high.GreaterThan(cur.high) {
			cur.high = high
		}
		if low.LessThan(cur.low) {
			cur.low = low
		}
		cur.close = decimal.NewFromFloat(b.Close)
		cur.volume += b.Volume
	}
	flush()
	return out
}
