package provider

import (
	"context"
	"time"

	"ohlc-data/internal/model"
	"ohlc-data/internal/request"
)

// Query is one fetch: a single symbol with the request's window.
type Query struct {
	Symbol   string
	Period   request.Period
	Interval request.Interval
	Start    *time.Time
	End      *time.Time
}

// QueryFor builds the Query for symbol from a validated request.
func QueryFor(d request.Download, symbol string) Query {
	return Query{
		Symbol:   symbol,
		Period:   d.Period,
		Interval: d.Interval,
		Start:    d.Range.Start,
		End:      d.Range.End,
	}
}

// DataProvider is the abstraction used by the application when accessing a data source.
// Fetch returns bars ordered by timestamp; failures come back as *Error.
type DataProvider interface {
	GetName() string
	Fetch(ctx context.Context, q Query) ([]model.Bar, error)
	Close() error
}
