package request

import (
	"strings"
	"time"
	"unicode"
)

const maxSymbolLen = 5

// Source selects the upstream provider.
type Source string

const (
	SourceAlpaca Source = "alpaca"
	SourceYahoo  Source = "yahoo"
)

// ParseSource accepts a menu number or a provider name.
func ParseSource(text string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "1", "alpaca":
		return SourceAlpaca, nil
	case "2", "yahoo", "yfinance":
		return SourceYahoo, nil
	default:
		return "", invalid("source", text, "choose 1 (alpaca) or 2 (yahoo)")
	}
}

// ParseSymbols splits text on commas and whitespace, trims and upper-cases
// each symbol, drops empties and duplicates, and keeps input order.
func ParseSymbols(text string) ([]string, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	return normalizeSymbols(fields)
}

func normalizeSymbols(raw []string) ([]string, error) {
	seen := make(map[string]bool, len(raw))
	symbols := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		if len(s) > maxSymbolLen {
			return nil, invalid("symbol", s, "symbols are at most 5 characters")
		}
		seen[s] = true
		symbols = append(symbols, s)
	}
	if len(symbols) == 0 {
		return nil, invalid("symbols", "", "at least one symbol is required")
	}
	return symbols, nil
}

// Input is raw operator input, one field per prompt or flag.
type Input struct {
	Symbols  []string
	Source   string
	Period   string
	Interval string
	Start    string
	End      string
}

// Download is a validated request. Symbols has at least one entry.
type Download struct {
	Symbols  []string
	Source   Source
	Period   Period
	Interval Interval
	Range    Range
}

// Build validates in and returns a normalized Download. Every failure matches ErrInvalidInput.
func Build(in Input, loc *time.Location) (Download, error) {
	symbols, err := normalizeSymbols(in.Symbols)
	if err != nil {
		return Download{}, err
	}
	source, err := ParseSource(in.Source)
	if err != nil {
		return Download{}, err
	}
	period, err := ValidatePeriod(in.Period)
	if err != nil {
		return Download{}, err
	}
	interval, err := ValidateInterval(in.Interval)
	if err != nil {
		return Download{}, err
	}
	rng, err := ParseRange(in.Start, in.End, interval, loc)
	if err != nil {
		return Download{}, err
	}
	if err := CheckWindow(period, rng); err != nil {
		return Download{}, err
	}
	return Download{
		Symbols:  symbols,
		Source:   source,
		Period:   period,
		Interval: interval,
		Range:    rng,
	}, nil
}

// CheckWindow rejects a request with neither period nor dates, a period without a
// positive count, and a start after the end.
func CheckWindow(p Period, r Range) error {
	if p.IsZero() && r.IsZero() {
		return invalid("period", "", "give a period or a date range")
	}
	if !p.IsZero() {
		if _, ok := p.Lookback(time.Now()); !ok {
			return invalid("period", string(p), "the count before y or d must be a positive number")
		}
	}
	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return invalid("start", r.Start.Format(DateTimeLayout), "start must not be after end")
	}
	return nil
}

// ForSymbol returns a copy of d narrowed to one symbol, used when fanning out a multi-symbol request.
func (d Download) ForSymbol(symbol string) Download {
	d.Symbols = []string{symbol}
	return d
}
