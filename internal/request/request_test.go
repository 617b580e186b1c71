package request

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbols(t *testing.T) {
	got, err := ParseSymbols(" aapl, msft  tsla,,AAPL ")
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT", "TSLA"}, got)

	_, err = ParseSymbols("   ")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = ParseSymbols("AAPL ZZZZZZ")
	var ie *InvalidError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "ZZZZZZ", ie.Value)
}

func TestParseSource(t *testing.T) {
	for in, want := range map[string]Source{
		"1": SourceAlpaca, "alpaca": SourceAlpaca, " Alpaca ": SourceAlpaca,
		"2": SourceYahoo, "yahoo": SourceYahoo, "yfinance": SourceYahoo,
	} {
		got, err := ParseSource(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseSource("3")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestBuild(t *testing.T) {
	d, err := Build(Input{
		Symbols:  []string{" aapl "},
		Source:   "2",
		Period:   "1y",
		Interval: "1d",
	}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL"}, d.Symbols)
	assert.Equal(t, SourceYahoo, d.Source)
	assert.Equal(t, Period("1y"), d.Period)
	assert.Equal(t, Interval1d, d.Interval)
	assert.True(t, d.Range.IsZero())
}

func TestBuildRejects(t *testing.T) {
	base := Input{Symbols: []string{"AAPL"}, Source: "alpaca", Period: "1y", Interval: "1d"}
	tests := []struct {
		name  string
		edit  func(*Input)
		field string
	}{
		{"no symbols", func(in *Input) { in.Symbols = nil }, "symbols"},
		{"bad source", func(in *Input) { in.Source = "bloomberg" }, "source"},
		{"bad period", func(in *Input) { in.Period = "3w" }, "period"},
		{"period without count", func(in *Input) { in.Period = "xy" }, "period"},
		{"bad interval", func(in *Input) { in.Interval = "2h" }, "interval"},
		{"no window", func(in *Input) { in.Period = "" }, "period"},
		{"start after end", func(in *Input) { in.Start, in.End = "2024-02-01", "2024-01-01" }, "start"},
		{"start only", func(in *Input) { in.Start = "2024-02-01" }, "start"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.edit(&in)
			_, err := Build(in, time.UTC)
			var ie *InvalidError
			require.True(t, errors.As(err, &ie), "got %v", err)
			assert.Equal(t, tt.field, ie.Field)
		})
	}
}

func TestBuildDateRangeWithoutPeriod(t *testing.T) {
	d, err := Build(Input{
		Symbols:  []string{"spy"},
		Source:   "1",
		Interval: "1h",
		Start:    "2024-01-02 09:30:00",
		End:      "2024-01-05 16:00:00",
	}, time.UTC)
	require.NoError(t, err)
	assert.True(t, d.Period.IsZero())
	require.NotNil(t, d.Range.Start)
	assert.Equal(t, 9, d.Range.Start.Hour())
}

func TestForSymbol(t *testing.T) {
	d := Download{Symbols: []string{"AAPL", "MSFT"}, Period: "1y", Interval: Interval1d}
	one := d.ForSymbol("MSFT")
	assert.Equal(t, []string{"MSFT"}, one.Symbols)
	assert.Equal(t, []string{"AAPL", "MSFT"}, d.Symbols)
}

func TestLoadSymbolsFromFile(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "symbols.txt")
	require.NoError(t, os.WriteFile(txt, []byte("# watchlist\naapl\nmsft, tsla\n\naapl\n"), 0o644))
	got, err := LoadSymbolsFromFile(txt)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT", "TSLA"}, got)

	js := filepath.Join(dir, "symbols.json")
	require.NoError(t, os.WriteFile(js, []byte(`["spy","qqq"]`), 0o644))
	got, err = LoadSymbolsFromFile(js)
	require.NoError(t, err)
	assert.Equal(t, []string{"SPY", "QQQ"}, got)

	_, err = LoadSymbolsFromFile(filepath.Join(dir, "symbols.csv"))
	assert.Error(t, err)
}
