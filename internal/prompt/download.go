package prompt

import (
	"fmt"
	"strings"
	"time"

	"ohlc-data/internal/credentials"
	"ohlc-data/internal/request"
)

// DownloadInput walks the operator through symbols, source, period, interval and date range.
// Each answer is validated as it is given, so the returned Input passes request.Build
// unless the window as a whole is rejected.
func (p *Prompter) DownloadInput(loc *time.Location) (request.Input, error) {
	var in request.Input

	mode, err := p.Choose("Download data for:", []string{"One symbol", "Multiple symbols"})
	if err != nil {
		return in, err
	}
	label := "Enter symbol: "
	if mode == 1 {
		label = "Enter symbols (separated by spaces or commas): "
	}
	if _, err := p.Until(label, func(s string) error {
		symbols, err := request.ParseSymbols(s)
		if err != nil {
			return err
		}
		if mode == 0 && len(symbols) != 1 {
			return fmt.Errorf("enter exactly one symbol")
		}
		in.Symbols = symbols
		return nil
	}); err != nil {
		return in, err
	}

	source, err := p.Choose("Choose source:", []string{"Alpaca", "Yahoo Finance"})
	if err != nil {
		return in, err
	}
	in.Source = []string{string(request.SourceAlpaca), string(request.SourceYahoo)}[source]

	var period request.Period
	if in.Period, err = p.Until("Period (e.g. 1y, 30d; blank to use a date range): ", func(s string) error {
		var err error
		if period, err = request.ValidatePeriod(s); err != nil || period.IsZero() {
			return err
		}
		return request.CheckWindow(period, request.Range{})
	}); err != nil {
		return in, err
	}

	intervals := request.Intervals()
	names := make([]string, len(intervals))
	for i, iv := range intervals {
		names[i] = string(iv)
	}
	picked, err := p.Choose("Interval:", names)
	if err != nil {
		return in, err
	}
	in.Interval = names[picked]

	hint := request.FormatHint(intervals[picked])
	optional := ""
	if in.Period != "" {
		optional = ", optional"
	}
	for {
		if in.Start, err = p.Line(fmt.Sprintf("Start (%s) leave blank if none: ", hint)); err != nil {
			return in, err
		}
		if in.End, err = p.Line(fmt.Sprintf("End (%s%s) leave blank if none: ", hint, optional)); err != nil {
			return in, err
		}
		in.Start, in.End = strings.TrimSpace(in.Start), strings.TrimSpace(in.End)
		rng, err := request.ParseRange(in.Start, in.End, intervals[picked], loc)
		if err != nil {
			p.Printf("%v\n", err)
			continue
		}
		if period.IsZero() && rng.IsZero() {
			p.Printf("no period given: enter at least an end date\n")
			continue
		}
		if err := request.CheckWindow(period, rng); err != nil {
			p.Printf("%v\n", err)
			continue
		}
		return in, nil
	}
}

// Credentials asks for an Alpaca key pair.
func (p *Prompter) Credentials() (credentials.Credentials, error) {
	var c credentials.Credentials
	required := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("a value is required")
		}
		return nil
	}
	key, err := p.Until("Enter Alpaca API key: ", required)
	if err != nil {
		return c, err
	}
	secret, err := p.Until("Enter Alpaca SECRET key: ", required)
	if err != nil {
		return c, err
	}
	c.APIKey, c.SecretKey = strings.TrimSpace(key), strings.TrimSpace(secret)
	return c, nil
}
