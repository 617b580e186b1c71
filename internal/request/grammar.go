package request

import (
	"strconv"
	"strings"
	"time"
)

// maxPeriodLen caps the whole token: "99d" is accepted, "100d" is not.
const maxPeriodLen = 3

// Period is a lookback window such as "1y" or "30d". The zero value means
// no period: the date range governs the window.
type Period string

// Interval is one of the preset bar sizes.
type Interval string

const (
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
	Interval4h  Interval = "4h"
	Interval1d  Interval = "1d"
)

var intervalDurations = map[Interval]time.Duration{
	Interval5m:  5 * time.Minute,
	Interval15m: 15 * time.Minute,
	Interval30m: 30 * time.Minute,
	Interval1h:  time.Hour,
	Interval4h:  4 * time.Hour,
	Interval1d:  24 * time.Hour,
}

// Intervals returns the accepted intervals, shortest first.
func Intervals() []Interval {
	return []Interval{Interval5m, Interval15m, Interval30m, Interval1h, Interval4h, Interval1d}
}

// ValidatePeriod accepts "" or text of at most three characters ending in y or d.
// The numeric part is not checked here; see Period.Lookback.
func ValidatePeriod(text string) (Period, error) {
	if text == "" {
		return "", nil
	}
	if len(text) > maxPeriodLen {
		return "", invalid("period", text, "at most 3 characters, e.g. 1y or 30d")
	}
	switch text[len(text)-1] {
	case 'y', 'd':
		return Period(text), nil
	default:
		return "", invalid("period", text, "valid periods: [number]y or [number]d")
	}
}

// ValidateInterval accepts exactly one of 5m, 15m, 30m, 1h, 4h, 1d.
func ValidateInterval(text string) (Interval, error) {
	iv := Interval(text)
	if _, ok := intervalDurations[iv]; !ok {
		return "", invalid("interval", text, "valid intervals: "+intervalList())
	}
	return iv, nil
}

func intervalList() string {
	all := Intervals()
	names := make([]string, len(all))
	for i, iv := range all {
		names[i] = string(iv)
	}
	return strings.Join(names, ", ")
}

// IsZero reports whether no period was given.
func (p Period) IsZero() bool { return p == "" }

// Lookback returns end moved back by the period. ok is false when the
// period is empty or its count is not a positive integer.
func (p Period) Lookback(end time.Time) (start time.Time, ok bool) {
	if len(p) < 2 {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(string(p[:len(p)-1]))
	if err != nil || n <= 0 {
		return time.Time{}, false
	}
	switch p[len(p)-1] {
	case 'y':
		return end.AddDate(-n, 0, 0), true
	case 'd':
		return end.AddDate(0, 0, -n), true
	}
	return time.Time{}, false
}

// Duration is the span of one bar.
func (iv Interval) Duration() time.Duration { return intervalDurations[iv] }

// Daily reports whether bars are one day long; daily intervals take date-only boundaries.
func (iv Interval) Daily() bool { return iv == Interval1d }

func (iv Interval) String() string { return string(iv) }
