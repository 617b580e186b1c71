package request

import "time"

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Range holds optional window boundaries. A nil Start means the provider's earliest data.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether neither boundary is set.
func (r Range) IsZero() bool { return r.Start == nil && r.End == nil }

// LayoutFor returns the boundary layout for iv: date-only for daily bars, date and time otherwise.
func LayoutFor(iv Interval) string {
	if iv.Daily() {
		return DateLayout
	}
	return DateTimeLayout
}

// FormatHint is the human-readable form of LayoutFor, used in prompts and errors.
func FormatHint(iv Interval) string {
	if iv.Daily() {
		return "YYYY-MM-DD"
	}
	return "YYYY-MM-DD HH:MM:SS"
}

// ParseRange parses optional start/end text in the layout that matches iv.
// A start without an end is rejected. start <= end is not checked here.
func ParseRange(startText, endText string, iv Interval, loc *time.Location) (Range, error) {
	if loc == nil {
		loc = time.UTC
	}
	layout := LayoutFor(iv)
	switch {
	case startText == "" && endText == "":
		return Range{}, nil
	case startText == "":
		end, err := parseBoundary("end", endText, layout, iv, loc)
		if err != nil {
			return Range{}, err
		}
		return Range{End: &end}, nil
	case endText == "":
		return Range{}, invalid("start", startText, "an end date must accompany a start date")
	default:
		start, err := parseBoundary("start", startText, layout, iv, loc)
		if err != nil {
			return Range{}, err
		}
		end, err := parseBoundary("end", endText, layout, iv, loc)
		if err != nil {
			return Range{}, err
		}
		return Range{Start: &start, End: &end}, nil
	}
}

func parseBoundary(field, text, layout string, iv Interval, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(layout, text, loc)
	if err != nil {
		return time.Time{}, invalid(field, text, "expected format "+FormatHint(iv))
	}
	return t, nil
}
