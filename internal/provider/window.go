package provider

import "time"

// Window resolves the concrete [start, end] for q.
// An explicit start wins; otherwise the period counts back from end; otherwise
// start falls back to earliest. A missing end means now.
func Window(q Query, now, earliest time.Time) (start, end time.Time) {
	end = now
	if q.End != nil {
		end = *q.End
	}
	switch {
	case q.Start != nil:
		start = *q.Start
	case !q.Period.IsZero():
		if s, ok := q.Period.Lookback(end); ok {
			start = s
		} else {
			start = earliest
		}
	default:
		start = earliest
	}
	return start, end
}
