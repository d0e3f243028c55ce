package scheduling

import (
	"fmt"
	"time"
)

const clockLayout = "15:04"

// Interval is a half-open time range [Start, End) in minutes since
// midnight. End is exclusive, so back-to-back bookings never conflict.
type Interval struct {
	Start int
	End   int
}

// NewInterval parses "15:04" clock strings and rejects zero-length or
// inverted ranges.
func NewInterval(start, end string) (Interval, error) {
	s, err := parseClock(start)
	if err != nil {
		return Interval{}, err
	}

	e, err := parseClock(end)
	if err != nil {
		return Interval{}, err
	}

	if s >= e {
		return Interval{}, fmt.Errorf("start time %s must be before end time %s", start, end)
	}

	return Interval{Start: s, End: e}, nil
}

// Overlaps tests half-open overlap: [s1,e1) and [s2,e2) overlap iff
// s1 < e2 and s2 < e1. Touching intervals (e1 == s2) do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

func (i Interval) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", i.Start/60, i.Start%60, i.End/60, i.End%60)
}

func parseClock(value string) (int, error) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM: %w", value, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
