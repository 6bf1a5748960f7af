// Package timerange converts between HH:MM:SS text and seconds and keeps a
// start/end text pair consistent with a range slider.
package timerange

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	secondsPerHour   = 3600
	secondsPerMinute = 60

	// Zero is what Fix falls back to for text it can't repair.
	Zero = "00:00:00"

	// MaxSeconds bounds what Fix produces, larger input saturates.
	MaxSeconds = math.MaxInt32
)

// FormatError is returned by Parse for text that isn't exactly HH:MM:SS.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time '%s': %s", e.Input, e.Reason)
}

// TimeRange is a [Start, End) window in whole seconds.
type TimeRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Valid reports whether 0 <= Start < End <= duration.
func (r TimeRange) Valid(duration int) bool {
	return r.Start >= 0 && r.Start < r.End && r.End <= duration
}

func (r TimeRange) Length() int {
	return r.End - r.Start
}

func (r TimeRange) String() string {
	return Format(r.Start) + "-" + Format(r.End)
}

// Format renders seconds as zero-padded HH:MM:SS. Hours are not bounded.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / secondsPerHour
	m := (seconds % secondsPerHour) / secondsPerMinute
	s := seconds % secondsPerMinute
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Parse converts HH:MM:SS into seconds. Components are not range checked,
// so "00:90:00" is 5400.
func Parse(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, &FormatError{Input: s, Reason: fmt.Sprintf("expected 3 components, got %d", len(parts))}
	}

	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, &FormatError{Input: s, Reason: fmt.Sprintf("component '%s' is not an integer", p)}
		}
		vals[i] = v
	}

	return vals[0]*secondsPerHour + vals[1]*secondsPerMinute + vals[2], nil
}

// Fix repairs user input into canonical HH:MM:SS. Input with more than three
// components or a non-digit component becomes Zero. Missing higher-order
// components are taken as 0 and overflowing minutes/seconds carry over.
// Totals above MaxSeconds are capped.
func Fix(s string) string {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 3 {
		return Zero
	}

	vals := make([]int64, 0, 3)
	for _, p := range parts {
		if !isDigits(p) {
			return Zero
		}
		// all digits, so the only possible error is out of range
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil || v > MaxSeconds {
			v = MaxSeconds
		}
		vals = append(vals, v)
	}
	for len(vals) < 3 {
		vals = append([]int64{0}, vals...)
	}

	total := vals[0]*secondsPerHour + vals[1]*secondsPerMinute + vals[2]
	if total > MaxSeconds {
		total = MaxSeconds
	}

	return Format(int(total))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
