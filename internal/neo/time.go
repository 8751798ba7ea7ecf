package neo

import (
	"time"
)

// Layouts accepted for close approach timestamps. The JPL close approach
// data uses calendar dates ("2020-Jan-01 06:00"); cleaned data sets use the
// numeric form, sometimes without minutes.
var approachTimeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15",
	"2006-Jan-02 15:04",
	"2006-Jan-02 15",
}

// ParseApproachTime parses a compact date-hour string into a UTC timestamp.
// Input the data set can't express (empty or malformed) yields the zero time
// rather than an error, matching the loaders' degrade-don't-fail policy.
func ParseApproachTime(s string) time.Time {
	for _, layout := range approachTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatApproachTime renders a timestamp at minute precision, the inverse of
// ParseApproachTime for the numeric layout.
func FormatApproachTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}
