package neo

import (
	"strconv"
	"strings"
)

// Quantity is a measurement that may be unknown. The NASA data sets leave
// diameters, distances and velocities blank or malformed often enough that
// "unknown" has to be a first-class value rather than a crash.
type Quantity struct {
	Value float64
	Known bool
}

// ParseQuantity converts a raw field into a Quantity. Empty or unparseable
// input yields an unknown Quantity; it never returns an error.
func ParseQuantity(s string) Quantity {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quantity{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Quantity{}
	}
	return Quantity{Value: v, Known: true}
}

// KnownQuantity returns a Quantity holding v.
func KnownQuantity(v float64) Quantity {
	return Quantity{Value: v, Known: true}
}

// AtLeast reports whether the quantity is known and >= min.
// An unknown quantity never satisfies a bound.
func (q Quantity) AtLeast(min float64) bool {
	return q.Known && q.Value >= min
}

// AtMost reports whether the quantity is known and <= max.
func (q Quantity) AtMost(max float64) bool {
	return q.Known && q.Value <= max
}

// String renders the value with three decimals, or "unknown".
func (q Quantity) String() string {
	if !q.Known {
		return "unknown"
	}
	return strconv.FormatFloat(q.Value, 'f', 3, 64)
}

// MarshalJSON emits the numeric value, or null when unknown.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.Known {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, q.Value, 'g', -1, 64), nil
}
