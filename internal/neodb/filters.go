package neodb

import (
	"time"

	"neo-explorer/internal/neo"
)

// Filter is one predicate over a close approach. Query applies the
// conjunction of every filter it is given. Filters that reach through to the
// NEO evaluate to false for unlinked approaches instead of failing, and
// unknown quantities never satisfy a bound.
type Filter func(*neo.CloseApproach) bool

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// OnDate matches approaches that occur on the given UTC calendar date.
func OnDate(date time.Time) Filter {
	return func(ca *neo.CloseApproach) bool {
		return sameDate(ca.Time, date)
	}
}

// StartDate matches approaches on or after the given UTC calendar date.
func StartDate(date time.Time) Filter {
	y, m, d := date.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return func(ca *neo.CloseApproach) bool {
		return !ca.Time.Before(start)
	}
}

// EndDate matches approaches on or before the given UTC calendar date
// (inclusive of the whole day).
func EndDate(date time.Time) Filter {
	y, m, d := date.UTC().Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return func(ca *neo.CloseApproach) bool {
		return ca.Time.Before(end)
	}
}

// MinDistance matches approaches at least min astronomical units away.
func MinDistance(min float64) Filter {
	return func(ca *neo.CloseApproach) bool {
		return ca.Distance.AtLeast(min)
	}
}

// MaxDistance matches approaches at most max astronomical units away.
func MaxDistance(max float64) Filter {
	return func(ca *neo.CloseApproach) bool {
		return ca.Distance.AtMost(max)
	}
}

// MinVelocity matches approaches at least min km/s fast.
func MinVelocity(min float64) Filter {
	return func(ca *neo.CloseApproach) bool {
		return ca.Velocity.AtLeast(min)
	}
}

// MaxVelocity matches approaches at most max km/s fast.
func MaxVelocity(max float64) Filter {
	return func(ca *neo.CloseApproach) bool {
		return ca.Velocity.AtMost(max)
	}
}

// MinDiameter matches approaches whose NEO has a known diameter of at least
// min kilometers.
func MinDiameter(min float64) Filter {
	return func(ca *neo.CloseApproach) bool {
		return ca.NEO != nil && ca.NEO.Diameter.AtLeast(min)
	}
}

// MaxDiameter matches approaches whose NEO has a known diameter of at most
// max kilometers.
func MaxDiameter(max float64) Filter {
	return func(ca *neo.CloseApproach) bool {
		return ca.NEO != nil && ca.NEO.Diameter.AtMost(max)
	}
}

// Hazardous matches approaches whose NEO's potentially-hazardous flag equals
// want.
func Hazardous(want bool) Filter {
	return func(ca *neo.CloseApproach) bool {
		return ca.NEO != nil && ca.NEO.Hazardous == want
	}
}
