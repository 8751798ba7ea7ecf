// Package neo holds the entity model for near-Earth objects and their close
// approaches to Earth. Constructors take the raw string fields produced by
// the loaders and normalize every malformed value to an explicit "unknown"
// instead of failing, since the NASA data sets are full of gaps.
package neo

import (
	"fmt"
	"time"
)

// NearEarthObject is a single NEO: a unique primary designation, an optional
// IAU name, an optional diameter in kilometers, and a potentially-hazardous
// flag. Approaches starts empty and is populated when a database links the
// two data sets.
type NearEarthObject struct {
	Designation string
	Name        string // "" when the object has no IAU name
	Diameter    Quantity
	Hazardous   bool
	Approaches  []*CloseApproach
}

// NewNearEarthObject builds a NEO from raw CSV fields. An empty name stays
// empty, an unparseable diameter becomes unknown, and hazardous is true only
// for the explicit "Y" marker.
func NewNearEarthObject(designation, name, diameter, hazardous string) *NearEarthObject {
	return &NearEarthObject{
		Designation: designation,
		Name:        name,
		Diameter:    ParseQuantity(diameter),
		Hazardous:   hazardous == "Y",
	}
}

// Fullname returns "designation (name)", or just the designation for
// unnamed objects.
func (o *NearEarthObject) Fullname() string {
	if o.Name == "" {
		return o.Designation
	}
	return fmt.Sprintf("%s (%s)", o.Designation, o.Name)
}

// Serialize produces the flat export mapping for this NEO. The key names are
// a contract with the CSV/JSON writers.
func (o *NearEarthObject) Serialize() map[string]any {
	return map[string]any{
		"designation":           o.Designation,
		"name":                  o.Name,
		"diameter_km":           o.Diameter,
		"potentially_hazardous": o.Hazardous,
	}
}

func (o *NearEarthObject) String() string {
	h := "is not"
	if o.Hazardous {
		h = "is"
	}
	return fmt.Sprintf("NEO %s has a diameter of %s km and %s potentially hazardous",
		o.Fullname(), o.Diameter, h)
}

// CloseApproach is one recorded event of an NEO passing near Earth: the UTC
// time of closest approach, the nominal distance in astronomical units, and
// the relative velocity in km/s.
//
// Designation is the foreign key carried by the raw data; once a database
// links the data sets, NEO points directly at the owning object and stays
// nil only for approaches whose designation matched nothing.
type CloseApproach struct {
	Designation string
	Time        time.Time
	Distance    Quantity
	Velocity    Quantity
	NEO         *NearEarthObject
}

// NewCloseApproach builds a close approach from raw JSON fields, normalizing
// malformed distance and velocity values to unknown.
func NewCloseApproach(designation, timestamp, distance, velocity string) *CloseApproach {
	return &CloseApproach{
		Designation: designation,
		Time:        ParseApproachTime(timestamp),
		Distance:    ParseQuantity(distance),
		Velocity:    ParseQuantity(velocity),
	}
}

// TimeStr returns the approach time formatted at minute precision. The input
// data carries no seconds, so neither does the display form.
func (ca *CloseApproach) TimeStr() string {
	return FormatApproachTime(ca.Time)
}

// Serialize produces the flat export mapping for this approach. The key
// names are a contract with the CSV/JSON writers.
func (ca *CloseApproach) Serialize() map[string]any {
	return map[string]any{
		"datetime_utc":  ca.TimeStr(),
		"distance_au":   ca.Distance,
		"velocity_km_s": ca.Velocity,
	}
}

func (ca *CloseApproach) String() string {
	name := ca.Designation
	if ca.NEO != nil {
		name = ca.NEO.Fullname()
	}
	return fmt.Sprintf("On %s, %s approaches Earth at a distance of %s au and a velocity of %s km/s",
		ca.TimeStr(), name, ca.Distance, ca.Velocity)
}
