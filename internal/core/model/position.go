package model

import (
	"errors"
	"fmt"
)

var (
	ErrLatitudeOutOfRange  = errors.New("latitude out of range [-90, 90]")
	ErrLongitudeOutOfRange = errors.New("longitude out of range [-180, 180]")
)

// GeoPosition is a WGS84 coordinate with an optional compass heading.
// Field names follow the mission command document format.
type GeoPosition struct {
	Latitude   float64 `json:"lat" bson:"lat"`
	Longitude  float64 `json:"lon" bson:"lon"`
	HeadingDeg float64 `json:"heading_deg,omitempty" bson:"heading_deg,omitempty"`
}

func (p GeoPosition) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("%w: %f", ErrLatitudeOutOfRange, p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("%w: %f", ErrLongitudeOutOfRange, p.Longitude)
	}
	return nil
}

// SamePoint reports whether both coordinates are exactly equal, ignoring heading.
func (p GeoPosition) SamePoint(other GeoPosition) bool {
	return p.Latitude == other.Latitude && p.Longitude == other.Longitude
}
