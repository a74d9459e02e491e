package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// A Point is a location on the earth's surface, given by latitude and longitude
// in degrees (WGS 84).
type Point struct {
	point orb.Point
}

func MakePoint(lat, lon float64) Point {
	return Point{point: orb.Point{lon, lat}}
}

func NewPoint(lat, lon float64) *Point {
	p := MakePoint(lat, lon)
	return &p
}

func (p Point) Lat() float64 {
	return p.point.Lat()
}

func (p Point) Lon() float64 {
	return p.point.Lon()
}

// Haversine returns the great circle distance to the other point in meters.
func (p Point) Haversine(other Point) float64 {
	return geo.DistanceHaversine(p.point, other.point)
}

// IntHaversine returns the great circle distance to the other point,
// truncated to full meters.
func (p Point) IntHaversine(other Point) int {
	return int(p.Haversine(other))
}

// DistanceTo is an alias for Haversine.
func (p Point) DistanceTo(other Point) float64 {
	return p.Haversine(other)
}
