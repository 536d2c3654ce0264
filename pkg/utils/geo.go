package utils

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

const earthRadiusKm = 6371

// Haversine returns the great-circle distance between two lon/lat
// points in kilometers.
func Haversine(p1, p2 orb.Point) float64 {
	lat1 := p1.Lat() * math.Pi / 180
	lat2 := p2.Lat() * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (p2.Lon() - p1.Lon()) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// PointEWKT renders a lon/lat point as extended well-known text suitable
// for a PostGIS geography column.
func PointEWKT(p orb.Point) string {
	return fmt.Sprintf("SRID=4326;POINT(%f %f)", p.Lon(), p.Lat())
}
