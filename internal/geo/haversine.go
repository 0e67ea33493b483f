// Package geo provides great-circle distance math over WGS84 coordinates.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// HaversineKm calculates the great circle distance between two points in kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DistanceKm calculates the distance between two orb points in kilometers.
// orb points are (longitude, latitude) ordered.
func DistanceKm(p1, p2 orb.Point) float64 {
	return HaversineKm(p1[1], p1[0], p2[1], p2[0])
}

// RoundKm rounds a distance to two decimal places for presentation.
// Callers sort on the raw value and round only at the edge.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
