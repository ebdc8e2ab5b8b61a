package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
)

// WaypointGeohashPrecision gives cells of roughly 150m, enough to spot swapped coordinates
const WaypointGeohashPrecision = 7

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeWaypoint converts a waypoint position to a geohash string.
// Waypoints without coordinates yield "".
func EncodeWaypoint(w models.Waypoint) string {
	if w.Latitude == 0 && w.Longitude == 0 {
		return ""
	}
	return geohash.EncodeWithPrecision(w.Latitude, w.Longitude, WaypointGeohashPrecision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// StraightLineKm sums the great-circle legs between consecutive waypoints in
// the given order. It is a lower bound of the driven route.
func StraightLineKm(points []models.Waypoint) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += CalculateDistance(
			GeoPoint{Latitude: points[i-1].Latitude, Longitude: points[i-1].Longitude},
			GeoPoint{Latitude: points[i].Latitude, Longitude: points[i].Longitude},
		)
	}
	return total
}
