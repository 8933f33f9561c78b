// internal/geo/distance.go
// Great-circle distance between coordinate pairs.

package geo

import "math"

const earthRadiusKm = 6371.0

// DistanceKm returns the haversine distance in kilometers between two
// latitude/longitude pairs. Symmetric, and exactly 0 for identical
// points. The inner square-root argument is clamped to [0,1] so
// antipodal and zero-distance inputs never leave the asin domain.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// RoundKm rounds a distance to 2 decimal places for presentation.
// Scoring keeps full precision and must not use this.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
