// internal/geo/fuzz.go
// Privacy fuzzing of coordinates: a uniformly random displacement
// within a bounded radius, applied at write time with fresh
// randomness on every update.

package geo

import (
	"math"
	"math/rand"
)

// metersPerDegreeLat is close to constant everywhere; longitude
// degrees shrink with latitude and are corrected below.
const metersPerDegreeLat = 111320.0

// Fuzz displaces (lat, lon) by a uniformly random offset within
// radiusM meters and returns the fuzzed pair. radiusM <= 0 returns
// the input unchanged. The caller owns rng; a fresh draw per call is
// what makes re-fuzzing on every update meaningful.
func Fuzz(lat, lon, radiusM float64, rng *rand.Rand) (float64, float64) {
	if radiusM <= 0 {
		return lat, lon
	}

	// sqrt keeps the offset uniform over the disk, not clustered at
	// the center.
	r := radiusM * math.Sqrt(rng.Float64())
	theta := 2 * math.Pi * rng.Float64()

	dLat := (r * math.Cos(theta)) / metersPerDegreeLat

	// Longitude compression: a degree of longitude is cos(lat) as
	// wide as a degree of latitude. Near the poles the divisor
	// collapses; cap it so the offset stays bounded.
	cosLat := math.Cos(radians(lat))
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	dLon := (r * math.Sin(theta)) / (metersPerDegreeLat * cosLat)

	return clampLat(lat + dLat), wrapLon(lon + dLon)
}

func clampLat(lat float64) float64 {
	if lat > 90 {
		return 90
	}
	if lat < -90 {
		return -90
	}
	return lat
}

func wrapLon(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}
