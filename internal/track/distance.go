package track

import "math"

// earthRadius is the spherical Earth radius used by the haversine formula,
// in meters. Output file boundaries depend on it, so it is pinned here
// rather than taken from a geodesy library's WGS84 value.
const earthRadius = 6370000.0

// Distance returns the great-circle distance in meters between two
// coordinates given in decimal degrees, using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)

	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}
