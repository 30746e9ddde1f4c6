package geo

import "math"

const earthRadiusKm = 6371.0

// Point is a coordinate pair in decimal degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Kilometers returns the great-circle distance between two coordinate pairs,
// rounded to one decimal place. Inputs are assumed to be well-formed decimal
// degrees; malformed values produce a NaN that callers must treat as
// "distance unknown".
func Kilometers(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(earthRadiusKm*c*10) / 10
}

// Between is Kilometers over two Points.
func Between(from, to Point) float64 {
	return Kilometers(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
