package railreach

import "math"

const earthRadiusKm = 6371

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceFrom returns the great-circle distance to other in kilometres
// using the haversine formula.
func (l Location) DistanceFrom(other Location) float64 {
	dLat := degreesToRadians(other.Latitude - l.Latitude)
	dLng := degreesToRadians(other.Longitude - l.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(l.Latitude))*math.Cos(degreesToRadians(other.Latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
