package geo

import "math"

const earthRadiusKm = 6371

// Point is a geographic coordinate in degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the great-circle distance between two points in
// kilometers, computed with the haversine formula.
func Distance(from, to Point) float64 {
	lat1 := toRadians(from.Latitude)
	lon1 := toRadians(from.Longitude)
	lat2 := toRadians(to.Latitude)
	lon2 := toRadians(to.Longitude)

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return c * earthRadiusKm
}

// WithinRadius reports whether two points are at most radiusKm apart.
func WithinRadius(from, to Point, radiusKm float64) bool {
	return Distance(from, to) <= radiusKm
}

func toRadians(degree float64) float64 {
	return degree * math.Pi / 180
}
