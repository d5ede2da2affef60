package geo

import (
	"math"
	"testing"
)

type distanceTestCase struct {
	from     Point
	to       Point
	expected float64
	delta    float64
}

func TestDistance(t *testing.T) {
	cases := []distanceTestCase{
		// same point
		{Point{28.6139, 77.2090}, Point{28.6139, 77.2090}, 0, 0.001},
		// Connaught Place to Noida Sector 18, roughly 17 km
		{Point{28.6315, 77.2167}, Point{28.5937, 77.3803}, 16.6, 0.5},
		// Delhi to Mumbai, roughly 1150 km
		{Point{28.6139, 77.2090}, Point{19.0760, 72.8777}, 1153, 10},
		// symmetric
		{Point{19.0760, 72.8777}, Point{28.6139, 77.2090}, 1153, 10},
	}

	for _, c := range cases {
		got := Distance(c.from, c.to)
		if math.Abs(got-c.expected) > c.delta {
			t.Fatalf("distance from %+v to %+v: got %f, expected %f ± %f",
				c.from, c.to, got, c.expected, c.delta)
		}
	}
}

func TestWithinRadius(t *testing.T) {
	center := Point{28.6139, 77.2090}
	near := Point{28.6315, 77.2167}    // ~2.1 km
	far := Point{28.5937, 77.3803}     // ~17 km from near
	distant := Point{19.0760, 72.8777} // Mumbai

	if !WithinRadius(center, near, 15) {
		t.Fatal("expected point within 15km radius")
	}
	if !WithinRadius(center, far, 50) {
		t.Fatal("expected point within 50km radius")
	}
	if WithinRadius(center, distant, 50) {
		t.Fatal("expected point outside 50km radius")
	}
}
