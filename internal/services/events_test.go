package services

import (
	"math"
	"testing"
)

func TestListWithoutCoordinatesOmitsDistance(t *testing.T) {
	events := NewEventService().List(nil, nil)
	if len(events) != 6 {
		t.Fatalf("got %d events, want 6", len(events))
	}
	for _, e := range events {
		if e.Distance != nil {
			t.Errorf("event %s: distance set without caller coordinates", e.ID)
		}
	}
}

func TestListWithCoordinatesSetsDistance(t *testing.T) {
	lat, lon := 37.7749, -122.4194
	events := NewEventService().List(&lat, &lon)
	for _, e := range events {
		if e.Distance == nil {
			t.Fatalf("event %s: distance missing", e.ID)
		}
		if *e.Distance < 0 || *e.Distance > 20 {
			t.Errorf("event %s: distance %.2f implausible for in-town venues", e.ID, *e.Distance)
		}
	}
}

func TestHaversine(t *testing.T) {
	// SF to LA is roughly 347 miles.
	d := haversineMiles(37.7749, -122.4194, 34.0522, -118.2437)
	if math.Abs(d-347) > 5 {
		t.Errorf("SF-LA distance = %.1f, want ~347", d)
	}

	if d := haversineMiles(37.77, -122.41, 37.77, -122.41); d != 0 {
		t.Errorf("zero-distance = %f, want 0", d)
	}
}
