package client

import (
	"context"
	"errors"
)

// Locator resolves the user's position. Browser geolocation is an
// external collaborator; outside a browser a fixed position or an
// always-failing locator stands in.
type Locator interface {
	Locate(ctx context.Context) (lat, lon float64, err error)
}

// StaticLocator always reports the same position.
type StaticLocator struct {
	Lat float64
	Lon float64
}

func (l StaticLocator) Locate(context.Context) (float64, float64, error) {
	return l.Lat, l.Lon, nil
}

// NoLocator reports geolocation as unavailable, which sends the
// controller to the fallback city.
type NoLocator struct{}

func (NoLocator) Locate(context.Context) (float64, float64, error) {
	return 0, 0, errors.New("geolocation not available")
}
