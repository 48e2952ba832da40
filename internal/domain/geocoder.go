package domain

import (
	"context"
	"errors"
)

// ErrNoMatch is returned by a Geocoder when the service found no candidate
// for the address. Callers recover by substituting manual county/city
// overrides; the error is never retried.
var ErrNoMatch = errors.New("no geocoder match")

// GeocodeResult holds the jurisdiction fields extracted from a geocoder's
// best match.
type GeocodeResult struct {
	City   string `json:"city,omitempty"`
	County string `json:"county,omitempty"`
	State  string `json:"state,omitempty"`
}

// Geocoder resolves a free-text street address to a jurisdiction.
type Geocoder interface {
	// Geocode performs a single lookup with no retry. A service response
	// containing no match is reported as ErrNoMatch.
	Geocode(ctx context.Context, address string) (GeocodeResult, error)
}
