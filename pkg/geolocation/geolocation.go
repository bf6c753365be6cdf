// Package geolocation obtains the caller's position within a deadline and names the place it is in.
package geolocation

import (
	"context"
	"errors"
	"time"

	"droscher.com/BusinessFinder/pkg/geo"
	"droscher.com/BusinessFinder/pkg/geocode"
)

const DefaultTimeout = 10 * time.Second

// Error is a position acquisition failure with a message fit for end users.
type Error struct {
	Code   int
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

var (
	ErrPermissionDenied    = &Error{Code: 1, Reason: "Location permission denied"}
	ErrPositionUnavailable = &Error{Code: 2, Reason: "Location unavailable"}
	ErrTimeout             = &Error{Code: 3, Reason: "Timed out while getting location"}
)

const genericReason = "Could not get your location"

// Reason returns the user-facing message for err.
func Reason(err error) string {
	var acquisitionErr *Error
	if errors.As(err, &acquisitionErr) {
		return acquisitionErr.Reason
	}

	return genericReason
}

type Locator interface {
	Locate(ctx context.Context) (geo.Point, error)
}

// StaticLocator reports a fixed position, or Err when set.
type StaticLocator struct {
	Point geo.Point
	Err   error
}

func (s StaticLocator) Locate(_ context.Context) (geo.Point, error) {
	if s.Err != nil {
		return geo.Point{}, s.Err
	}

	return s.Point, nil
}

type Position struct {
	geo.Point
	geocode.Location
	// Resolved is false when the place names fell back to Unknown.
	Resolved bool `json:"resolved"`
}

type located struct {
	point geo.Point
	err   error
}

// Acquire waits at most timeout for locator, then reverse geocodes the position. Geocoding
// failures do not fail the acquisition.
func Acquire(ctx context.Context, locator Locator, geocoder geocode.ReverseGeocoder, timeout time.Duration) (*Position, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	locateCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := make(chan located, 1)

	go func() {
		point, err := locator.Locate(locateCtx)
		result <- located{point: point, err: err}
	}()

	var point geo.Point

	select {
	case <-locateCtx.Done():
		return nil, classify(locateCtx.Err())
	case r := <-result:
		if r.err != nil {
			return nil, classify(r.err)
		}

		point = r.point
	}

	if err := point.Validate(); err != nil {
		return nil, errors.Join(ErrPositionUnavailable, err)
	}

	position := &Position{Point: point, Location: *geocode.UnknownLocation()}

	if geocoder != nil {
		if location, err := geocoder.ReverseGeocode(ctx, point.Lat, point.Lng); err == nil {
			position.Location = *location
			position.Resolved = true
		}
	}

	return position, nil
}

func classify(err error) error {
	var acquisitionErr *Error

	switch {
	case errors.As(err, &acquisitionErr):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return errors.Join(ErrTimeout, err)
	default:
		return errors.Join(ErrPositionUnavailable, err)
	}
}
