// Package geo holds the coordinate type and the great-circle distance used by proximity search.
package geo

import (
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"

	"droscher.com/BusinessFinder/pkg/model"
)

// EarthRadiusKm is the mean radius of the spherical earth model.
const EarthRadiusKm = 6371.0

// SRID of WGS84 longitude/latitude.
const SRID = 4326

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate rejects non-finite or out-of-range coordinates.
func (p Point) Validate() error {
	if !finite(p.Lat) || !finite(p.Lng) {
		return fmt.Errorf("%w: coordinates must be finite", model.ErrInvalidArgument)
	}

	if math.Abs(p.Lat) > 90 || math.Abs(p.Lng) > 180 {
		return fmt.Errorf("%w: coordinates out of range (%g, %g)", model.ErrInvalidArgument, p.Lat, p.Lng)
	}

	return nil
}

// EWKB encodes the point for PostGIS (ST_GeomFromEWKB). Coordinates are ordered lng, lat.
func (p Point) EWKB() ([]byte, error) {
	point := geom.NewPointFlat(geom.XY, []float64{p.Lng, p.Lat}).SetSRID(SRID)

	data, err := ewkb.Marshal(point, ewkb.NDR)
	if err != nil {
		return nil, fmt.Errorf("encode point: %w", err)
	}

	return data, nil
}

// PointOf returns the location of a business, if it has one.
func PointOf(business *model.Business) (Point, bool) {
	if !business.HasLocation() {
		return Point{}, false
	}

	return Point{Lat: *business.Latitude, Lng: *business.Longitude}, true
}

// DistanceKm is the Haversine distance between a and b.
func DistanceKm(a, b Point) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func finite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
