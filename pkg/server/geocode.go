package server

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"droscher.com/BusinessFinder/pkg/geocode"
)

type GeocodeServer struct {
	logger   *zap.Logger
	geocoder geocode.ReverseGeocoder
}

func NewGeocodeServer(geocoder geocode.ReverseGeocoder, logger *zap.Logger) *GeocodeServer {
	return &GeocodeServer{geocoder: geocoder, logger: logger}
}

// ReverseGeocode serves GET /api/geocode?lat&lng. Missing, unparsable or zero coordinates are rejected.
func (g *GeocodeServer) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)

	if latErr != nil || lngErr != nil || lat == 0 || lng == 0 {
		writeJSON(w, g.logger, http.StatusBadRequest, errorResponse{Error: "Invalid coordinates"})

		return
	}

	location, err := g.geocoder.ReverseGeocode(r.Context(), lat, lng)
	if err != nil {
		writeError(w, r, g.logger, err, "Failed to geocode coordinates")

		return
	}

	writeJSON(w, g.logger, http.StatusOK, location)
}
