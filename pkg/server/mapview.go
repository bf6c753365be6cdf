package server

import (
	"net/http"

	"github.com/google/uuid"

	"droscher.com/BusinessFinder/pkg/geo"
	"droscher.com/BusinessFinder/pkg/mapview"
	"droscher.com/BusinessFinder/pkg/model"
)

// RenderMap serves GET /api/map?query&lat&lng&radius&selected. Without coordinates the search runs
// around the default center and no user marker is placed.
func (b *BusinessServer) RenderMap(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	var user *geo.Point

	center := mapview.DefaultCenter

	if params.Has("lat") || params.Has("lng") {
		point, err := parseCenter(params)
		if err != nil {
			writeJSON(w, b.logger, http.StatusBadRequest, errorResponse{Error: "Invalid coordinates"})

			return
		}

		center = point
		user = &point
	}

	radius, err := parseRadius(params, b.searcher.DefaultRadiusKm())
	if err != nil {
		writeJSON(w, b.logger, http.StatusBadRequest, errorResponse{Error: "Invalid radius"})

		return
	}

	results, err := b.searcher.Search(r.Context(), params.Get("query"), center, radius)
	if err != nil {
		writeError(w, r, b.logger, err, "Failed to search businesses")

		return
	}

	businesses := make([]model.Business, 0, len(results))
	for _, result := range results {
		businesses = append(businesses, result.Business)
	}

	selected, err := uuid.Parse(params.Get("selected"))
	if err != nil {
		selected = uuid.Nil
	}

	writeJSON(w, b.logger, http.StatusOK, mapview.Render(businesses, user, selected))
}
