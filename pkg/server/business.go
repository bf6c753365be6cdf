package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/BusinessFinder/pkg/geo"
	"droscher.com/BusinessFinder/pkg/model"
	"droscher.com/BusinessFinder/pkg/repository"
)

type searcher interface {
	Search(ctx context.Context, query string, center geo.Point, radiusKm float64) ([]model.NearbyBusiness, error)
	DefaultRadiusKm() float64
}

type BusinessServer struct {
	logger     *zap.Logger
	businesses repository.BusinessRepository
	searcher   searcher
}

func NewBusinessServer(businesses repository.BusinessRepository, searcher searcher, logger *zap.Logger) *BusinessServer {
	return &BusinessServer{businesses: businesses, searcher: searcher, logger: logger}
}

type businessResponse struct {
	model.Business
	Distance *float64 `json:"distance,omitempty"`
}

type businessEnvelope struct {
	Business businessResponse `json:"business"`
}

type businessListEnvelope struct {
	Businesses []businessResponse `json:"businesses"`
}

func listFromModel(businesses []*model.Business) businessListEnvelope {
	list := businessListEnvelope{Businesses: make([]businessResponse, 0, len(businesses))}
	for _, business := range businesses {
		list.Businesses = append(list.Businesses, businessResponse{Business: *business})
	}

	return list
}

func listFromNearby(results []model.NearbyBusiness) businessListEnvelope {
	list := businessListEnvelope{Businesses: make([]businessResponse, 0, len(results))}
	for _, result := range results {
		distance := result.Distance
		list.Businesses = append(list.Businesses, businessResponse{Business: result.Business, Distance: &distance})
	}

	return list
}

// SearchBusinesses serves GET /api/businesses?query&lat&lng&radius.
func (b *BusinessServer) SearchBusinesses(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	center, err := parseCenter(params)
	if err != nil {
		writeJSON(w, b.logger, http.StatusBadRequest, errorResponse{Error: "Invalid coordinates"})

		return
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

	writeJSON(w, b.logger, http.StatusOK, listFromNearby(results))
}

// ListBusinesses serves GET /api/admin/businesses.
func (b *BusinessServer) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	businesses, err := b.businesses.ListBusinesses(r.Context())
	if err != nil {
		writeError(w, r, b.logger, err, "Failed to fetch businesses")

		return
	}

	writeJSON(w, b.logger, http.StatusOK, listFromModel(businesses))
}

// CreateBusiness serves POST /api/businesses and POST /api/admin/businesses.
func (b *BusinessServer) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	input, err := b.decodeInput(r)
	if err != nil {
		writeError(w, r, b.logger, err, "Failed to create business")

		return
	}

	business, err := b.businesses.AddBusiness(r.Context(), input.Business())
	if err != nil {
		writeError(w, r, b.logger, err, "Failed to create business")

		return
	}

	writeJSON(w, b.logger, http.StatusCreated, businessEnvelope{Business: businessResponse{Business: *business}})
}

// GetBusiness serves GET /api/admin/businesses/{id}.
func (b *BusinessServer) GetBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, b.logger, err, "Failed to fetch business")

		return
	}

	business, err := b.businesses.GetBusinessByID(r.Context(), id)
	if err != nil {
		writeError(w, r, b.logger, err, "Failed to fetch business")

		return
	}

	writeJSON(w, b.logger, http.StatusOK, businessEnvelope{Business: businessResponse{Business: *business}})
}

// UpdateBusiness serves PUT /api/admin/businesses/{id}. Validation runs before the lookup.
func (b *BusinessServer) UpdateBusiness(w http.ResponseWriter, r *http.Request) {
	input, err := b.decodeInput(r)
	if err != nil {
		writeError(w, r, b.logger, err, "Failed to update business")

		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, b.logger, err, "Failed to update business")

		return
	}

	replacement := input.Business()
	replacement.ID = id

	business, err := b.businesses.UpdateBusiness(r.Context(), replacement)
	if err != nil {
		writeError(w, r, b.logger, err, "Failed to update business")

		return
	}

	writeJSON(w, b.logger, http.StatusOK, businessEnvelope{Business: businessResponse{Business: *business}})
}

// DeleteBusiness serves DELETE /api/admin/businesses/{id}.
func (b *BusinessServer) DeleteBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, b.logger, err, "Failed to delete business")

		return
	}

	if err := b.businesses.DeleteBusiness(r.Context(), id); err != nil {
		writeError(w, r, b.logger, err, "Failed to delete business")

		return
	}

	writeJSON(w, b.logger, http.StatusOK, successResponse{Success: true})
}

func (b *BusinessServer) decodeInput(r *http.Request) (*model.BusinessInput, error) {
	var input model.BusinessInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return &input, nil
}

// pathID treats an id that is not a UUID as unknown.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, repository.ErrBusinessNotFound
	}

	return id, nil
}

func parseCenter(params url.Values) (geo.Point, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(params.Get("lat")), 64)
	if err != nil {
		return geo.Point{}, err
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(params.Get("lng")), 64)
	if err != nil {
		return geo.Point{}, err
	}

	center := geo.Point{Lat: lat, Lng: lng}

	return center, center.Validate()
}

func parseRadius(params url.Values, fallback float64) (float64, error) {
	raw := strings.TrimSpace(params.Get("radius"))
	if raw == "" {
		return fallback, nil
	}

	return strconv.ParseFloat(raw, 64)
}
