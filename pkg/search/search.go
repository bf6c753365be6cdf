// Package search answers "which matching businesses are closest to this point".
package search

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"droscher.com/BusinessFinder/configs"
	"droscher.com/BusinessFinder/pkg/geo"
	"droscher.com/BusinessFinder/pkg/model"
)

type candidateSource interface {
	FindBusinessCandidates(ctx context.Context, query string) ([]*model.Business, error)
	FindNearbyBusinesses(ctx context.Context, query string, center geo.Point, radiusKm float64, limit int) ([]model.NearbyBusiness, error)
}

type Service struct {
	store  candidateSource
	logger *zap.Logger
	conf   configs.Search
}

func NewService(store candidateSource, conf configs.Search, logger *zap.Logger) *Service {
	return &Service{store: store, conf: conf, logger: logger}
}

// DefaultRadiusKm is used by callers that received no radius.
func (s *Service) DefaultRadiusKm() float64 {
	return s.conf.DefaultRadiusKm
}

// Search returns the businesses matching query within radiusKm of center, closest first.
func (s *Service) Search(ctx context.Context, query string, center geo.Point, radiusKm float64) ([]model.NearbyBusiness, error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}

	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm < 0 {
		return nil, fmt.Errorf("%w: radius must be a non-negative number of kilometres", model.ErrInvalidArgument)
	}

	if s.conf.SpatialIndex {
		results, err := s.store.FindNearbyBusinesses(ctx, query, center, radiusKm, s.conf.MaxResults)
		if err != nil {
			s.logger.Error("nearby query failed", zap.String("query", query), zap.Error(err))

			return nil, fmt.Errorf("%w: %w", model.ErrServiceUnavailable, err)
		}

		if results == nil {
			results = []model.NearbyBusiness{}
		}

		return results, nil
	}

	candidates, err := s.store.FindBusinessCandidates(ctx, query)
	if err != nil {
		s.logger.Error("candidate query failed", zap.String("query", query), zap.Error(err))

		return nil, fmt.Errorf("%w: %w", model.ErrServiceUnavailable, err)
	}

	results := Nearest(candidates, query, center, radiusKm, s.conf.MaxResults)

	s.logger.Debug("search completed",
		zap.String("query", query), zap.Int("candidates", len(candidates)), zap.Int("results", len(results)))

	return results, nil
}

// Nearest filters businesses to those within radiusKm of center whose name or category contains
// query (case-insensitive), orders them by distance, then name, then id, and keeps at most limit.
func Nearest(businesses []*model.Business, query string, center geo.Point, radiusKm float64, limit int) []model.NearbyBusiness {
	fold := cases.Fold()
	needle := fold.String(query)

	results := make([]model.NearbyBusiness, 0, len(businesses))

	for _, business := range businesses {
		point, ok := geo.PointOf(business)
		if !ok {
			continue
		}

		if needle != "" &&
			!strings.Contains(fold.String(business.Name), needle) &&
			!strings.Contains(fold.String(business.Category), needle) {
			continue
		}

		distance := geo.DistanceKm(center, point)
		if distance > radiusKm {
			continue
		}

		results = append(results, model.NearbyBusiness{Business: *business, Distance: distance})
	}

	slices.SortFunc(results, func(a, b model.NearbyBusiness) int {
		return cmp.Or(
			cmp.Compare(a.Distance, b.Distance),
			cmp.Compare(a.Business.Name, b.Business.Name),
			cmp.Compare(a.Business.ID.String(), b.Business.ID.String()),
		)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results
}
