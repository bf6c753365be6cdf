package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/BusinessFinder/pkg/geo"
	"droscher.com/BusinessFinder/pkg/model"
)

var ErrBusinessNotFound = fmt.Errorf("business %w", model.ErrNotFound)

type BusinessRepository interface {
	AddBusiness(ctx context.Context, business model.Business) (*model.Business, error)
	DeleteBusiness(ctx context.Context, id uuid.UUID) error
	FindBusinessCandidates(ctx context.Context, query string) ([]*model.Business, error)
	FindNearbyBusinesses(ctx context.Context, query string, center geo.Point, radiusKm float64, limit int) ([]model.NearbyBusiness, error)
	GetBusinessByID(ctx context.Context, id uuid.UUID) (*model.Business, error)
	ListBusinesses(ctx context.Context) ([]*model.Business, error)
	UpdateBusiness(ctx context.Context, business model.Business) (*model.Business, error)
}

const nearbyQuery = `SELECT b.*,
	ST_Distance(ST_MakePoint(b.longitude, b.latitude)::geography, ST_GeomFromEWKB(@center)::geography) / 1000 AS distance
FROM businesses b
WHERE b.latitude IS NOT NULL AND b.longitude IS NOT NULL
	AND ST_DWithin(ST_MakePoint(b.longitude, b.latitude)::geography, ST_GeomFromEWKB(@center)::geography, @meters)
	AND (b.name ILIKE @pattern OR b.category ILIKE @pattern)
ORDER BY distance ASC, b.name ASC, b.id ASC
LIMIT @limit`

func (r *Repository) ListBusinesses(ctx context.Context) ([]*model.Business, error) {
	var businesses []*model.Business

	if result := r.DB.WithContext(ctx).Order("name asc").Find(&businesses); result.Error != nil {
		return nil, result.Error
	}

	return businesses, nil
}

func (r *Repository) GetBusinessByID(ctx context.Context, id uuid.UUID) (*model.Business, error) {
	var business model.Business

	result := r.DB.WithContext(ctx).Where("id = ?", id).First(&business)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}

		return nil, result.Error
	}

	return &business, nil
}

func (r *Repository) AddBusiness(ctx context.Context, business model.Business) (*model.Business, error) {
	if result := r.DB.WithContext(ctx).Create(&business); result.Error != nil {
		r.Logger.Error("error adding business", zap.String("name", business.Name), zap.Error(result.Error))

		return nil, result.Error
	}

	return &business, nil
}

// UpdateBusiness replaces every mutable column of an existing business.
func (r *Repository) UpdateBusiness(ctx context.Context, business model.Business) (*model.Business, error) {
	var existing model.Business

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("id = ?", business.ID).First(&existing); result.Error != nil {
			return result.Error
		}

		existing.Name = business.Name
		existing.Category = business.Category
		existing.Address = business.Address
		existing.Phone = business.Phone
		existing.Latitude = business.Latitude
		existing.Longitude = business.Longitude
		existing.OpeningHours = business.OpeningHours

		return tx.Save(&existing).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}

		return nil, err
	}

	return &existing, nil
}

func (r *Repository) DeleteBusiness(ctx context.Context, id uuid.UUID) error {
	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.Business{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrBusinessNotFound
	}

	return nil
}

// FindBusinessCandidates returns located businesses whose name or category contains query.
func (r *Repository) FindBusinessCandidates(ctx context.Context, query string) ([]*model.Business, error) {
	var businesses []*model.Business

	db := r.DB.WithContext(ctx).Where("latitude IS NOT NULL AND longitude IS NOT NULL")

	if query != "" {
		pattern := likePattern(query)
		db = db.Where("(name ILIKE ? OR category ILIKE ?)", pattern, pattern)
	}

	if result := db.Order("name asc").Find(&businesses); result.Error != nil {
		return nil, result.Error
	}

	return businesses, nil
}

// FindNearbyBusinesses runs the radius, text and ordering filters inside PostGIS.
func (r *Repository) FindNearbyBusinesses(ctx context.Context, query string, center geo.Point, radiusKm float64, limit int) ([]model.NearbyBusiness, error) {
	point, err := center.EWKB()
	if err != nil {
		return nil, err
	}

	var businesses []model.NearbyBusiness

	result := r.DB.WithContext(ctx).Raw(nearbyQuery, map[string]interface{}{
		"center":  point,
		"meters":  radiusKm * 1000,
		"pattern": likePattern(query),
		"limit":   limit,
	}).Scan(&businesses)
	if result.Error != nil {
		r.Logger.Error("error searching nearby businesses", zap.Float64("lat", center.Lat), zap.Float64("lng", center.Lng), zap.Error(result.Error))

		return nil, result.Error
	}

	return businesses, nil
}

// Migrate creates the businesses table and, when requested, the PostGIS index backing FindNearbyBusinesses.
func (r *Repository) Migrate(ctx context.Context, spatialIndex bool) error {
	db := r.DB.WithContext(ctx)

	if err := db.AutoMigrate(&model.Business{}); err != nil {
		return err
	}

	if !spatialIndex {
		return nil
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
		return err
	}

	return db.Exec("CREATE INDEX IF NOT EXISTS idx_businesses_location ON businesses " +
		"USING GIST ((ST_MakePoint(longitude, latitude)::geography)) " +
		"WHERE latitude IS NOT NULL AND longitude IS NOT NULL").Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}
