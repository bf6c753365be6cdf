package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Business struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null;index"        json:"name"`
	Category     string    `gorm:"not null"              json:"category"`
	Address      string    `gorm:"not null"              json:"address"`
	Phone        *string   `json:"phone"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	OpeningHours *string   `json:"openingHours"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the identifier; callers never choose it.
func (b *Business) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	return nil
}

// HasLocation reports whether the business can take part in a proximity search.
func (b *Business) HasLocation() bool {
	return b.Latitude != nil && b.Longitude != nil
}

// NearbyBusiness is a search hit. Distance is in kilometres from the search center and is never stored.
type NearbyBusiness struct {
	Business Business `gorm:"embedded"`
	Distance float64  `gorm:"column:distance"`
}
