package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// City rows are created lazily the first time a venue or artist
// submission references a new (name, state) pair. They are never
// updated or deleted; lookups always filter by both fields.
type City struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"not null"`
	State     string    `gorm:"type:varchar(2);not null"`
	Venues    []Venue
	Artists   []Artist
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (city *City) BeforeCreate(tx *gorm.DB) (err error) {
	if city.ID == uuid.Nil {
		city.ID = uuid.New()
	}
	return
}
