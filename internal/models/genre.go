package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Genre names are treated as unique by convention: callers look up by
// name before creating. Rows persist even when the last association
// referencing them is removed.
type Genre struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (genre *Genre) BeforeCreate(tx *gorm.DB) (err error) {
	if genre.ID == uuid.Nil {
		genre.ID = uuid.New()
	}
	return
}

// VenueGenre links one venue to one genre. At most one row should
// exist per (venue, genre) pair; reconciliation maintains that.
type VenueGenre struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	VenueID   uuid.UUID `gorm:"type:uuid;not null;index"`
	GenreID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}

func (VenueGenre) TableName() string {
	return "venue_genres"
}

func (vg *VenueGenre) BeforeCreate(tx *gorm.DB) (err error) {
	if vg.ID == uuid.Nil {
		vg.ID = uuid.New()
	}
	return
}

type ArtistGenre struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ArtistID  uuid.UUID `gorm:"type:uuid;not null;index"`
	GenreID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}

func (ArtistGenre) TableName() string {
	return "artist_genres"
}

func (ag *ArtistGenre) BeforeCreate(tx *gorm.DB) (err error) {
	if ag.ID == uuid.Nil {
		ag.ID = uuid.New()
	}
	return
}
