package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artist struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Name               string    `gorm:"not null"`
	CityID             uuid.UUID `gorm:"type:uuid;not null;index"`
	City               City
	Phone              string
	ImageLink          string `gorm:"not null"`
	FacebookLink       string
	Website            string
	SeekingVenue       bool
	SeekingDescription string
	Shows              []Show
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (artist *Artist) BeforeCreate(tx *gorm.DB) (err error) {
	if artist.ID == uuid.Nil {
		artist.ID = uuid.New()
	}
	return
}
