package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Venue struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Name               string    `gorm:"not null"`
	CityID             uuid.UUID `gorm:"type:uuid;not null;index"`
	City               City
	Address            string
	Phone              string
	ImageLink          string `gorm:"not null"`
	FacebookLink       string
	Website            string
	SeekingTalent      bool
	SeekingDescription string
	Shows              []Show
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (venue *Venue) BeforeCreate(tx *gorm.DB) (err error) {
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	return
}
