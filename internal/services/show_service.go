package services

import (
	"errors"
	"time"

	"github.com/farellandr/stagepass/config"
	"github.com/farellandr/stagepass/internal/models"
	"github.com/farellandr/stagepass/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ShowInput struct {
	ArtistID  uuid.UUID `validate:"required"`
	VenueID   uuid.UUID `validate:"required"`
	StartTime time.Time `validate:"required"`
}

type ShowService struct {
	db *gorm.DB
}

func NewShowService(db *gorm.DB) *ShowService {
	return &ShowService{db: db}
}

// Create books an artist at a venue. Both sides must already exist.
func (s *ShowService) Create(input ShowInput) (*models.Show, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	show := &models.Show{
		ArtistID:  input.ArtistID,
		VenueID:   input.VenueID,
		StartTime: input.StartTime,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.NewArtistRepository(tx).FindByID(input.ArtistID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "artist", ID: input.ArtistID}
			}
			return storageErr("load artist", err)
		}
		if _, err := repository.NewVenueRepository(tx).FindByID(input.VenueID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "venue", ID: input.VenueID}
			}
			return storageErr("load venue", err)
		}

		if err := repository.NewShowRepository(tx).Create(show); err != nil {
			return storageErr("create show", err)
		}
		return nil
	})
	if err != nil {
		config.Log.Error("show create failed", zap.Error(err))
		return nil, err
	}
	return show, nil
}
