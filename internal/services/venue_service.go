package services

import (
	"errors"

	"github.com/farellandr/stagepass/config"
	"github.com/farellandr/stagepass/internal/models"
	"github.com/farellandr/stagepass/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// VenueInput carries one venue form submission. The web surface
// computes SeekingTalent from checkbox presence before it gets here.
type VenueInput struct {
	Name               string `validate:"required"`
	City               string `validate:"required"`
	State              string `validate:"required,stateabbr"`
	Address            string
	Phone              string
	ImageLink          string `validate:"required"`
	FacebookLink       string
	Website            string
	SeekingTalent      bool
	SeekingDescription string
	Genres             []string
}

type VenueService struct {
	db *gorm.DB
}

func NewVenueService(db *gorm.DB) *VenueService {
	return &VenueService{db: db}
}

// Create resolves the city, persists the venue and links one
// association row per submitted genre, all in one transaction.
func (s *VenueService) Create(input VenueInput) (*models.Venue, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	venue := &models.Venue{
		Name:               input.Name,
		Address:            input.Address,
		Phone:              input.Phone,
		ImageLink:          input.ImageLink,
		FacebookLink:       input.FacebookLink,
		Website:            input.Website,
		SeekingTalent:      input.SeekingTalent,
		SeekingDescription: input.SeekingDescription,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		city, err := resolveCity(tx, input.City, input.State)
		if err != nil {
			return err
		}
		venue.CityID = city.ID

		if err := repository.NewVenueRepository(tx).Create(venue); err != nil {
			return storageErr("create venue", err)
		}

		toAdd, _ := DiffGenres(nil, DedupeNames(input.Genres))
		return s.applyGenres(tx, venue.ID, toAdd, nil)
	})
	if err != nil {
		config.Log.Error("venue create failed", zap.String("name", input.Name), zap.Error(err))
		return nil, err
	}
	return venue, nil
}

// Update loads the venue, reconciles its genre associations against
// the submission and applies the scalar fields. Any failure rolls the
// whole call back.
func (s *VenueService) Update(id uuid.UUID, input VenueInput) (*models.Venue, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var venue *models.Venue
	err := s.db.Transaction(func(tx *gorm.DB) error {
		venues := repository.NewVenueRepository(tx)

		var err error
		venue, err = venues.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "venue", ID: id}
			}
			return storageErr("load venue", err)
		}

		current, err := repository.NewGenreRepository(tx).NamesForVenue(venue.ID)
		if err != nil {
			return storageErr("load venue genres", err)
		}

		toAdd, toRemove := DiffGenres(current, DedupeNames(input.Genres))
		if err := s.applyGenres(tx, venue.ID, toAdd, toRemove); err != nil {
			return err
		}

		city, err := resolveCity(tx, input.City, input.State)
		if err != nil {
			return err
		}

		venue.Name = input.Name
		venue.CityID = city.ID
		venue.Address = input.Address
		venue.Phone = input.Phone
		venue.ImageLink = input.ImageLink
		venue.FacebookLink = input.FacebookLink
		venue.Website = input.Website
		venue.SeekingTalent = input.SeekingTalent
		venue.SeekingDescription = input.SeekingDescription

		if err := venues.Save(venue); err != nil {
			return storageErr("save venue", err)
		}
		return nil
	})
	if err != nil {
		config.Log.Error("venue update failed", zap.String("venue_id", id.String()), zap.Error(err))
		return nil, err
	}
	return venue, nil
}

// Delete removes the venue's genre associations, then its shows, then
// the venue row, in that order, inside one transaction.
func (s *VenueService) Delete(id uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewAssociationRepository(tx).DeleteAllForVenue(id); err != nil {
			return storageErr("delete venue genres", err)
		}
		if err := repository.NewShowRepository(tx).DeleteByVenue(id); err != nil {
			return storageErr("delete venue shows", err)
		}

		rows, err := repository.NewVenueRepository(tx).Delete(id)
		if err != nil {
			return storageErr("delete venue", err)
		}
		if rows == 0 {
			return &NotFoundError{Resource: "venue", ID: id}
		}
		return nil
	})
	if err != nil {
		config.Log.Error("venue delete failed", zap.String("venue_id", id.String()), zap.Error(err))
	}
	return err
}

func (s *VenueService) applyGenres(tx *gorm.DB, venueID uuid.UUID, toAdd, toRemove []string) error {
	assocs := repository.NewAssociationRepository(tx)
	genres := repository.NewGenreRepository(tx)

	for _, name := range toAdd {
		genre, err := resolveGenre(tx, name)
		if err != nil {
			return err
		}
		if err := assocs.LinkVenue(venueID, genre.ID); err != nil {
			return storageErr("link venue genre", err)
		}
	}

	for _, name := range toRemove {
		genre, err := genres.FindByName(name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ReconciliationError{Genre: name}
			}
			return storageErr("look up genre", err)
		}
		rows, err := assocs.UnlinkVenue(venueID, genre.ID)
		if err != nil {
			return storageErr("unlink venue genre", err)
		}
		if rows == 0 {
			return &ReconciliationError{Genre: name}
		}
	}
	return nil
}
