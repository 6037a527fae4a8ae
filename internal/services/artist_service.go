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

type ArtistInput struct {
	Name               string `validate:"required"`
	City               string `validate:"required"`
	State              string `validate:"required,stateabbr"`
	Phone              string
	ImageLink          string `validate:"required"`
	FacebookLink       string
	Website            string
	SeekingVenue       bool
	SeekingDescription string
	Genres             []string
}

type ArtistService struct {
	db *gorm.DB
}

func NewArtistService(db *gorm.DB) *ArtistService {
	return &ArtistService{db: db}
}

func (s *ArtistService) Create(input ArtistInput) (*models.Artist, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	artist := &models.Artist{
		Name:               input.Name,
		Phone:              input.Phone,
		ImageLink:          input.ImageLink,
		FacebookLink:       input.FacebookLink,
		Website:            input.Website,
		SeekingVenue:       input.SeekingVenue,
		SeekingDescription: input.SeekingDescription,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		city, err := resolveCity(tx, input.City, input.State)
		if err != nil {
			return err
		}
		artist.CityID = city.ID

		if err := repository.NewArtistRepository(tx).Create(artist); err != nil {
			return storageErr("create artist", err)
		}

		toAdd, _ := DiffGenres(nil, DedupeNames(input.Genres))
		return s.applyGenres(tx, artist.ID, toAdd, nil)
	})
	if err != nil {
		config.Log.Error("artist create failed", zap.String("name", input.Name), zap.Error(err))
		return nil, err
	}
	return artist, nil
}

func (s *ArtistService) Update(id uuid.UUID, input ArtistInput) (*models.Artist, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var artist *models.Artist
	err := s.db.Transaction(func(tx *gorm.DB) error {
		artists := repository.NewArtistRepository(tx)

		var err error
		artist, err = artists.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "artist", ID: id}
			}
			return storageErr("load artist", err)
		}

		current, err := repository.NewGenreRepository(tx).NamesForArtist(artist.ID)
		if err != nil {
			return storageErr("load artist genres", err)
		}

		toAdd, toRemove := DiffGenres(current, DedupeNames(input.Genres))
		if err := s.applyGenres(tx, artist.ID, toAdd, toRemove); err != nil {
			return err
		}

		city, err := resolveCity(tx, input.City, input.State)
		if err != nil {
			return err
		}

		artist.Name = input.Name
		artist.CityID = city.ID
		artist.Phone = input.Phone
		artist.ImageLink = input.ImageLink
		artist.FacebookLink = input.FacebookLink
		artist.Website = input.Website
		artist.SeekingVenue = input.SeekingVenue
		artist.SeekingDescription = input.SeekingDescription

		if err := artists.Save(artist); err != nil {
			return storageErr("save artist", err)
		}
		return nil
	})
	if err != nil {
		config.Log.Error("artist update failed", zap.String("artist_id", id.String()), zap.Error(err))
		return nil, err
	}
	return artist, nil
}

func (s *ArtistService) applyGenres(tx *gorm.DB, artistID uuid.UUID, toAdd, toRemove []string) error {
	assocs := repository.NewAssociationRepository(tx)
	genres := repository.NewGenreRepository(tx)

	for _, name := range toAdd {
		genre, err := resolveGenre(tx, name)
		if err != nil {
			return err
		}
		if err := assocs.LinkArtist(artistID, genre.ID); err != nil {
			return storageErr("link artist genre", err)
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
		rows, err := assocs.UnlinkArtist(artistID, genre.ID)
		if err != nil {
			return storageErr("unlink artist genre", err)
		}
		if rows == 0 {
			return &ReconciliationError{Genre: name}
		}
	}
	return nil
}
