package repository

import (
	"github.com/farellandr/stagepass/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

func (r *GenreRepository) FindByName(name string) (*models.Genre, error) {
	var genre models.Genre
	if err := r.db.Where("name = ?", name).First(&genre).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *GenreRepository) ListAll() ([]models.Genre, error) {
	var genres []models.Genre
	if err := r.db.Order("name").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *GenreRepository) Create(genre *models.Genre) error {
	return r.db.Create(genre).Error
}

// NamesForVenue resolves a venue's genre names through the join table.
func (r *GenreRepository) NamesForVenue(venueID uuid.UUID) ([]string, error) {
	var names []string
	err := r.db.Model(&models.Genre{}).
		Joins("JOIN venue_genres ON venue_genres.genre_id = genres.id").
		Where("venue_genres.venue_id = ?", venueID).
		Pluck("genres.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *GenreRepository) NamesForArtist(artistID uuid.UUID) ([]string, error) {
	var names []string
	err := r.db.Model(&models.Genre{}).
		Joins("JOIN artist_genres ON artist_genres.genre_id = genres.id").
		Where("artist_genres.artist_id = ?", artistID).
		Pluck("genres.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
