package repository

import (
	"strings"

	"github.com/farellandr/stagepass/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) FindByID(id uuid.UUID) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.Where("id = ?", id).First(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepository) ListAll() ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.Order("name").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *ArtistRepository) SearchByName(term string) ([]models.Artist, error) {
	var artists []models.Artist
	pattern := "%" + strings.ToLower(term) + "%"
	if err := r.db.Where("lower(name) LIKE ?", pattern).Order("name").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *ArtistRepository) Create(artist *models.Artist) error {
	return r.db.Create(artist).Error
}

func (r *ArtistRepository) Save(artist *models.Artist) error {
	return r.db.Save(artist).Error
}
