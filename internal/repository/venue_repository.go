package repository

import (
	"strings"

	"github.com/farellandr/stagepass/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) FindByID(id uuid.UUID) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.Where("id = ?", id).First(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepository) ListByCity(cityID uuid.UUID) ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.db.Where("city_id = ?", cityID).Order("name").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

// SearchByName matches the term as a case-insensitive substring of the
// venue name. An empty term matches every venue.
func (r *VenueRepository) SearchByName(term string) ([]models.Venue, error) {
	var venues []models.Venue
	pattern := "%" + strings.ToLower(term) + "%"
	if err := r.db.Where("lower(name) LIKE ?", pattern).Order("name").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *VenueRepository) Create(venue *models.Venue) error {
	return r.db.Create(venue).Error
}

func (r *VenueRepository) Save(venue *models.Venue) error {
	return r.db.Save(venue).Error
}

func (r *VenueRepository) Delete(id uuid.UUID) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Venue{})
	return result.RowsAffected, result.Error
}
