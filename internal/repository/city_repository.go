package repository

import (
	"github.com/farellandr/stagepass/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CityRepository reads and writes City rows. The db handle may be a
// transaction; callers decide the unit of work.
type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

func (r *CityRepository) FindByID(id uuid.UUID) (*models.City, error) {
	var city models.City
	if err := r.db.Where("id = ?", id).First(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

// FindByNameState looks a city up by its natural key. There is no
// uniqueness constraint on (name, state); lookup-before-create keeps
// the pair de-facto unique.
func (r *CityRepository) FindByNameState(name, state string) (*models.City, error) {
	var city models.City
	if err := r.db.Where("name = ? AND state = ?", name, state).First(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *CityRepository) ListAll() ([]models.City, error) {
	var cities []models.City
	if err := r.db.Order("state, name").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *CityRepository) Create(city *models.City) error {
	return r.db.Create(city).Error
}
