package repository

import (
	"time"

	"github.com/farellandr/stagepass/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShowRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

func (r *ShowRepository) Create(show *models.Show) error {
	return r.db.Create(show).Error
}

func (r *ShowRepository) ListAll() ([]models.Show, error) {
	var shows []models.Show
	if err := r.db.Preload("Artist").Preload("Venue").Order("start_time").Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *ShowRepository) ListUpcomingByVenue(venueID uuid.UUID, now time.Time) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.Preload("Artist").
		Where("venue_id = ? AND start_time >= ?", venueID, now).
		Order("start_time").Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *ShowRepository) ListPastByVenue(venueID uuid.UUID, now time.Time) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.Preload("Artist").
		Where("venue_id = ? AND start_time < ?", venueID, now).
		Order("start_time").Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *ShowRepository) ListUpcomingByArtist(artistID uuid.UUID, now time.Time) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.Preload("Venue").
		Where("artist_id = ? AND start_time >= ?", artistID, now).
		Order("start_time").Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *ShowRepository) ListPastByArtist(artistID uuid.UUID, now time.Time) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.Preload("Venue").
		Where("artist_id = ? AND start_time < ?", artistID, now).
		Order("start_time").Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *ShowRepository) CountUpcomingByVenue(venueID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Show{}).
		Where("venue_id = ? AND start_time >= ?", venueID, now).
		Count(&count).Error
	return count, err
}

func (r *ShowRepository) CountUpcomingByArtist(artistID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Show{}).
		Where("artist_id = ? AND start_time >= ?", artistID, now).
		Count(&count).Error
	return count, err
}

func (r *ShowRepository) DeleteByVenue(venueID uuid.UUID) error {
	return r.db.Where("venue_id = ?", venueID).Delete(&models.Show{}).Error
}
