package repository

import (
	"github.com/farellandr/stagepass/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssociationRepository maintains the venue/artist genre join rows.
type AssociationRepository struct {
	db *gorm.DB
}

func NewAssociationRepository(db *gorm.DB) *AssociationRepository {
	return &AssociationRepository{db: db}
}

func (r *AssociationRepository) LinkVenue(venueID, genreID uuid.UUID) error {
	return r.db.Create(&models.VenueGenre{VenueID: venueID, GenreID: genreID}).Error
}

// UnlinkVenue deletes the association row for the pair and reports how
// many rows went away. Zero means the association was already gone.
func (r *AssociationRepository) UnlinkVenue(venueID, genreID uuid.UUID) (int64, error) {
	result := r.db.Where("venue_id = ? AND genre_id = ?", venueID, genreID).Delete(&models.VenueGenre{})
	return result.RowsAffected, result.Error
}

func (r *AssociationRepository) DeleteAllForVenue(venueID uuid.UUID) error {
	return r.db.Where("venue_id = ?", venueID).Delete(&models.VenueGenre{}).Error
}

func (r *AssociationRepository) LinkArtist(artistID, genreID uuid.UUID) error {
	return r.db.Create(&models.ArtistGenre{ArtistID: artistID, GenreID: genreID}).Error
}

func (r *AssociationRepository) UnlinkArtist(artistID, genreID uuid.UUID) (int64, error) {
	result := r.db.Where("artist_id = ? AND genre_id = ?", artistID, genreID).Delete(&models.ArtistGenre{})
	return result.RowsAffected, result.Error
}
