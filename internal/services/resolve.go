package services

import (
	"errors"

	"github.com/farellandr/stagepass/internal/models"
	"github.com/farellandr/stagepass/internal/repository"
	"gorm.io/gorm"
)

// resolveCity returns the city for (name, state), creating it on first
// reference. There is no uniqueness constraint backing this; two
// concurrent submissions can both miss the lookup and both insert.
// That race is accepted, sequential callers always reuse the row.
func resolveCity(tx *gorm.DB, name, state string) (*models.City, error) {
	cities := repository.NewCityRepository(tx)

	city, err := cities.FindByNameState(name, state)
	if err == nil {
		return city, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr("look up city", err)
	}

	city = &models.City{Name: name, State: state}
	if err := cities.Create(city); err != nil {
		return nil, storageErr("create city", err)
	}
	return city, nil
}

// resolveGenre works like resolveCity, keyed on the genre name.
func resolveGenre(tx *gorm.DB, name string) (*models.Genre, error) {
	genres := repository.NewGenreRepository(tx)

	genre, err := genres.FindByName(name)
	if err == nil {
		return genre, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr("look up genre", err)
	}

	genre = &models.Genre{Name: name}
	if err := genres.Create(genre); err != nil {
		return nil, storageErr("create genre", err)
	}
	return genre, nil
}
