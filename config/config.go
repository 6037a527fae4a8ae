package config

import (
	"fmt"
	"os"

	"github.com/farellandr/stagepass/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}, nil
}

func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := enableUUIDExtension(db); err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&models.City{}, &models.Genre{}, &models.Venue{}, &models.Artist{}, &models.Show{}, &models.VenueGenre{}, &models.ArtistGenre{})
	if err != nil {
		return nil, err
	}

	seedGenres(db)

	return db, nil
}

// seedGenres preloads the genre catalogue offered on the listing forms.
// Unknown names submitted later are still created lazily.
func seedGenres(db *gorm.DB) {
	names := []string{
		"Alternative", "Blues", "Classical", "Country", "Electronic",
		"Folk", "Funk", "Hip-Hop", "Heavy Metal", "Instrumental",
		"Jazz", "Musical Theatre", "Pop", "Punk", "R&B", "Reggae",
		"Rock n Roll", "Soul", "Other",
	}

	for _, name := range names {
		var existing models.Genre
		result := db.Where("name = ?", name).First(&existing)
		if result.Error != nil {
			db.Create(&models.Genre{Name: name})
		}
	}
}
