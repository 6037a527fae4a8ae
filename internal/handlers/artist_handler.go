package handlers

import (
	"net/http"
	"time"

	"github.com/farellandr/stagepass/internal/helpers"
	"github.com/farellandr/stagepass/internal/services"
	"github.com/farellandr/stagepass/internal/views"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func artistInputFromForm(c *gin.Context) services.ArtistInput {
	return services.ArtistInput{
		Name:               c.PostForm("name"),
		City:               c.PostForm("city"),
		State:              c.PostForm("state"),
		Phone:              c.PostForm("phone"),
		ImageLink:          c.PostForm("image_link"),
		FacebookLink:       c.PostForm("facebook_link"),
		Website:            c.PostForm("website_link"),
		SeekingVenue:       helpers.HasFormKey(c, "seeking_venue"),
		SeekingDescription: c.PostForm("seeking_description"),
		Genres:             c.PostFormArray("genres"),
	}
}

func ListArtists(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	artists, err := views.NewAssembler(gormDB).ArtistList()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artists.")
		return
	}

	c.JSON(http.StatusOK, artists)
}

func SearchArtists(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	term := c.PostForm("search_term")
	results, err := views.NewAssembler(gormDB).SearchArtists(term, time.Now())
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching artists.")
		return
	}

	c.JSON(http.StatusOK, results)
}

func GetArtist(c *gin.Context) {
	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page, err := views.NewAssembler(gormDB).ArtistPage(artistID, time.Now())
	if err != nil {
		helpers.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func CreateArtist(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	artist, err := services.NewArtistService(gormDB).Create(artistInputFromForm(c))
	if err != nil {
		helpers.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Artist " + artist.Name + " was successfully listed.",
		"artist_id": artist.ID,
	})
}

func UpdateArtist(c *gin.Context) {
	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	artist, err := services.NewArtistService(gormDB).Update(artistID, artistInputFromForm(c))
	if err != nil {
		helpers.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Artist " + artist.Name + " was successfully edited.",
		"artist_id": artist.ID,
	})
}
