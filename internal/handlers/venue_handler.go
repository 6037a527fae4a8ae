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

func venueInputFromForm(c *gin.Context) services.VenueInput {
	return services.VenueInput{
		Name:               c.PostForm("name"),
		City:               c.PostForm("city"),
		State:              c.PostForm("state"),
		Address:            c.PostForm("address"),
		Phone:              c.PostForm("phone"),
		ImageLink:          c.PostForm("image_link"),
		FacebookLink:       c.PostForm("facebook_link"),
		Website:            c.PostForm("website_link"),
		SeekingTalent:      helpers.HasFormKey(c, "seeking_talent"),
		SeekingDescription: c.PostForm("seeking_description"),
		Genres:             c.PostFormArray("genres"),
	}
}

func ListVenues(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	board, err := views.NewAssembler(gormDB).VenueBoard(time.Now())
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
		return
	}

	c.JSON(http.StatusOK, board)
}

func SearchVenues(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	term := c.PostForm("search_term")
	results, err := views.NewAssembler(gormDB).SearchVenues(term, time.Now())
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching venues.")
		return
	}

	c.JSON(http.StatusOK, results)
}

func GetVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page, err := views.NewAssembler(gormDB).VenuePage(venueID, time.Now())
	if err != nil {
		helpers.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func CreateVenue(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	venue, err := services.NewVenueService(gormDB).Create(venueInputFromForm(c))
	if err != nil {
		helpers.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Venue " + venue.Name + " was successfully listed.",
		"venue_id": venue.ID,
	})
}

func UpdateVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	venue, err := services.NewVenueService(gormDB).Update(venueID, venueInputFromForm(c))
	if err != nil {
		helpers.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Venue " + venue.Name + " was successfully edited.",
		"venue_id": venue.ID,
	})
}

func DeleteVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	if err := services.NewVenueService(gormDB).Delete(venueID); err != nil {
		helpers.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Venue deleted successfully.",
	})
}
