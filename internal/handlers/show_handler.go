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

func ListShows(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	shows, err := views.NewAssembler(gormDB).ShowList()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving shows.")
		return
	}

	c.JSON(http.StatusOK, shows)
}

func CreateShow(c *gin.Context) {
	artistID, err := uuid.Parse(c.PostForm("artist_id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}
	venueID, err := uuid.Parse(c.PostForm("venue_id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}
	startTime, err := time.Parse(time.RFC3339, c.PostForm("start_time"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid start time format.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	show, err := services.NewShowService(gormDB).Create(services.ShowInput{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: startTime,
	})
	if err != nil {
		helpers.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Show was successfully listed.",
		"show_id": show.ID,
	})
}
