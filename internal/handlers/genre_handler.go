package handlers

import (
	"net/http"

	"github.com/farellandr/stagepass/internal/helpers"
	"github.com/farellandr/stagepass/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListGenres returns the genre catalogue the listing forms offer.
func ListGenres(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	genres, err := repository.NewGenreRepository(gormDB).ListAll()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving genres.")
		return
	}

	names := make([]string, 0, len(genres))
	for _, genre := range genres {
		names = append(names, genre.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"genres": names,
	})
}
