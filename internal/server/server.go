package server

import (
	"fmt"
	"os"

	"github.com/farellandr/stagepass/config"
	"github.com/farellandr/stagepass/internal/handlers"
	"github.com/farellandr/stagepass/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Start() error {
	if err := config.InitLogger(); err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	venues := r.Group("/venues")
	{
		venues.GET("", handlers.ListVenues)
		venues.POST("/search", handlers.SearchVenues)
		venues.GET("/:id", handlers.GetVenue)
		venues.POST("", handlers.CreateVenue)
		venues.POST("/:id", handlers.UpdateVenue)
		venues.GET("/:id/delete", handlers.DeleteVenue)
	}

	artists := r.Group("/artists")
	{
		artists.GET("", handlers.ListArtists)
		artists.POST("/search", handlers.SearchArtists)
		artists.GET("/:id", handlers.GetArtist)
		artists.POST("", handlers.CreateArtist)
		artists.POST("/:id", handlers.UpdateArtist)
	}

	shows := r.Group("/shows")
	{
		shows.GET("", handlers.ListShows)
		shows.POST("", handlers.CreateShow)
	}

	r.GET("/genres", handlers.ListGenres)
}
