package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/farellandr/stagepass/internal/middleware"
	"github.com/farellandr/stagepass/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(&models.City{}, &models.Genre{}, &models.Venue{}, &models.Artist{}, &models.Show{}, &models.VenueGenre{}, &models.ArtistGenre{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))

	r.GET("/venues", ListVenues)
	r.POST("/venues/search", SearchVenues)
	r.GET("/venues/:id", GetVenue)
	r.POST("/venues", CreateVenue)
	r.POST("/venues/:id", UpdateVenue)
	r.GET("/venues/:id/delete", DeleteVenue)
	r.GET("/artists", ListArtists)
	r.POST("/artists", CreateArtist)
	r.POST("/shows", CreateShow)

	return r
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func venueForm() url.Values {
	return url.Values{
		"name":       {"The Musical Hop"},
		"city":       {"San Francisco"},
		"state":      {"CA"},
		"address":    {"1015 Folsom Street"},
		"phone":      {"123-123-1234"},
		"image_link": {"https://example.com/hop.jpg"},
		"genres":     {"Jazz", "Reggae"},
	}
}

func createVenueViaAPI(t *testing.T, r *gin.Engine, form url.Values) string {
	t.Helper()
	w := postForm(t, r, "/venues", form)
	if w.Code != http.StatusCreated {
		t.Fatalf("create venue status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		VenueID string `json:"venue_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	return resp.VenueID
}

func TestCreateAndGetVenue(t *testing.T) {
	r := newTestRouter(t)

	form := venueForm()
	form.Set("seeking_talent", "y")
	form.Set("seeking_description", "We are on the lookout for a local artist.")
	id := createVenueViaAPI(t, r, form)

	w := get(t, r, "/venues/"+id)
	if w.Code != http.StatusOK {
		t.Fatalf("get venue status = %d", w.Code)
	}

	var page struct {
		Name          string   `json:"name"`
		Genres        []string `json:"genres"`
		City          string   `json:"city"`
		State         string   `json:"state"`
		SeekingTalent bool     `json:"seeking_talent"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("failed to decode venue page: %v", err)
	}
	if page.Name != "The Musical Hop" || page.City != "San Francisco" || page.State != "CA" {
		t.Errorf("unexpected page: %+v", page)
	}
	if !page.SeekingTalent {
		t.Error("seeking_talent checkbox presence was not applied")
	}
	if len(page.Genres) != 2 {
		t.Errorf("genres = %v, want 2 names", page.Genres)
	}
}

func TestCreateVenueMissingField(t *testing.T) {
	r := newTestRouter(t)

	form := venueForm()
	form.Del("image_link")

	w := postForm(t, r, "/venues", form)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetVenueNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/venues/00000000-0000-0000-0000-000000000001")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestUpdateVenueEndpoint(t *testing.T) {
	r := newTestRouter(t)
	id := createVenueViaAPI(t, r, venueForm())

	form := venueForm()
	form.Set("name", "The Musical Hop II")
	form["genres"] = []string{"Jazz", "Soul"}

	w := postForm(t, r, "/venues/"+id, form)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}

	w = get(t, r, "/venues/"+id)
	var page struct {
		Name   string   `json:"name"`
		Genres []string `json:"genres"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("failed to decode venue page: %v", err)
	}
	if page.Name != "The Musical Hop II" {
		t.Errorf("name = %q after edit", page.Name)
	}
	if len(page.Genres) != 2 {
		t.Errorf("genres = %v after edit, want Jazz and Soul", page.Genres)
	}
}

func TestDeleteVenueEndpoint(t *testing.T) {
	r := newTestRouter(t)
	id := createVenueViaAPI(t, r, venueForm())

	w := get(t, r, "/venues/"+id+"/delete")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}

	w = get(t, r, "/venues/"+id)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status after delete = %d, want 404", w.Code)
	}
}

func TestSearchVenuesEndpoint(t *testing.T) {
	r := newTestRouter(t)
	createVenueViaAPI(t, r, venueForm())

	form := venueForm()
	form.Set("name", "Park Square Live Music & Coffee")
	createVenueViaAPI(t, r, form)

	w := postForm(t, r, "/venues/search", url.Values{"search_term": {"music"}})
	if w.Code != http.StatusOK {
		t.Fatalf("search status = %d", w.Code)
	}

	var results struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("failed to decode search results: %v", err)
	}
	if results.Count != 2 {
		t.Errorf("count = %d, want 2", results.Count)
	}
}

func TestCreateShowInvalidTime(t *testing.T) {
	r := newTestRouter(t)

	w := postForm(t, r, "/shows", url.Values{
		"artist_id":  {"00000000-0000-0000-0000-000000000001"},
		"venue_id":   {"00000000-0000-0000-0000-000000000002"},
		"start_time": {"next tuesday"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
