package views

import (
	"errors"
	"time"

	"github.com/farellandr/stagepass/internal/repository"
	"github.com/farellandr/stagepass/internal/services"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Summary is the listing/search row shape shared by venues and
// artists.
type Summary struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	NumUpcomingShows int64     `json:"num_upcoming_shows"`
}

// CityGroup holds every venue of one city row. Grouping is by city
// identity, so duplicate (name, state) rows would show as separate
// groups.
type CityGroup struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

type SearchResults struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

type VenueShow struct {
	ArtistID        uuid.UUID `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

type ArtistShow struct {
	VenueID        uuid.UUID `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

type VenuePage struct {
	ID                 uuid.UUID   `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	Address            string      `json:"address"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingTalent      bool        `json:"seeking_talent"`
	SeekingDescription string      `json:"seeking_description"`
	ImageLink          string      `json:"image_link"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShows          []VenueShow `json:"past_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type ArtistPage struct {
	ID                 uuid.UUID    `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingVenue       bool         `json:"seeking_venue"`
	SeekingDescription string       `json:"seeking_description"`
	ImageLink          string       `json:"image_link"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShows          []ArtistShow `json:"past_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

type ShowEntry struct {
	VenueID         uuid.UUID `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uuid.UUID `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

type ArtistRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Assembler composes repository reads into the page view models. All
// methods are read-only; the now argument fixes the upcoming/past
// boundary.
type Assembler struct {
	db *gorm.DB
}

func NewAssembler(db *gorm.DB) *Assembler {
	return &Assembler{db: db}
}

// VenueBoard groups every venue under its city with upcoming show
// counts.
func (a *Assembler) VenueBoard(now time.Time) ([]CityGroup, error) {
	cities := repository.NewCityRepository(a.db)
	venues := repository.NewVenueRepository(a.db)
	shows := repository.NewShowRepository(a.db)

	all, err := cities.ListAll()
	if err != nil {
		return nil, err
	}

	groups := make([]CityGroup, 0, len(all))
	for _, city := range all {
		inCity, err := venues.ListByCity(city.ID)
		if err != nil {
			return nil, err
		}

		summaries := make([]Summary, 0, len(inCity))
		for _, venue := range inCity {
			count, err := shows.CountUpcomingByVenue(venue.ID, now)
			if err != nil {
				return nil, err
			}
			summaries = append(summaries, Summary{ID: venue.ID, Name: venue.Name, NumUpcomingShows: count})
		}
		groups = append(groups, CityGroup{City: city.Name, State: city.State, Venues: summaries})
	}
	return groups, nil
}

func (a *Assembler) SearchVenues(term string, now time.Time) (*SearchResults, error) {
	venues := repository.NewVenueRepository(a.db)
	shows := repository.NewShowRepository(a.db)

	matches, err := venues.SearchByName(term)
	if err != nil {
		return nil, err
	}

	data := make([]Summary, 0, len(matches))
	for _, venue := range matches {
		count, err := shows.CountUpcomingByVenue(venue.ID, now)
		if err != nil {
			return nil, err
		}
		data = append(data, Summary{ID: venue.ID, Name: venue.Name, NumUpcomingShows: count})
	}
	return &SearchResults{Count: len(matches), Data: data}, nil
}

func (a *Assembler) VenuePage(id uuid.UUID, now time.Time) (*VenuePage, error) {
	venue, err := repository.NewVenueRepository(a.db).FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &services.NotFoundError{Resource: "venue", ID: id}
		}
		return nil, err
	}

	genres, err := repository.NewGenreRepository(a.db).NamesForVenue(venue.ID)
	if err != nil {
		return nil, err
	}

	city, err := repository.NewCityRepository(a.db).FindByID(venue.CityID)
	if err != nil {
		return nil, err
	}

	shows := repository.NewShowRepository(a.db)
	upcoming, err := shows.ListUpcomingByVenue(venue.ID, now)
	if err != nil {
		return nil, err
	}
	past, err := shows.ListPastByVenue(venue.ID, now)
	if err != nil {
		return nil, err
	}

	upcomingViews := make([]VenueShow, 0, len(upcoming))
	for _, show := range upcoming {
		upcomingViews = append(upcomingViews, VenueShow{
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       show.StartTime,
		})
	}
	pastViews := make([]VenueShow, 0, len(past))
	for _, show := range past {
		pastViews = append(pastViews, VenueShow{
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       show.StartTime,
		})
	}

	return &VenuePage{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             genres,
		Address:            venue.Address,
		City:               city.Name,
		State:              city.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		UpcomingShows:      upcomingViews,
		PastShows:          pastViews,
		PastShowsCount:     len(pastViews),
		UpcomingShowsCount: len(upcomingViews),
	}, nil
}

// ArtistList is a flat id/name listing.
func (a *Assembler) ArtistList() ([]ArtistRef, error) {
	artists, err := repository.NewArtistRepository(a.db).ListAll()
	if err != nil {
		return nil, err
	}

	refs := make([]ArtistRef, 0, len(artists))
	for _, artist := range artists {
		refs = append(refs, ArtistRef{ID: artist.ID, Name: artist.Name})
	}
	return refs, nil
}

func (a *Assembler) SearchArtists(term string, now time.Time) (*SearchResults, error) {
	artists := repository.NewArtistRepository(a.db)
	shows := repository.NewShowRepository(a.db)

	matches, err := artists.SearchByName(term)
	if err != nil {
		return nil, err
	}

	data := make([]Summary, 0, len(matches))
	for _, artist := range matches {
		count, err := shows.CountUpcomingByArtist(artist.ID, now)
		if err != nil {
			return nil, err
		}
		data = append(data, Summary{ID: artist.ID, Name: artist.Name, NumUpcomingShows: count})
	}
	return &SearchResults{Count: len(matches), Data: data}, nil
}

func (a *Assembler) ArtistPage(id uuid.UUID, now time.Time) (*ArtistPage, error) {
	artist, err := repository.NewArtistRepository(a.db).FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &services.NotFoundError{Resource: "artist", ID: id}
		}
		return nil, err
	}

	genres, err := repository.NewGenreRepository(a.db).NamesForArtist(artist.ID)
	if err != nil {
		return nil, err
	}

	city, err := repository.NewCityRepository(a.db).FindByID(artist.CityID)
	if err != nil {
		return nil, err
	}

	shows := repository.NewShowRepository(a.db)
	upcoming, err := shows.ListUpcomingByArtist(artist.ID, now)
	if err != nil {
		return nil, err
	}
	past, err := shows.ListPastByArtist(artist.ID, now)
	if err != nil {
		return nil, err
	}

	upcomingViews := make([]ArtistShow, 0, len(upcoming))
	for _, show := range upcoming {
		upcomingViews = append(upcomingViews, ArtistShow{
			VenueID:        show.VenueID,
			VenueName:      show.Venue.Name,
			VenueImageLink: show.Venue.ImageLink,
			StartTime:      show.StartTime,
		})
	}
	pastViews := make([]ArtistShow, 0, len(past))
	for _, show := range past {
		pastViews = append(pastViews, ArtistShow{
			VenueID:        show.VenueID,
			VenueName:      show.Venue.Name,
			VenueImageLink: show.Venue.ImageLink,
			StartTime:      show.StartTime,
		})
	}

	return &ArtistPage{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             genres,
		City:               city.Name,
		State:              city.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		UpcomingShows:      upcomingViews,
		PastShows:          pastViews,
		PastShowsCount:     len(pastViews),
		UpcomingShowsCount: len(upcomingViews),
	}, nil
}

func (a *Assembler) ShowList() ([]ShowEntry, error) {
	shows, err := repository.NewShowRepository(a.db).ListAll()
	if err != nil {
		return nil, err
	}

	entries := make([]ShowEntry, 0, len(shows))
	for _, show := range shows {
		entries = append(entries, ShowEntry{
			VenueID:         show.VenueID,
			VenueName:       show.Venue.Name,
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       show.StartTime,
		})
	}
	return entries, nil
}
