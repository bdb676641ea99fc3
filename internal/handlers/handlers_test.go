package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fyyur/internal/clock"
	"fyyur/internal/csrf"
	"fyyur/internal/events"
	"fyyur/internal/flash"
	"fyyur/internal/models"
	"fyyur/internal/repository"
	"fyyur/internal/response"
	"fyyur/internal/testutil"
)

var testNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

type recordedEvents struct {
	mu  sync.Mutex
	got []events.Event
}

func (r *recordedEvents) Publish(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, e)
	return nil
}

type testApp struct {
	db     *gorm.DB
	router *gin.Engine
	events *recordedEvents
}

func setupTestApp(t *testing.T, csrfManager *csrf.Manager) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	rec := &recordedEvents{}
	h := New(Deps{
		DB:     db,
		Flash:  flash.NewMemoryStore(),
		CSRF:   csrfManager,
		Events: rec,
		Clock:  clock.NewFixed(testNow),
	})
	r, err := NewRouter(h, RouterOptions{})
	require.NoError(t, err)
	return &testApp{db: db, router: r, events: rec}
}

func (a *testApp) get(path string, jsonAccept bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if jsonAccept {
		req.Header.Set("Accept", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) postForm(path string, values url.Values, jsonAccept bool, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if jsonAccept {
		req.Header.Set("Accept", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func venueValues(name string) url.Values {
	return url.Values{
		"name":           {name},
		"city":           {"New York"},
		"state":          {"NY"},
		"address":        {"131 W 3rd St"},
		"phone":          {"212-475-8592"},
		"genres":         {"Jazz"},
		"seeking_talent": {"true"},
	}
}

func TestHomeAndListings(t *testing.T) {
	app := setupTestApp(t, nil)
	testutil.InsertVenue(t, app.db, "The Musical Hop", "San Francisco", "CA")
	testutil.InsertVenue(t, app.db, "The Dueling Pianos Bar", "New York", "NY")
	testutil.InsertArtist(t, app.db, "Guns N Petals")

	w := app.get("/", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fyyur")

	w = app.get("/venues", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "San Francisco, CA")
	assert.Contains(t, w.Body.String(), "The Dueling Pianos Bar")

	areas := decode[[]repository.Area](t, app.get("/venues", true))
	require.Len(t, areas, 2)
	assert.Equal(t, "New York", areas[0].City)

	artists := decode[[]repository.NamedRef](t, app.get("/artists", true))
	require.Len(t, artists, 1)
	assert.Equal(t, "Guns N Petals", artists[0].Name)
}

func TestVenueDetailPartitionsShows(t *testing.T) {
	app := setupTestApp(t, nil)
	venue := testutil.InsertVenue(t, app.db, "The Musical Hop", "San Francisco", "CA")
	artist := testutil.InsertArtist(t, app.db, "Guns N Petals")

	testutil.InsertShow(t, app.db, artist.ID, venue.ID, testNow.Add(-time.Hour))
	testutil.InsertShow(t, app.db, artist.ID, venue.ID, testNow.Add(time.Hour))
	testutil.InsertShow(t, app.db, artist.ID, venue.ID, testNow)

	w := app.get("/venues/"+itoa(venue.ID), true)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[response.VenueDetail](t, w)

	assert.Equal(t, venue.Name, detail.Name)
	assert.Equal(t, []string{"Jazz", "Folk"}, detail.Genres)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	require.Len(t, detail.PastShows, 1)
	require.Len(t, detail.UpcomingShows, 1)
	assert.Equal(t, "Mon 01, 15, 2024 9:00AM", detail.PastShows[0].StartTime)
	assert.Equal(t, "Mon 01, 15, 2024 11:00AM", detail.UpcomingShows[0].StartTime)
	assert.Equal(t, artist.ImageLink, detail.UpcomingShows[0].ArtistImageLink)
	assert.Equal(t, venue.ImageLink, detail.UpcomingShows[0].VenueImageLink)

	w = app.get("/venues/"+itoa(venue.ID), false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1 Upcoming Show")
	assert.Contains(t, w.Body.String(), "1 Past Show")
}

func TestArtistDetailUsesOwnID(t *testing.T) {
	app := setupTestApp(t, nil)
	v1 := testutil.InsertVenue(t, app.db, "V1", "San Francisco", "CA")
	v2 := testutil.InsertVenue(t, app.db, "V2", "San Francisco", "CA")
	a1 := testutil.InsertArtist(t, app.db, "A1")
	a2 := testutil.InsertArtist(t, app.db, "A2")

	// v1.ID == a1.ID: фильтр по venue_id вернул бы чужие концерты
	testutil.InsertShow(t, app.db, a2.ID, v1.ID, testNow.Add(time.Hour))
	testutil.InsertShow(t, app.db, a1.ID, v2.ID, testNow.Add(2*time.Hour))

	detail := decode[response.ArtistDetail](t, app.get("/artists/"+itoa(a1.ID), true))
	require.Len(t, detail.UpcomingShows, 1)
	assert.Empty(t, detail.PastShows)
	assert.Equal(t, v2.ID, detail.UpcomingShows[0].VenueID)
	assert.Equal(t, v2.Name, detail.UpcomingShows[0].VenueName)
	assert.Equal(t, v2.ImageLink, detail.UpcomingShows[0].VenueImageLink)
}

func TestDetailNotFound(t *testing.T) {
	app := setupTestApp(t, nil)

	for _, path := range []string{"/venues/999999", "/artists/999999", "/venues/abc", "/artists/0"} {
		w := app.get(path, false)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "404", path)
	}

	w := app.get("/venues/999999", true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.CodeNotFound, decode[response.ErrorResponse](t, w).Code)

	w = app.get("/no/such/page", false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not Found")
}

func TestSearchEmptyTermReturnsAll(t *testing.T) {
	app := setupTestApp(t, nil)
	testutil.InsertVenue(t, app.db, "The Musical Hop", "San Francisco", "CA")
	testutil.InsertVenue(t, app.db, "Park Square Live Music & Coffee", "San Francisco", "CA")
	testutil.InsertArtist(t, app.db, "Guns N Petals")
	testutil.InsertArtist(t, app.db, "Matt Quevedo")
	testutil.InsertArtist(t, app.db, "The Wild Sax Band")

	venues := decode[response.VenueSearchResponse](t, app.postForm("/venues/search", url.Values{"search_term": {""}}, true))
	assert.Equal(t, 2, venues.Results.Count)
	assert.Len(t, venues.Results.Data, 2)

	artists := decode[response.ArtistSearchResponse](t, app.postForm("/artists/search", url.Values{}, true))
	assert.Equal(t, 3, artists.Results.Count)
	assert.Equal(t, "", artists.SearchTerm)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	app := setupTestApp(t, nil)
	venue := testutil.InsertVenue(t, app.db, "The Musical Hop", "San Francisco", "CA")
	rock := testutil.InsertArtist(t, app.db, "Rock Steady")
	testutil.InsertArtist(t, app.db, "the rockers")
	testutil.InsertArtist(t, app.db, "Jazz Trio")

	testutil.InsertShow(t, app.db, rock.ID, venue.ID, testNow.Add(time.Hour))
	testutil.InsertShow(t, app.db, rock.ID, venue.ID, testNow.Add(-time.Hour))

	upper := decode[response.ArtistSearchResponse](t, app.postForm("/artists/search", url.Values{"search_term": {"ROCK"}}, true))
	lower := decode[response.ArtistSearchResponse](t, app.postForm("/artists/search", url.Values{"search_term": {"rock"}}, true))

	assert.Equal(t, upper.Results, lower.Results)
	require.Equal(t, 2, upper.Results.Count)
	assert.Equal(t, response.ArtistHit{ID: rock.ID, Name: "Rock Steady", NumUpcomingShows: 1}, upper.Results.Data[0])
	assert.Equal(t, 0, upper.Results.Data[1].NumUpcomingShows)

	w := app.postForm("/venues/search", url.Values{"search_term": {"HOP"}}, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `Number of search results for "HOP": 1`)
}

func TestSearchTermIsNotTrimmed(t *testing.T) {
	app := setupTestApp(t, nil)
	guns := testutil.InsertArtist(t, app.db, "Guns N Petals")
	testutil.InsertArtist(t, app.db, "Jazz")

	res := decode[response.ArtistSearchResponse](t, app.postForm("/artists/search", url.Values{"search_term": {" "}}, true))
	assert.Equal(t, " ", res.SearchTerm)
	require.Equal(t, 1, res.Results.Count)
	assert.Equal(t, guns.ID, res.Results.Data[0].ID)

	res = decode[response.ArtistSearchResponse](t, app.postForm("/artists/search", url.Values{"search_term": {"jazz "}}, true))
	assert.Equal(t, "jazz ", res.SearchTerm)
	assert.Zero(t, res.Results.Count)
	assert.Empty(t, res.Results.Data)
}

func TestCreateVenue(t *testing.T) {
	app := setupTestApp(t, nil)
	existing := testutil.InsertVenue(t, app.db, "The Musical Hop", "San Francisco", "CA")

	w := app.postForm("/venues/create", venueValues("The Blue Note"), false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Venue The Blue Note was successfully listed!")

	assert.EqualValues(t, 2, testutil.CountRows(t, app.db, &models.Venue{}))

	var created models.Venue
	require.NoError(t, app.db.Where("name = ?", "The Blue Note").First(&created).Error)
	assert.True(t, created.SeekingTalent)
	assert.Equal(t, []string{"Jazz"}, []string(created.Genres))

	var reloaded models.Venue
	require.NoError(t, app.db.First(&reloaded, existing.ID).Error)
	assert.Equal(t, existing.Name, reloaded.Name)
	assert.Equal(t, existing.City, reloaded.City)
	assert.Equal(t, existing.Address, reloaded.Address)
	assert.Equal(t, []string(existing.Genres), []string(reloaded.Genres))

	require.Len(t, app.events.got, 1)
	assert.Equal(t, events.VenueListed, app.events.got[0].Type)
	assert.Equal(t, created.ID, app.events.got[0].ID)
}

func TestCreateVenueJSON(t *testing.T) {
	app := setupTestApp(t, nil)

	w := app.postForm("/venues/create", venueValues("The Blue Note"), true)
	require.Equal(t, http.StatusCreated, w.Code)
	listed := decode[response.ListedResponse](t, w)
	assert.Equal(t, "Venue The Blue Note was successfully listed!", listed.Message)
	assert.NotZero(t, listed.ID)
}

func TestCreateVenueValidationFailure(t *testing.T) {
	app := setupTestApp(t, nil)

	values := venueValues("")
	values.Del("genres")
	w := app.postForm("/venues/create", values, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `action="/venues/create"`)
	assert.Contains(t, w.Body.String(), "This field is required.")
	assert.Zero(t, testutil.CountRows(t, app.db, &models.Venue{}))

	w = app.postForm("/venues/create", values, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errResp := decode[response.ErrorResponse](t, w)
	assert.Equal(t, response.CodeValidation, errResp.Code)
	assert.Contains(t, errResp.Fields, "genres")
	assert.Contains(t, errResp.Fields, "name")
}

func TestCreateArtist(t *testing.T) {
	app := setupTestApp(t, nil)

	w := app.postForm("/artists/create", url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"genres":        {"Rock n Roll"},
		"seeking_venue": {"true"},
		"website":       {"https://www.gunsnpetalsband.com"},
	}, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Artist Guns N Petals was successfully listed!")
	assert.EqualValues(t, 1, testutil.CountRows(t, app.db, &models.Artist{}))
}

func TestCreateVenueWriteFailure(t *testing.T) {
	app := setupTestApp(t, nil)
	require.NoError(t, app.db.Migrator().DropTable(&models.Show{}, &models.Venue{}))

	w := app.postForm("/venues/create", venueValues("The Blue Note"), false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "An error occurred. Venue The Blue Note could not be listed. Error: ")
	assert.NotContains(t, w.Body.String(), "successfully listed")

	w = app.postForm("/venues/create", venueValues("The Blue Note"), true)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errResp := decode[response.ErrorResponse](t, w)
	assert.Equal(t, response.CodeWriteFailed, errResp.Code)
	assert.Contains(t, errResp.Message, "An error occurred. Venue The Blue Note could not be listed.")
	assert.NotEmpty(t, errResp.Details)

	assert.Empty(t, app.events.got)
}

func TestCreateArtistWriteFailure(t *testing.T) {
	app := setupTestApp(t, nil)
	require.NoError(t, app.db.Migrator().DropTable(&models.Show{}, &models.Artist{}))

	values := url.Values{
		"name":   {"Guns N Petals"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Rock n Roll"},
	}
	w := app.postForm("/artists/create", values, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "An error occurred. Artist Guns N Petals could not be listed. Error: ")

	w = app.postForm("/artists/create", values, true)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errResp := decode[response.ErrorResponse](t, w)
	assert.Equal(t, response.CodeWriteFailed, errResp.Code)
	assert.Contains(t, errResp.Message, "An error occurred. Artist Guns N Petals could not be listed.")

	assert.Empty(t, app.events.got)
}

func TestCreateShow(t *testing.T) {
	app := setupTestApp(t, nil)
	venue := testutil.InsertVenue(t, app.db, "The Musical Hop", "San Francisco", "CA")
	artist := testutil.InsertArtist(t, app.db, "Guns N Petals")

	w := app.postForm("/shows/create", url.Values{
		"venue_id":   {itoa(venue.ID)},
		"artist_id":  {itoa(artist.ID)},
		"start_time": {"2035-04-01 20:00:00"},
	}, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Show was successfully listed!")

	shows := decode[[]struct {
		VenueName  string `json:"venue_name"`
		ArtistName string `json:"artist_name"`
		StartTime  string `json:"start_time"`
	}](t, app.get("/shows", true))
	require.Len(t, shows, 1)
	assert.Equal(t, "The Musical Hop", shows[0].VenueName)
	assert.Equal(t, "Guns N Petals", shows[0].ArtistName)
	assert.Equal(t, "Sun 04, 01, 2035 8:00PM", shows[0].StartTime)
}

func TestCreateShowUnknownReferences(t *testing.T) {
	app := setupTestApp(t, nil)
	venue := testutil.InsertVenue(t, app.db, "The Musical Hop", "San Francisco", "CA")
	artist := testutil.InsertArtist(t, app.db, "Guns N Petals")
	testutil.InsertShow(t, app.db, artist.ID, venue.ID, testNow.Add(time.Hour))

	for _, values := range []url.Values{
		{"venue_id": {"999999"}, "artist_id": {itoa(artist.ID)}, "start_time": {"2035-04-01 20:00:00"}},
		{"venue_id": {itoa(venue.ID)}, "artist_id": {"999999"}, "start_time": {"2035-04-01 20:00:00"}},
	} {
		w := app.postForm("/shows/create", values, false)
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "An error occurred. Show could not be listed.")
		assert.Contains(t, body, `action="/shows/create"`)
		assert.EqualValues(t, 1, testutil.CountRows(t, app.db, &models.Show{}))
	}

	w := app.postForm("/shows/create", url.Values{
		"venue_id": {"999999"}, "artist_id": {itoa(artist.ID)}, "start_time": {"2035-04-01 20:00:00"},
	}, true)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, response.CodeWriteFailed, decode[response.ErrorResponse](t, w).Code)
	assert.EqualValues(t, 1, testutil.CountRows(t, app.db, &models.Show{}))
	assert.Empty(t, app.events.got)
}

func TestCreateFormsRender(t *testing.T) {
	app := setupTestApp(t, nil)
	testutil.InsertVenue(t, app.db, "The Musical Hop", "San Francisco", "CA")
	testutil.InsertArtist(t, app.db, "Guns N Petals")

	for _, path := range []string{"/venues/create", "/artists/create", "/shows/create"} {
		w := app.get(path, false)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `action="`+path+`"`, path)
	}

	body := app.get("/shows/create", false).Body.String()
	assert.Contains(t, body, "Guns N Petals")
	assert.Contains(t, body, `value="2024-01-15 10:00:00"`)
}

func TestCSRFRequiredWhenEnabled(t *testing.T) {
	app := setupTestApp(t, csrf.NewManager("test-secret", time.Hour))

	w := app.postForm("/venues/create", venueValues("The Blue Note"), false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, testutil.CountRows(t, app.db, &models.Venue{}))

	form := app.get("/venues/create", false)
	require.Equal(t, http.StatusOK, form.Code)
	cookies := form.Result().Cookies()
	require.NotEmpty(t, cookies)

	m := regexp.MustCompile(`name="csrf_token" value="([^"]+)"`).FindStringSubmatch(form.Body.String())
	require.Len(t, m, 2)

	values := venueValues("The Blue Note")
	values.Set("csrf_token", m[1])
	w = app.postForm("/venues/create", values, false, cookies...)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Venue The Blue Note was successfully listed!")
	assert.EqualValues(t, 1, testutil.CountRows(t, app.db, &models.Venue{}))
}

func TestPanicRendersServerError(t *testing.T) {
	app := setupTestApp(t, nil)
	app.router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := app.get("/boom", false)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server Error")

	w = app.get("/boom", true)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.CodeServer, decode[response.ErrorResponse](t, w).Code)
}

func TestStaticAssets(t *testing.T) {
	app := setupTestApp(t, nil)
	w := app.get("/static/css/main.css", false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
