package response

import (
	"fyyur/internal/repository"
	"fyyur/internal/schedule"
)

// Коды ошибок для JSON-ответов.
const (
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION_ERROR"
	CodeWriteFailed = "WRITE_FAILED"
	CodeCSRF        = "CSRF_INVALID"
	CodeServer      = "SERVER_ERROR"
)

// ErrorResponse представляет ответ с ошибкой API
type ErrorResponse struct {
	// Код ошибки для программной обработки
	// example: VALIDATION_ERROR
	Code string `json:"code"`

	// Человекочитаемое сообщение об ошибке
	// example: This field is required.
	Message string `json:"message"`

	// Дополнительные детали об ошибке (опционально)
	// example: venue does not exist: id 42
	Details string `json:"details,omitempty"`

	// Ошибки по полям формы
	Fields map[string]string `json:"fields,omitempty"`
}

// ListedResponse ответ на успешное создание записи
type ListedResponse struct {
	Message string `json:"message" example:"Venue The Musical Hop was successfully listed!"`
	ID      uint   `json:"id" example:"1"`
}

// HomeResponse ответ главной страницы
type HomeResponse struct {
	Message string `json:"message" example:"Fyyur"`
}

// SearchResult найденные записи и их число
type SearchResult[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

// SearchResponse результат поиска вместе с поисковой строкой
type SearchResponse[T any] struct {
	SearchTerm string          `json:"search_term"`
	Results    SearchResult[T] `json:"results"`
}

// ArtistHit исполнитель в результатах поиска
type ArtistHit struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueSearchResponse и ArtistSearchResponse нужны для документации swagger.
type VenueSearchResponse = SearchResponse[repository.NamedRef]
type ArtistSearchResponse = SearchResponse[ArtistHit]

// VenueDetail площадка с прошедшими и предстоящими концертами
type VenueDetail struct {
	ID                 uint                `json:"id"`
	Name               string              `json:"name"`
	Genres             []string            `json:"genres"`
	Address            string              `json:"address"`
	City               string              `json:"city"`
	State              string              `json:"state"`
	Phone              string              `json:"phone"`
	Website            string              `json:"website"`
	FacebookLink       string              `json:"facebook_link"`
	SeekingTalent      bool                `json:"seeking_talent"`
	SeekingDescription string              `json:"seeking_description"`
	ImageLink          string              `json:"image_link"`
	PastShows          []schedule.ShowView `json:"past_shows"`
	UpcomingShows      []schedule.ShowView `json:"upcoming_shows"`
	PastShowsCount     int                 `json:"past_shows_count"`
	UpcomingShowsCount int                 `json:"upcoming_shows_count"`
}

// ArtistDetail исполнитель с прошедшими и предстоящими концертами
type ArtistDetail struct {
	ID                 uint                `json:"id"`
	Name               string              `json:"name"`
	Genres             []string            `json:"genres"`
	City               string              `json:"city"`
	State              string              `json:"state"`
	Phone              string              `json:"phone"`
	Website            string              `json:"website"`
	FacebookLink       string              `json:"facebook_link"`
	SeekingVenue       bool                `json:"seeking_venue"`
	SeekingDescription string              `json:"seeking_description"`
	ImageLink          string              `json:"image_link"`
	PastShows          []schedule.ShowView `json:"past_shows"`
	UpcomingShows      []schedule.ShowView `json:"upcoming_shows"`
	PastShowsCount     int                 `json:"past_shows_count"`
	UpcomingShowsCount int                 `json:"upcoming_shows_count"`
}
