// Package schedule делит концерты на прошедшие и предстоящие и форматирует их время.
// Статус концерта не хранится в базе: он вычисляется при каждом чтении.
package schedule

import (
	"time"

	"fyyur/internal/models"
)

// ShowView концерт вместе с именами и картинками исполнителя и площадки.
type ShowView struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	VenueImageLink  string `json:"venue_image_link"`
	StartTime       string `json:"start_time"`
}

// Partition делит концерты относительно now с английскими названиями дней.
func Partition(shows []models.Show, now time.Time) (past, upcoming []ShowView) {
	return defaultFormatter.Partition(shows, now)
}

// Partition: start < now -> past, start > now -> upcoming.
// Концерт, начинающийся ровно в now, не попадает ни в один список.
// Порядок входного списка сохраняется. Связи Venue и Artist должны быть загружены.
func (f *Formatter) Partition(shows []models.Show, now time.Time) (past, upcoming []ShowView) {
	past = make([]ShowView, 0)
	upcoming = make([]ShowView, 0)
	for _, show := range shows {
		switch {
		case show.StartTime.Before(now):
			past = append(past, f.View(show))
		case show.StartTime.After(now):
			upcoming = append(upcoming, f.View(show))
		}
	}
	return past, upcoming
}

// View обогащает один концерт; картинка каждой стороны берётся по её собственному ключу.
func (f *Formatter) View(show models.Show) ShowView {
	return ShowView{
		ArtistID:        show.ArtistID,
		ArtistName:      show.Artist.Name,
		ArtistImageLink: show.Artist.ImageLink,
		VenueID:         show.VenueID,
		VenueName:       show.Venue.Name,
		VenueImageLink:  show.Venue.ImageLink,
		StartTime:       f.Format(show.StartTime, FormatMedium),
	}
}

// UpcomingByArtist считает предстоящие концерты каждого исполнителя.
func UpcomingByArtist(shows []models.Show, now time.Time) map[uint]int {
	counts := make(map[uint]int)
	for _, show := range shows {
		if show.StartTime.After(now) {
			counts[show.ArtistID]++
		}
	}
	return counts
}
