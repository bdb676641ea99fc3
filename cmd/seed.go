package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fyyur/internal/models"
	"fyyur/internal/repository"
	"fyyur/internal/storage"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Заполнить пустую базу демонстрационными площадками, исполнителями и концертами",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		if err := storage.Migrate(a.db); err != nil {
			return err
		}
		seeded, err := Seed(cmd.Context(), a.db)
		if err != nil {
			return err
		}
		if !seeded {
			a.log.Info("База уже содержит данные, заполнение пропущено")
			return nil
		}
		a.log.Info("Демонстрационные данные добавлены",
			zap.Int("venues", len(demoVenues)), zap.Int("artists", len(demoArtists)), zap.Int("shows", len(demoShows)))
		return nil
	},
}

var demoVenues = []models.Venue{
	{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		Genres:             datatypes.NewJSONSlice([]string{"Jazz", "Reggae", "Classical", "Folk"}),
		Website:            "https://www.themusicalhop.com",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
	},
	{
		Name:         "The Dueling Pianos Bar",
		City:         "New York",
		State:        "NY",
		Address:      "335 Delancey Street",
		Phone:        "914-003-1132",
		Genres:       datatypes.NewJSONSlice([]string{"Classical", "R&B", "Hip-Hop"}),
		Website:      "https://www.theduelingpianos.com",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
	},
	{
		Name:         "Park Square Live Music & Coffee",
		City:         "San Francisco",
		State:        "CA",
		Address:      "34 Whiskey Moore Ave",
		Phone:        "415-000-1234",
		Genres:       datatypes.NewJSONSlice([]string{"Rock n Roll", "Jazz", "Classical", "Folk"}),
		Website:      "https://www.parksquarelivemusicandcoffee.com",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
	},
}

var demoArtists = []models.Artist{
	{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Genres:             datatypes.NewJSONSlice([]string{"Rock n Roll"}),
		Website:            "https://www.gunsnpetalsband.com",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
	},
	{
		Name:      "Matt Quevedo",
		City:      "New York",
		State:     "NY",
		Phone:     "300-400-5000",
		Genres:    datatypes.NewJSONSlice([]string{"Jazz"}),
		ImageLink: "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
	},
	{
		Name:      "The Wild Sax Band",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		Genres:    datatypes.NewJSONSlice([]string{"Jazz", "Classical"}),
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
	},
}

// demoShow индексы площадки и исполнителя в demoVenues и demoArtists.
type demoShow struct {
	venue, artist int
	start         time.Time
}

var demoShows = []demoShow{
	{venue: 0, artist: 0, start: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{venue: 2, artist: 1, start: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, start: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, start: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, start: time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
}

// Seed добавляет демонстрационные данные, только если таблицы пусты.
// Возвращает false, если в базе уже есть площадки, исполнители или концерты.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	venues := repository.NewVenueRepo(db)
	artists := repository.NewArtistRepo(db)
	shows := repository.NewShowRepo(db)

	for _, count := range []func(context.Context) (int64, error){venues.Count, artists.Count, shows.Count} {
		n, err := count(ctx)
		if err != nil {
			return false, err
		}
		if n > 0 {
			return false, nil
		}
	}

	venueIDs := make([]uint, len(demoVenues))
	for i := range demoVenues {
		venue := demoVenues[i]
		if err := venues.Create(ctx, &venue); err != nil {
			return false, fmt.Errorf("seed venue %q: %w", venue.Name, err)
		}
		venueIDs[i] = venue.ID
	}

	artistIDs := make([]uint, len(demoArtists))
	for i := range demoArtists {
		artist := demoArtists[i]
		if err := artists.Create(ctx, &artist); err != nil {
			return false, fmt.Errorf("seed artist %q: %w", artist.Name, err)
		}
		artistIDs[i] = artist.ID
	}

	for _, s := range demoShows {
		show := models.Show{VenueID: venueIDs[s.venue], ArtistID: artistIDs[s.artist], StartTime: s.start}
		if err := shows.Create(ctx, &show); err != nil {
			return false, fmt.Errorf("seed show: %w", err)
		}
	}
	return true, nil
}
