package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fyyur/internal/config"
	"fyyur/internal/models"
	"fyyur/internal/storage"
)

// NewTestDB возвращает мигрированную пустую базу. По умолчанию это sqlite-файл
// во временном каталоге; TEST_DATABASE_URL переключает тесты на Postgres.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: "sqlite",
		URL:    filepath.Join(t.TempDir(), "fyyur_test.db"),
	}
	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		cfg = config.DatabaseConfig{Driver: "postgres", URL: dsn}
	}

	db, err := storage.ConnectDatabase(cfg, nil)
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}
	t.Cleanup(func() { _ = storage.Close(db) })

	if err := storage.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	if cfg.Driver == "postgres" {
		if err := db.Exec("TRUNCATE TABLE shows, artists, venues RESTART IDENTITY CASCADE").Error; err != nil {
			t.Fatalf("truncate: %v", err)
		}
	}
	return db
}

func InsertVenue(t *testing.T, db *gorm.DB, name, city, state string) models.Venue {
	t.Helper()
	venue := models.Venue{
		Name:      name,
		City:      city,
		State:     state,
		Address:   "1015 Folsom Street",
		Phone:     "123-123-1234",
		ImageLink: "https://img.example/" + name,
		Genres:    datatypes.NewJSONSlice([]string{"Jazz", "Folk"}),
	}
	if err := db.Create(&venue).Error; err != nil {
		t.Fatalf("insert venue: %v", err)
	}
	return venue
}

func InsertArtist(t *testing.T, db *gorm.DB, name string) models.Artist {
	t.Helper()
	artist := models.Artist{
		Name:      name,
		City:      "San Francisco",
		State:     "CA",
		ImageLink: "https://img.example/" + name,
		Genres:    datatypes.NewJSONSlice([]string{"Rock n Roll"}),
	}
	if err := db.Create(&artist).Error; err != nil {
		t.Fatalf("insert artist: %v", err)
	}
	return artist
}

func InsertShow(t *testing.T, db *gorm.DB, artistID, venueID uint, start time.Time) models.Show {
	t.Helper()
	show := models.Show{ArtistID: artistID, VenueID: venueID, StartTime: start.UTC()}
	if err := db.Omit("Artist", "Venue").Create(&show).Error; err != nil {
		t.Fatalf("insert show: %v", err)
	}
	return show
}

func CountRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
