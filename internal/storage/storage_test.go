package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"fyyur/internal/config"
	"fyyur/internal/models"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "a.db?_foreign_keys=on", SQLiteDSN("a.db"))
	assert.Equal(t, "a.db?cache=shared&_foreign_keys=on", SQLiteDSN("a.db?cache=shared"))
	assert.Equal(t, "a.db?_fk=1", SQLiteDSN("a.db?_fk=1"))
}

func TestConnectAndMigrateEnforcesForeignKeys(t *testing.T) {
	db, err := ConnectDatabase(config.DatabaseConfig{
		Driver: "sqlite",
		URL:    filepath.Join(t.TempDir(), "fyyur.db"),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))

	for _, table := range []string{"venues", "artists", "shows"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	show := models.Show{ArtistID: 41, VenueID: 42, StartTime: time.Now().UTC()}
	assert.Error(t, db.Omit("Artist", "Venue").Create(&show).Error)

	venue := models.Venue{Name: "Hall", Genres: datatypes.NewJSONSlice([]string{"Jazz"})}
	require.NoError(t, db.Create(&venue).Error)

	var loaded models.Venue
	require.NoError(t, db.First(&loaded, venue.ID).Error)
	assert.Equal(t, []string{"Jazz"}, []string(loaded.Genres))
	assert.False(t, loaded.SeekingTalent)
}

func TestConnectDatabaseRejectsUnknownDriver(t *testing.T) {
	_, err := ConnectDatabase(config.DatabaseConfig{Driver: "oracle"}, nil)
	assert.Error(t, err)
}

func TestInitRedis(t *testing.T) {
	client, err := InitRedis(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)

	mr := miniredis.RunT(t)
	client, err = InitRedis(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	require.NotNil(t, client)
	_ = client.Close()

	addr := mr.Addr()
	mr.Close()
	_, err = InitRedis(context.Background(), config.RedisConfig{Addr: addr})
	assert.Error(t, err)
}
