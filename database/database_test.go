package database

import (
	"path/filepath"
	"testing"

	"starblog/config"
	"starblog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(&config.Config{SQLitePath: ":memory:", LogLevel: "error"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "planets", "people", "favorites"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex(&models.Favorite{}, "uniq_favorites_user_planet"))
	assert.True(t, db.Migrator().HasIndex(&models.Favorite{}, "uniq_favorites_user_people"))
}

func TestOpenFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.db")
	db, err := Open(&config.Config{SQLitePath: path, LogLevel: "error"})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))
	assert.FileExists(t, path)
}

func TestSeedCatalog(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, Migrate(db))

	require.NoError(t, SeedCatalog(db))

	var users, planets, people int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Planet{}).Count(&planets).Error)
	require.NoError(t, db.Model(&models.People{}).Count(&people).Error)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(3), planets)
	assert.Equal(t, int64(3), people)

	var luke models.People
	require.NoError(t, db.Preload("Homeworld").Where("name = ?", "Luke Skywalker").First(&luke).Error)
	require.NotNil(t, luke.Homeworld)
	assert.Equal(t, "Tatooine", luke.Homeworld.Name)

	var tatooine models.Planet
	require.NoError(t, db.Preload("Residents").Where("name = ?", "Tatooine").First(&tatooine).Error)
	assert.Len(t, tatooine.Residents, 2)
}

func TestSeedCatalogSkipsFilledTables(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, db.Create(&models.Planet{Name: "Dagobah"}).Error)

	require.NoError(t, SeedCatalog(db))
	require.NoError(t, SeedCatalog(db))

	var planets, people int64
	require.NoError(t, db.Model(&models.Planet{}).Count(&planets).Error)
	require.NoError(t, db.Model(&models.People{}).Count(&people).Error)
	assert.Equal(t, int64(1), planets)
	assert.Equal(t, int64(3), people)

	// планет из сида нет, поэтому родной мир не проставлен
	var orphans int64
	require.NoError(t, db.Model(&models.People{}).Where("homeworld_id IS NULL").Count(&orphans).Error)
	assert.Equal(t, int64(3), orphans)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "/tmp/blog.db?_foreign_keys=on&_busy_timeout=5000", sqliteDSN("/tmp/blog.db"))
	assert.Equal(t, "file:blog.db?cache=shared&_foreign_keys=on&_busy_timeout=5000", sqliteDSN("file:blog.db?cache=shared"))
}

func TestSeededUserKeepsSequence(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, SeedCatalog(db))

	var seeded models.User
	require.NoError(t, db.Where("email = ?", "luke@rebellion.org").First(&seeded).Error)
	assert.Equal(t, uint(1), seeded.ID)

	next := models.User{Email: "leia@rebellion.org", Password: "alderaan", IsActive: true}
	require.NoError(t, db.Create(&next).Error)
	assert.Equal(t, uint(2), next.ID)
}
