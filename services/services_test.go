package services

import (
	"path/filepath"
	"testing"

	"starblog/config"
	"starblog/database"
	"starblog/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.Config{SQLitePath: ":memory:", LogLevel: "error"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// newFileTestDB открывает базу в файле, чтобы запросы шли через несколько соединений
func newFileTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.Config{SQLitePath: filepath.Join(t.TempDir(), "favorites.db"), LogLevel: "error"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// seedFixtures: пользователь 1, Tatooine(1), Alderaan(2), Luke(1) с Tatooine, Leia(2) без родной планеты
func seedFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()
	tatooine := uint(1)
	require.NoError(t, db.Create(&models.User{ID: 1, Email: "luke@rebellion.org", Password: "x", IsActive: true}).Error)
	require.NoError(t, db.Create(&[]models.Planet{{ID: 1, Name: "Tatooine"}, {ID: 2, Name: "Alderaan"}}).Error)
	require.NoError(t, db.Create(&[]models.People{{ID: 1, Name: "Luke Skywalker", HomeworldID: &tatooine}, {ID: 2, Name: "Leia Organa"}}).Error)
}
