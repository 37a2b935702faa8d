package database

import (
	"starblog/migrations"
	"starblog/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Planet{}, &models.People{}, &models.Favorite{}); err != nil {
		return err
	}

	// Уникальность избранного по пользователю + цели
	if err := migrations.CreateFavoritesUniqueIndexes(db); err != nil {
		return err
	}

	return nil
}
