package services

import (
	"context"
	"errors"
	"strings"

	"starblog/models"

	"gorm.io/gorm"
)

// favoriteKind описывает одну из двух разновидностей избранного
type favoriteKind struct {
	column     string
	target     interface{}
	build      func(userID, targetID uint) models.Favorite
	noTarget   *Error
	duplicate  *Error
	noFavorite *Error
}

var (
	planetFavorites = favoriteKind{
		column:     "planet_id",
		target:     &models.Planet{},
		build:      models.NewPlanetFavorite,
		noTarget:   ErrPlanetNotFound,
		duplicate:  ErrPlanetAlreadyFavorite,
		noFavorite: ErrFavoritePlanetNotFound,
	}
	personFavorites = favoriteKind{
		column:     "people_id",
		target:     &models.People{},
		build:      models.NewPersonFavorite,
		noTarget:   ErrPersonNotFound,
		duplicate:  ErrPersonAlreadyFavorite,
		noFavorite: ErrFavoritePersonNotFound,
	}
)

// FavoriteService - избранное пользователя. Каждая мутация - один INSERT или DELETE.
type FavoriteService struct {
	DB *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{DB: db}
}

func (s *FavoriteService) ListFavorites(ctx context.Context, userID uint) ([]models.Favorite, error) {
	db := s.DB.WithContext(ctx)
	if err := s.ensureExists(db, &models.User{}, userID, ErrUserNotFound); err != nil {
		return nil, err
	}

	favorites := []models.Favorite{}
	err := db.Preload("Planet").Preload("People").
		Where("user_id = ?", userID).
		Order("id").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (s *FavoriteService) AddPlanetFavorite(ctx context.Context, userID, planetID uint) (*models.Favorite, error) {
	return s.add(ctx, planetFavorites, userID, planetID)
}

func (s *FavoriteService) AddPersonFavorite(ctx context.Context, userID, peopleID uint) (*models.Favorite, error) {
	return s.add(ctx, personFavorites, userID, peopleID)
}

func (s *FavoriteService) RemovePlanetFavorite(ctx context.Context, userID, planetID uint) error {
	return s.remove(ctx, planetFavorites, userID, planetID)
}

func (s *FavoriteService) RemovePersonFavorite(ctx context.Context, userID, peopleID uint) error {
	return s.remove(ctx, personFavorites, userID, peopleID)
}

func (s *FavoriteService) add(ctx context.Context, kind favoriteKind, userID, targetID uint) (*models.Favorite, error) {
	db := s.DB.WithContext(ctx)

	// Проверяем существование пользователя и цели
	if err := s.ensureExists(db, &models.User{}, userID, ErrUserNotFound); err != nil {
		return nil, err
	}
	if err := s.ensureExists(db, kind.target, targetID, kind.noTarget); err != nil {
		return nil, err
	}

	// Проверяем, не добавлено ли уже в избранное
	var existing int64
	if err := db.Model(&models.Favorite{}).
		Where("user_id = ? AND "+kind.column+" = ?", userID, targetID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, kind.duplicate
	}

	fav := kind.build(userID, targetID)
	if err := db.Create(&fav).Error; err != nil {
		// параллельный запрос успел вставить ту же пару
		if isUniqueViolation(err) {
			return nil, kind.duplicate
		}
		return nil, err
	}

	if err := db.Preload("Planet").Preload("People").First(&fav, fav.ID).Error; err != nil {
		return nil, err
	}
	return &fav, nil
}

func (s *FavoriteService) remove(ctx context.Context, kind favoriteKind, userID, targetID uint) error {
	db := s.DB.WithContext(ctx)

	var fav models.Favorite
	err := db.Where("user_id = ? AND "+kind.column+" = ?", userID, targetID).First(&fav).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kind.noFavorite
		}
		return err
	}

	return db.Delete(&fav).Error
}

func (s *FavoriteService) ensureExists(db *gorm.DB, model interface{}, id uint, missing *Error) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return missing
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
