package services

import (
	"context"
	"errors"

	"starblog/models"

	"gorm.io/gorm"
)

// CatalogService - чтение справочных данных: персонажи, планеты, пользователи
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

func (s *CatalogService) ListPeople(ctx context.Context) ([]models.People, error) {
	people := []models.People{}
	if err := s.DB.WithContext(ctx).Order("id").Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

func (s *CatalogService) GetPerson(ctx context.Context, id uint) (*models.People, error) {
	var person models.People
	if err := s.DB.WithContext(ctx).First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return &person, nil
}

func (s *CatalogService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	planets := []models.Planet{}
	if err := s.DB.WithContext(ctx).Order("id").Find(&planets).Error; err != nil {
		return nil, err
	}
	return planets, nil
}

func (s *CatalogService) GetPlanet(ctx context.Context, id uint) (*models.Planet, error) {
	var planet models.Planet
	if err := s.DB.WithContext(ctx).First(&planet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanetNotFound
		}
		return nil, err
	}
	return &planet, nil
}

// ListResidents возвращает персонажей, у которых планета указана как родная
func (s *CatalogService) ListResidents(ctx context.Context, planetID uint) ([]models.People, error) {
	if _, err := s.GetPlanet(ctx, planetID); err != nil {
		return nil, err
	}
	residents := []models.People{}
	if err := s.DB.WithContext(ctx).Where("homeworld_id = ?", planetID).Order("id").Find(&residents).Error; err != nil {
		return nil, err
	}
	return residents, nil
}

func (s *CatalogService) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.DB.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
