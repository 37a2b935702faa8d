package database

import (
	"starblog/models"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// SeedCatalog заполняет пустые таблицы пользователей, планет и персонажей стартовыми данными.
// Непустые таблицы не трогает.
func SeedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedUsers(tx); err != nil {
			return err
		}
		planets, err := seedPlanets(tx)
		if err != nil {
			return err
		}
		return seedPeople(tx, planets)
	})
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	// id не задаем: его выдает последовательность таблицы
	user := models.User{Email: "luke@rebellion.org", Password: "usetheforce", IsActive: true}
	return db.Create(&user).Error
}

// seedPlanets возвращает планеты по имени, в том числе уже существующие
func seedPlanets(db *gorm.DB) (map[string]uint, error) {
	var count int64
	if err := db.Model(&models.Planet{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		planets := []models.Planet{
			{Name: "Tatooine", Climate: strPtr("arid"), Terrain: strPtr("desert"), Population: strPtr("200000"), Diameter: strPtr("10465")},
			{Name: "Alderaan", Climate: strPtr("temperate"), Terrain: strPtr("grasslands, mountains"), Population: strPtr("2000000000"), Diameter: strPtr("12500")},
			{Name: "Hoth", Climate: strPtr("frozen"), Terrain: strPtr("tundra, ice caves, mountain ranges"), Population: strPtr("unknown"), Diameter: strPtr("7200")},
		}
		if err := db.Create(&planets).Error; err != nil {
			return nil, err
		}
	}

	var all []models.Planet
	if err := db.Find(&all).Error; err != nil {
		return nil, err
	}
	byName := make(map[string]uint, len(all))
	for _, p := range all {
		byName[p.Name] = p.ID
	}
	return byName, nil
}

func seedPeople(db *gorm.DB, planets map[string]uint) error {
	var count int64
	if err := db.Model(&models.People{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	homeworld := func(name string) *uint {
		if id, ok := planets[name]; ok {
			return &id
		}
		return nil
	}
	people := []models.People{
		{Name: "Luke Skywalker", Height: strPtr("172"), Mass: strPtr("77"), HairColor: strPtr("blond"), EyeColor: strPtr("blue"), BirthYear: strPtr("19BBY"), Gender: strPtr("male"), HomeworldID: homeworld("Tatooine")},
		{Name: "Leia Organa", Height: strPtr("150"), Mass: strPtr("49"), HairColor: strPtr("brown"), EyeColor: strPtr("brown"), BirthYear: strPtr("19BBY"), Gender: strPtr("female"), HomeworldID: homeworld("Alderaan")},
		{Name: "Darth Vader", Height: strPtr("202"), Mass: strPtr("136"), HairColor: strPtr("none"), EyeColor: strPtr("yellow"), BirthYear: strPtr("41.9BBY"), Gender: strPtr("male"), HomeworldID: homeworld("Tatooine")},
	}
	return db.Create(&people).Error
}
