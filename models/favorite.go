package models

import "time"

// FavoriteTarget - на что указывает запись избранного
type FavoriteTarget string

const (
	TargetPlanet FavoriteTarget = "planet"
	TargetPerson FavoriteTarget = "people"
)

// Favorite - избранное пользователя. Ровно одно из PlanetID / PeopleID задано,
// это же проверяет CHECK в базе. Создавать через NewPlanetFavorite / NewPersonFavorite.
type Favorite struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    uint  `gorm:"not null;index"`
	PlanetID  *uint `gorm:"index;check:chk_favorites_single_target,(planet_id IS NULL) <> (people_id IS NULL)"`
	PeopleID  *uint `gorm:"index"`
	CreatedAt time.Time

	// Связи подгружаются только для сериализации имени
	Planet *Planet `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE"`
	People *People `gorm:"foreignKey:PeopleID;constraint:OnDelete:CASCADE"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func NewPlanetFavorite(userID, planetID uint) Favorite {
	return Favorite{UserID: userID, PlanetID: &planetID}
}

func NewPersonFavorite(userID, peopleID uint) Favorite {
	return Favorite{UserID: userID, PeopleID: &peopleID}
}

// Target returns the kind of catalog entity the favorite points at and its id.
// ok is false for a row that violates the single-target rule.
func (f Favorite) Target() (target FavoriteTarget, id uint, ok bool) {
	switch {
	case f.PlanetID != nil && f.PeopleID == nil:
		return TargetPlanet, *f.PlanetID, true
	case f.PeopleID != nil && f.PlanetID == nil:
		return TargetPerson, *f.PeopleID, true
	}
	return "", 0, false
}

// Serialize всегда отдаёт id и user_id; planet_* и people_* только если соответствующий id задан.
// Если связанная запись не подгружена или удалена, имя = null.
func (f Favorite) Serialize() map[string]interface{} {
	out := map[string]interface{}{
		"id":      f.ID,
		"user_id": f.UserID,
	}
	if f.PlanetID != nil {
		out["planet_id"] = *f.PlanetID
		if f.Planet != nil {
			out["planet_name"] = f.Planet.Name
		} else {
			out["planet_name"] = nil
		}
	}
	if f.PeopleID != nil {
		out["people_id"] = *f.PeopleID
		if f.People != nil {
			out["people_name"] = f.People.Name
		} else {
			out["people_name"] = nil
		}
	}
	return out
}
