package models

// People - персонаж каталога; Homeworld может отсутствовать
type People struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(120);not null"`
	Height      *string `gorm:"type:varchar(120)"`
	Mass        *string `gorm:"type:varchar(120)"`
	HairColor   *string `gorm:"type:varchar(120)"`
	EyeColor    *string `gorm:"type:varchar(120)"`
	BirthYear   *string `gorm:"type:varchar(120)"`
	Gender      *string `gorm:"type:varchar(120)"`
	HomeworldID *uint   `gorm:"index"`

	Homeworld *Planet `gorm:"foreignKey:HomeworldID;constraint:OnDelete:SET NULL"`
}

func (People) TableName() string {
	return "people"
}

func (p People) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":           p.ID,
		"name":         p.Name,
		"height":       p.Height,
		"mass":         p.Mass,
		"hair_color":   p.HairColor,
		"eye_color":    p.EyeColor,
		"birth_year":   p.BirthYear,
		"gender":       p.Gender,
		"homeworld_id": p.HomeworldID,
	}
}
