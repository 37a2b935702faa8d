package models

// Planet - справочная запись каталога
type Planet struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"type:varchar(120);not null"`
	Climate    *string `gorm:"type:varchar(120)"`
	Terrain    *string `gorm:"type:varchar(120)"`
	Population *string `gorm:"type:varchar(120)"`
	Diameter   *string `gorm:"type:varchar(120)"`

	Residents []People `gorm:"foreignKey:HomeworldID;constraint:OnDelete:SET NULL"`
}

func (Planet) TableName() string {
	return "planets"
}

func (p Planet) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":         p.ID,
		"name":       p.Name,
		"climate":    p.Climate,
		"terrain":    p.Terrain,
		"population": p.Population,
		"diameter":   p.Diameter,
	}
}
