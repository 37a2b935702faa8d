package models

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"type:varchar(120);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(80);not null"`
	IsActive bool   `gorm:"not null;default:true"`

	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}

// Serialize - пароль наружу не отдаём
func (u User) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":        u.ID,
		"email":     u.Email,
		"is_active": u.IsActive,
	}
}
