package migrations

import "gorm.io/gorm"

// CreateFavoritesUniqueIndexes запрещает повторное добавление одной и той же
// планеты или персонажа в избранное одного пользователя.
// NULL в planet_id / people_id не участвует в сравнении, поэтому два индекса
// не мешают друг другу.
func CreateFavoritesUniqueIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_favorites_user_planet ON favorites(user_id, planet_id)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_favorites_user_people ON favorites(user_id, people_id)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
