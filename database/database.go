package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"starblog/config"
	"starblog/utils"
)

// Open подключается к PostgreSQL, если задан DATABASE_URL, иначе к локальному файлу SQLite
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         utils.GormLogger(cfg.LogLevel == "debug" || cfg.LogLevel == "trace"),
		TranslateError: true,
	}

	if cfg.UsesPostgres() {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(cfg.SQLitePath)), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", cfg.SQLitePath, err)
	}
	if isMemory(cfg.SQLitePath) {
		// каждое новое соединение к :memory: - отдельная пустая база
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func isMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}
