package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"starblog/utils"
)

type Config struct {
	DatabaseURL string
	SQLitePath  string `validate:"required_without=DatabaseURL"`
	Port        string `validate:"required,numeric"`

	// Пользователь, от имени которого работают /users/favorites и /favorite/*
	CurrentUserID int `validate:"required,gt=0"`
	SeedData      bool

	CORSOrigins []string `validate:"required,min=1"`
	LogLevel    string   `validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat   string   `validate:"oneof=json console"`
	GinMode     string   `validate:"omitempty,oneof=debug release test"`
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		utils.Logger().Info().Msg("No .env file found, using environment variables")
	}
	return &Config{
		DatabaseURL:   normalizeDatabaseURL(os.Getenv("DATABASE_URL")),
		SQLitePath:    getenvOrDefault("SQLITE_PATH", "/tmp/test.db"),
		Port:          getenvOrDefault("PORT", "3000"),
		CurrentUserID: getenvIntOrDefault("CURRENT_USER_ID", 1),
		SeedData:      getenvBoolOrDefault("SEED_DATA", false),
		CORSOrigins:   splitList(getenvOrDefault("CORS_ORIGINS", "*")),
		LogLevel:      strings.ToLower(getenvOrDefault("LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(getenvOrDefault("LOG_FORMAT", "json")),
		GinMode:       os.Getenv("GIN_MODE"),
	}
}

// Validate проверяет конфиг по тегам validate
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// UsesPostgres сообщает, задан ли внешний DATABASE_URL
func (c *Config) UsesPostgres() bool {
	return c.DatabaseURL != ""
}

// Heroku-style URLs use the postgres:// scheme, which the driver rejects.
func normalizeDatabaseURL(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(v, "postgres://")
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntOrDefault(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getenvBoolOrDefault(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
