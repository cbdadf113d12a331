package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port      string
	DBDriver  string // "sqlite" or "mysql"
	DBDSN     string
	BaseURL   string
	UploadDir string
	GinMode   string
}

func Load() Config {
	return Config{
		Port:      getEnv("PORT", "8080"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBDSN:     getEnv("DB_DSN", "restaurant.db"),
		BaseURL:   getEnv("BASE_URL", "http://localhost:8080"),
		UploadDir: getEnv("UPLOAD_DIR", "public/uploads"),
		GinMode:   getEnv("GIN_MODE", ""),
	}
}

func InitDB(cfg Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
