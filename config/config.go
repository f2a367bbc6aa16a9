package config

import (
	"fmt"

	"github.com/bradycon/gatherpoint/internal/models"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`

	Port string `envconfig:"PORT" default:"8080"`

	AdminUser string `envconfig:"ADMIN_USER" default:"admin"`
	// Bcrypt hash of the admin password. When empty, AdminPassword is
	// compared verbatim (dev only).
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
	AdminPassword     string `envconfig:"ADMIN_PASSWORD"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("GATHERPOINT", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Duplicate-key violations surface as gorm.ErrDuplicatedKey so the
		// attendance unique index can be treated as the conflict signal.
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Event{},
		&models.Attendee{},
		&models.Accommodation{},
		&models.EventAttendance{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
