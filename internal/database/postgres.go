package database

import (
	"fmt"

	"github.com/growlog/growlog-api/internal/config"
	"github.com/growlog/growlog-api/internal/database/migrations"
	"github.com/growlog/growlog-api/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresDB opens the database, auto-migrates the schema and runs the
// registered migrations. TranslateError lets unique-index violations surface
// as gorm.ErrDuplicatedKey so the repositories can map them to conflicts.
func NewPostgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Mood{},
		&domain.Reflection{},
		&domain.Todo{},
	); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
