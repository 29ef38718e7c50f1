package db

import (
	"fmt"

	"github.com/matheus-feu/nf-bot-zap/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info), // Log SQL queries
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the notes tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Note{}, &models.NoteItem{})
}
