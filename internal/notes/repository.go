package notes

import (
	"context"
	"fmt"

	"github.com/matheus-feu/nf-bot-zap/internal/models"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CreateWithItems inserts the note header, then its items referencing the
// generated id, inside a single transaction. Any failure rolls the whole
// write back so a note is never committed without its items.
func (r *Repository) CreateWithItems(ctx context.Context, note *models.Note) error {
	items := note.Items
	note.Items = nil

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(note).Error; err != nil {
			return fmt.Errorf("insert note: %w", err)
		}

		for i := range items {
			items[i].NoteID = note.ID
		}

		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("insert note items: %w", err)
			}
		}

		return nil
	})

	note.Items = items
	return err
}
