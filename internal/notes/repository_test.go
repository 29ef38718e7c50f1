package notes_test

import (
	"context"
	"strings"
	"time"

	"github.com/matheus-feu/nf-bot-zap/internal/config"
	"github.com/matheus-feu/nf-bot-zap/internal/db"
	"github.com/matheus-feu/nf-bot-zap/internal/models"
	"github.com/matheus-feu/nf-bot-zap/internal/notes"
	"github.com/matheus-feu/nf-bot-zap/internal/testhelpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var _ = Describe("Repository", func() {
	var dbConn *gorm.DB
	var repo *notes.Repository

	newNote := func() *models.Note {
		return &models.Note{
			Provider:    "Acme Comercio Ltda",
			AccessKey:   "35240512345678000199550010000123451000123456",
			DateOfIssue: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			TotalValue:  decimal.RequireFromString("10.50"),
			PDFURL:      "https://example.com/nota.pdf",
			Items: []models.NoteItem{
				{
					ProductName:   "Parafuso 3mm",
					Quantity:      decimal.RequireFromString("10"),
					UnitOfMeasure: "UN",
					UnitValue:     decimal.RequireFromString("0.3333"),
				},
				{
					ProductName:   "Porca 3mm",
					Quantity:      decimal.RequireFromString("10"),
					UnitOfMeasure: "UN",
					UnitValue:     decimal.RequireFromString("0.1500"),
				},
			},
		}
	}

	BeforeEach(func() {
		cfg, err := config.LoadConfig()
		Expect(err).NotTo(HaveOccurred())

		dbConn, err = db.InitDB(cfg.DatabaseURL)
		if err != nil {
			Skip("database not available: " + err.Error())
		}

		Expect(db.Migrate(dbConn)).To(Succeed())
		testhelpers.CleanupDB(dbConn)

		repo = notes.NewRepository(dbConn)
	})

	It("inserts the note and its items in one transaction", func() {
		ctx := context.Background()
		note := newNote()

		Expect(repo.CreateWithItems(ctx, note)).To(Succeed())
		Expect(note.ID).NotTo(BeZero())

		var stored models.Note
		Expect(dbConn.Preload("Items").First(&stored, note.ID).Error).To(Succeed())
		Expect(stored.Provider).To(Equal("Acme Comercio Ltda"))
		Expect(stored.Items).To(HaveLen(2))
		for _, item := range stored.Items {
			Expect(item.NoteID).To(Equal(note.ID))
		}
	})

	It("persists a note without items", func() {
		ctx := context.Background()
		note := newNote()
		note.Items = nil

		Expect(repo.CreateWithItems(ctx, note)).To(Succeed())

		var count int64
		Expect(dbConn.Model(&models.NoteItem{}).Count(&count).Error).To(Succeed())
		Expect(count).To(BeZero())
	})

	It("rolls back the note when an item insert fails", func() {
		ctx := context.Background()
		note := newNote()
		// unit_of_measure is varchar(10); force a failure on the item insert.
		note.Items[1].UnitOfMeasure = strings.Repeat("X", 40)

		Expect(repo.CreateWithItems(ctx, note)).NotTo(Succeed())

		var noteCount, itemCount int64
		Expect(dbConn.Model(&models.Note{}).Count(&noteCount).Error).To(Succeed())
		Expect(dbConn.Model(&models.NoteItem{}).Count(&itemCount).Error).To(Succeed())
		Expect(noteCount).To(BeZero())
		Expect(itemCount).To(BeZero())
	})

	It("creates duplicate rows for resubmitted access keys", func() {
		ctx := context.Background()

		Expect(repo.CreateWithItems(ctx, newNote())).To(Succeed())
		Expect(repo.CreateWithItems(ctx, newNote())).To(Succeed())

		var count int64
		Expect(dbConn.Model(&models.Note{}).Where("access_key = ?", "35240512345678000199550010000123451000123456").Count(&count).Error).To(Succeed())
		Expect(count).To(Equal(int64(2)))
	})
})
