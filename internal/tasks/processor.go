package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/matheus-feu/nf-bot-zap/internal/config"
	"github.com/matheus-feu/nf-bot-zap/internal/notes"
	"github.com/matheus-feu/nf-bot-zap/internal/pkg/evolution"
	"github.com/matheus-feu/nf-bot-zap/internal/pkg/extractor"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

// TaskProcessor holds dependencies for our task handlers
type TaskProcessor struct {
	DB              *gorm.DB
	config          *config.Config
	evolutionClient *evolution.Client
	extractor       *extractor.Extractor
	repository      *notes.Repository
}

// NewTaskProcessor creates a new TaskProcessor
func NewTaskProcessor(db *gorm.DB, config *config.Config) *TaskProcessor {
	return &TaskProcessor{
		DB:              db,
		config:          config,
		evolutionClient: evolution.New(config.EvolutionAPIURL, config.EvolutionAPIKey, config.EvolutionInstanceName),
		extractor:       extractor.New(config.OpenAIAPIKey),
		repository:      notes.NewRepository(db),
	}
}

// HandleProcessNoteTask runs the full pipeline for one accepted document:
// fetch media, extract, normalize, persist, notify. Every failure is
// contained here and converted into exactly one failure message; the handler
// never returns an error, so asynq performs no retry.
func (p *TaskProcessor) HandleProcessNoteTask(ctx context.Context, t *asynq.Task) error {
	var payload ProcessNotePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	log.Printf("Processing fiscal note %q for %s", payload.DocumentTitle, payload.SenderID)

	// Last-resort safety net: a panic anywhere in the pipeline still results
	// in a single failure notification.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic while processing fiscal note for %s: %v", payload.SenderID, r)
			p.notify(ctx, payload.SenderID, MsgProcessingFailed)
		}
	}()

	if err := p.processNote(ctx, payload); err != nil {
		log.Printf("failed to process fiscal note %q for %s: %v", payload.DocumentTitle, payload.SenderID, err)
		p.notify(ctx, payload.SenderID, MsgProcessingFailed)
		return nil
	}

	p.notify(ctx, payload.SenderID, SuccessMessage(payload.DocumentTitle))
	return nil
}

func (p *TaskProcessor) processNote(ctx context.Context, payload ProcessNotePayload) error {
	pdfB64, err := p.evolutionClient.GetBase64FromMediaMessage(ctx, payload.MessageID)
	if err != nil {
		return fmt.Errorf("fetch media: %w", err)
	}

	raw, err := p.extractor.ExtractFromBase64(ctx, pdfB64)
	if err != nil {
		return fmt.Errorf("extract fiscal note: %w", err)
	}

	note, err := notes.BuildNote(raw, payload.DocumentURL)
	if err != nil {
		return fmt.Errorf("validate fiscal note: %w", err)
	}

	if err := p.repository.CreateWithItems(ctx, note); err != nil {
		return err
	}

	log.Printf("stored fiscal note %d (%s, %d items)", note.ID, note.Provider, len(note.Items))
	return nil
}

func (p *TaskProcessor) GetEvolutionClient() *evolution.Client {
	return p.evolutionClient
}
