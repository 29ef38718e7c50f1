package tasks

import (
	"encoding/json"

	"github.com/matheus-feu/nf-bot-zap/internal/events"

	"github.com/hibiken/asynq"
)

// This file defines the "types" and "payloads" for our async tasks.

// Task type names
const (
	TypeTaskProcessNote = "task:process_note"
)

// ProcessNotePayload is the data a job needs to run
type ProcessNotePayload struct {
	SenderID      string `json:"sender_id"`
	MessageID     string `json:"message_id"`
	DocumentTitle string `json:"document_title"`
	DocumentURL   string `json:"document_url"`
}

// NewProcessNoteTask creates a new task for asynq
func NewProcessNoteTask(req events.ExtractionRequest) (*asynq.Task, error) {
	payload := ProcessNotePayload{
		SenderID:      req.SenderID,
		MessageID:     req.MessageID,
		DocumentTitle: req.DocumentTitle,
		DocumentURL:   req.DocumentURL,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TypeTaskProcessNote, payloadBytes), nil
}
