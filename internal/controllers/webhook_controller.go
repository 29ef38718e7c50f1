package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/matheus-feu/nf-bot-zap/internal/events"
	"github.com/matheus-feu/nf-bot-zap/internal/pkg/evolution"
	"github.com/matheus-feu/nf-bot-zap/internal/tasks"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

// TaskEnqueuer schedules background work. *asynq.Client satisfies it; tests
// substitute an in-memory recorder.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type WebhookController struct {
	Tasks     TaskEnqueuer
	Evolution *evolution.Client
}

// HandleEvolutionEvent receives one webhook event, classifies it and
// acknowledges immediately. The response is always 200; pipeline outcomes
// are never reflected in the HTTP status.
func (wc *WebhookController) HandleEvolutionEvent(c *gin.Context) {
	var event events.WebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		log.Printf("failed to decode webhook body: %v", err)
		c.JSON(http.StatusOK, gin.H{"message": "ignored"})
		return
	}

	result := events.Classify(&event, time.Now().UTC())

	switch result.Kind {
	case events.KindAccept:
		task, err := tasks.NewProcessNoteTask(*result.Request)
		if err != nil {
			log.Printf("failed to build process note task: %v", err)
			c.JSON(http.StatusOK, gin.H{"message": "failed to schedule processing"})
			return
		}

		if _, err := wc.Tasks.Enqueue(task); err != nil {
			log.Printf("failed to enqueue process note task: %v", err)
			c.JSON(http.StatusOK, gin.H{"message": "failed to schedule processing"})
			return
		}

	case events.KindReject:
		// Fire and forget so the acknowledgement never waits on Evolution.
		go wc.sendRejection(result.SenderID)
	}

	c.JSON(http.StatusOK, gin.H{"message": result.Status})
}

func (wc *WebhookController) sendRejection(senderID string) {
	if err := wc.Evolution.SendText(context.Background(), senderID, tasks.MsgInvalidFileType); err != nil {
		log.Printf("failed to send rejection to %s: %v", senderID, err)
	}
}
