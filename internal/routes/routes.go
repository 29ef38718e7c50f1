package routes

import (
	"github.com/matheus-feu/nf-bot-zap/internal/controllers"
	"github.com/matheus-feu/nf-bot-zap/internal/pkg/evolution"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the controllers and API routes
func SetupRouter(db *gorm.DB, evolutionClient *evolution.Client, enqueuer controllers.TaskEnqueuer) *gin.Engine {
	webhookController := &controllers.WebhookController{
		Tasks:     enqueuer,
		Evolution: evolutionClient,
	}
	notesController := &controllers.NotesController{DB: db}

	// Set up Gin router
	router := gin.Default()

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	// Group API routes under /api/v1
	api := router.Group("/api/v1")
	{
		// POST /api/v1/evolution/webhook
		// Receives message events from the Evolution API
		api.POST("/evolution/webhook", webhookController.HandleEvolutionEvent)

		notes := api.Group("/notes")
		{
			// GET /api/v1/notes
			// Lists stored fiscal notes with their items
			notes.GET("", notesController.GetNotes)

			// GET /api/v1/notes/:id
			notes.GET("/:id", notesController.GetNote)
		}
	}

	return router
}
