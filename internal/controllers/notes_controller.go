package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/matheus-feu/nf-bot-zap/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotesController struct {
	DB *gorm.DB
}

// GetNotes returns stored fiscal notes, newest first, with their items.
func (nc *NotesController) GetNotes(c *gin.Context) {
	limit := getLimitWithDefault(c, 50)

	var stored []models.Note
	err := nc.DB.Preload("Items").Order("created_at DESC").Limit(limit).Find(&stored).Error
	if err != nil {
		log.Printf("failed to get notes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notes": stored,
	})
}

// GetNote returns one fiscal note with its items
func (nc *NotesController) GetNote(c *gin.Context) {
	id := c.Param("id")

	var note models.Note
	err := nc.DB.Preload("Items").Where("id = ?", id).First(&note).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}

		log.Printf("failed to get note: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"note": note,
	})
}

func getLimitWithDefault(c *gin.Context, defaultValue int) int {
	var err error
	limit := defaultValue
	if c.Query("limit") != "" {
		limit, err = strconv.Atoi(c.Query("limit"))
		if err != nil {
			log.Printf("failed to parse limit: %v, using default value: %d", err, defaultValue)
			return defaultValue
		}
	}
	return limit
}
