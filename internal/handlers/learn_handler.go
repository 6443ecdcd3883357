package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hela/internal/learn"
)

// LearnHandler serves the financial-literacy content library.
type LearnHandler struct{}

// NewLearnHandler creates a new LearnHandler.
func NewLearnHandler() *LearnHandler {
	return &LearnHandler{}
}

// GetModules lists the content library, optionally filtered by category.
func (h *LearnHandler) GetModules(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"modules":    learn.Modules(c.Query("category")),
		"categories": learn.Categories(),
	})
}

// GetModule returns one content module.
func (h *LearnHandler) GetModule(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	module, err := learn.ModuleByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"module": module})
}
