package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hela/internal/errors"
	"hela/internal/models"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	registry *Registry
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(registry *Registry) *BudgetHandler {
	return &BudgetHandler{registry: registry}
}

// UpdateBudgetRequest represents the request payload for replacing the
// budget. Leftover is stored as supplied, even when it does not equal
// income minus expenses.
type UpdateBudgetRequest struct {
	Income   *float64 `json:"income" binding:"required"`
	Expenses *float64 `json:"expenses" binding:"required"`
	Leftover *float64 `json:"leftover" binding:"required"`
}

// GetBudget returns the current budget record.
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": h.registry.Session(userID).Store.Budget()})
}

// UpdateBudget replaces the budget record.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget := models.Budget{Income: *req.Income, Expenses: *req.Expenses, Leftover: *req.Leftover}
	h.registry.Session(userID).Store.UpdateBudget(budget)

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}
