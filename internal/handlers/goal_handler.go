package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hela/internal/errors"
	"hela/internal/models"
)

// GoalHandler handles savings-goal requests.
type GoalHandler struct {
	registry *Registry
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(registry *Registry) *GoalHandler {
	return &GoalHandler{registry: registry}
}

// goalJSON augments a goal with its computed progress percentage.
func goalJSON(g models.Goal) gin.H {
	return gin.H{
		"id":             g.ID,
		"name":           g.Name,
		"target_amount":  g.TargetAmount,
		"current_amount": g.CurrentAmount,
		"deadline":       g.Deadline,
		"notes":          g.Notes,
		"priority":       g.Priority,
		"status":         g.Status,
		"progress":       g.Progress(),
		"created_at":     g.CreatedAt,
	}
}

// CreateGoalRequest represents the request payload for creating a goal.
type CreateGoalRequest struct {
	Name          string              `json:"name" binding:"required,min=1,max=100"`
	TargetAmount  float64             `json:"target_amount" binding:"required"`
	CurrentAmount float64             `json:"current_amount"`
	Deadline      time.Time           `json:"deadline"`
	Notes         string              `json:"notes" binding:"max=500"`
	Priority      models.GoalPriority `json:"priority" binding:"required,goal_priority"`
}

// UpdateGoalRequest represents the request payload for a partial goal update.
type UpdateGoalRequest struct {
	Name          *string              `json:"name" binding:"omitempty,min=1,max=100"`
	TargetAmount  *float64             `json:"target_amount"`
	CurrentAmount *float64             `json:"current_amount"`
	Deadline      *time.Time           `json:"deadline"`
	Notes         *string              `json:"notes" binding:"omitempty,max=500"`
	Priority      *models.GoalPriority `json:"priority" binding:"omitempty,goal_priority"`
	Status        *models.GoalStatus   `json:"status" binding:"omitempty,goal_status"`
}

// GetGoals lists all goals in insertion order.
func (h *GoalHandler) GetGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals := h.registry.Session(userID).Store.Goals()
	out := make([]gin.H, len(goals))
	for i, g := range goals {
		out[i] = goalJSON(g)
	}
	c.JSON(http.StatusOK, gin.H{"goals": out})
}

// CreateGoal appends a new goal.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal := h.registry.Session(userID).Store.AddGoal(models.Goal{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		Notes:         req.Notes,
		Priority:      req.Priority,
		Status:        models.GoalStatusActive,
	})

	c.JSON(http.StatusCreated, gin.H{"goal": goalJSON(goal)})
}

// UpdateGoal applies a partial update to one goal.
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.registry.Session(userID).Store.UpdateGoal(c.Param("id"), models.GoalUpdate{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		Notes:         req.Notes,
		Priority:      req.Priority,
		Status:        req.Status,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goalJSON(goal)})
}

// DeleteGoal removes one goal.
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.registry.Session(userID).Store.DeleteGoal(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
}
