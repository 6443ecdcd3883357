package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hela/internal/errors"
	"hela/internal/models"
)

// ReminderHandler handles bill-reminder requests.
type ReminderHandler struct {
	registry *Registry
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(registry *Registry) *ReminderHandler {
	return &ReminderHandler{registry: registry}
}

// CreateReminderRequest represents the request payload for creating a reminder.
type CreateReminderRequest struct {
	Title              string                    `json:"title" binding:"required,min=1,max=100"`
	Description        string                    `json:"description" binding:"max=500"`
	Frequency          models.ReminderFrequency  `json:"frequency" binding:"required,reminder_frequency"`
	NotificationMethod models.NotificationMethod `json:"notification_method" binding:"required,notification_method"`
	DueDate            time.Time                 `json:"due_date" binding:"required"`
}

// UpdateReminderRequest represents a partial reminder update.
type UpdateReminderRequest struct {
	Title              *string                    `json:"title" binding:"omitempty,min=1,max=100"`
	Description        *string                    `json:"description" binding:"omitempty,max=500"`
	Frequency          *models.ReminderFrequency  `json:"frequency" binding:"omitempty,reminder_frequency"`
	NotificationMethod *models.NotificationMethod `json:"notification_method" binding:"omitempty,notification_method"`
	DueDate            *time.Time                 `json:"due_date"`
}

// SnoozeRequest represents the snooze payload.
type SnoozeRequest struct {
	Days int `json:"days" binding:"required,min=1,max=90"`
}

// RescheduleRequest represents the reschedule payload.
type RescheduleRequest struct {
	DueDate time.Time `json:"due_date" binding:"required"`
}

// GetReminders lists all reminders in insertion order.
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": h.registry.Session(userID).Store.Reminders()})
}

// CreateReminder appends a new reminder.
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reminder := h.registry.Session(userID).Store.AddReminder(models.Reminder{
		Title:              req.Title,
		Description:        req.Description,
		Frequency:          req.Frequency,
		NotificationMethod: req.NotificationMethod,
		DueDate:            req.DueDate,
		Status:             models.ReminderStatusActive,
	})

	c.JSON(http.StatusCreated, gin.H{"reminder": reminder})
}

// UpdateReminder applies a partial update to one reminder.
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reminder, err := h.registry.Session(userID).Store.UpdateReminder(c.Param("id"), models.ReminderUpdate{
		Title:              req.Title,
		Description:        req.Description,
		Frequency:          req.Frequency,
		NotificationMethod: req.NotificationMethod,
		DueDate:            req.DueDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": reminder})
}

// DeleteReminder removes one reminder.
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.registry.Session(userID).Store.DeleteReminder(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reminder deleted"})
}

// CompleteReminder completes a one-time reminder or rolls a recurring one
// forward to its next due date.
func (h *ReminderHandler) CompleteReminder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reminder, err := h.registry.Session(userID).Store.CompleteReminder(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": reminder})
}

// SnoozeReminder pushes a reminder's due date forward by N days.
func (h *ReminderHandler) SnoozeReminder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SnoozeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reminder, err := h.registry.Session(userID).Store.SnoozeReminder(c.Param("id"), req.Days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": reminder})
}

// RescheduleReminder moves a reminder to an exact date.
func (h *ReminderHandler) RescheduleReminder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reminder, err := h.registry.Session(userID).Store.RescheduleReminder(c.Param("id"), req.DueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": reminder})
}
