package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hela/internal/assistant"
	apperrors "hela/internal/errors"
	"hela/internal/models"
)

// ChatHandler handles assistant conversation requests.
type ChatHandler struct {
	registry    *Registry
	gateway     *assistant.Gateway
	chatTimeout time.Duration
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(registry *Registry, gateway *assistant.Gateway, chatTimeout time.Duration) *ChatHandler {
	return &ChatHandler{registry: registry, gateway: gateway, chatTimeout: chatTimeout}
}

// MessageRequest represents the chat message payload.
type MessageRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// financialContext snapshots the user's domain state for prompt injection.
func financialContext(s *Session) *assistant.FinancialContext {
	budget := s.Store.Budget()
	return &assistant.FinancialContext{
		Budget:    &budget,
		Goals:     s.Store.Goals(),
		Reminders: s.Store.Reminders(),
	}
}

// GetHistory returns the conversation so far.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": h.registry.Session(userID).Store.ChatHistory()})
}

// SendMessage appends the user's message, asks the assistant, and appends
// its reply. The assistant call is bounded by the configured chat timeout;
// a timed-out call falls back like any other failure, so this endpoint
// always returns a reply.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	session := h.registry.Session(userID)
	session.Store.AddChatMessage(models.ChatMessage{
		Role:      models.RoleUser,
		Content:   req.Content,
		Timestamp: time.Now(),
	})

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.chatTimeout)
	defer cancel()

	reply := h.gateway.ChatResponse(ctx, session.Store.ChatHistory(), financialContext(session))

	message := models.ChatMessage{
		Role:      models.RoleAssistant,
		Content:   reply,
		Timestamp: time.Now(),
	}
	session.Store.AddChatMessage(message)

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ClearChat resets the conversation to the greeting.
func (h *ChatHandler) ClearChat(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.registry.Session(userID).Store.ClearChat()
	c.JSON(http.StatusOK, gin.H{"messages": h.registry.Session(userID).Store.ChatHistory()})
}

// GetInsight returns one short insight derived from the user's data.
func (h *ChatHandler) GetInsight(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.chatTimeout)
	defer cancel()

	insight := h.gateway.FinancialInsight(ctx, financialContext(h.registry.Session(userID)))
	c.JSON(http.StatusOK, gin.H{"insight": insight})
}
