package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hela/internal/assistant"
	apperrors "hela/internal/errors"
	"hela/internal/models"
	"hela/internal/pagination"
)

// TransactionHandler handles transaction-log requests.
type TransactionHandler struct {
	registry *Registry
	gateway  *assistant.Gateway
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(registry *Registry, gateway *assistant.Gateway) *TransactionHandler {
	return &TransactionHandler{registry: registry, gateway: gateway}
}

// CreateTransactionRequest represents the request payload for recording a
// transaction.
type CreateTransactionRequest struct {
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount      float64                `json:"amount" binding:"required,gt=0"`
	Description string                 `json:"description" binding:"required,min=1,max=200"`
	Category    string                 `json:"category" binding:"max=50"`
	Date        time.Time              `json:"date"`
	Merchant    string                 `json:"merchant" binding:"max=100"`
	Notes       string                 `json:"notes" binding:"max=500"`
}

// CategorizeRequest represents the payload for category suggestion.
type CategorizeRequest struct {
	Description string `json:"description" binding:"required,min=1,max=200"`
}

// GetTransactions lists transactions newest-first, paginated.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transactions := h.registry.Session(userID).Store.Transactions()
	c.JSON(http.StatusOK, pagination.Slice(transactions, page))
}

// CreateTransaction prepends a new transaction to the log.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	transaction := h.registry.Session(userID).Store.AddTransaction(models.Transaction{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
		Merchant:    req.Merchant,
		Notes:       req.Notes,
	})

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// DeleteTransaction removes one transaction.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.registry.Session(userID).Store.DeleteTransaction(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

// Categorize suggests a category for a transaction description.
func (h *TransactionHandler) Categorize(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category := h.gateway.SuggestCategory(c.Request.Context(), req.Description)
	c.JSON(http.StatusOK, gin.H{"category": category})
}
