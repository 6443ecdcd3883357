package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IntegrationHandler handles financial-service connection requests.
type IntegrationHandler struct {
	registry *Registry
}

// NewIntegrationHandler creates a new IntegrationHandler.
func NewIntegrationHandler(registry *Registry) *IntegrationHandler {
	return &IntegrationHandler{registry: registry}
}

// GetStatus returns the connected and available service lists.
func (h *IntegrationHandler) GetStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	m := h.registry.Session(userID).Integrations
	c.JSON(http.StatusOK, gin.H{
		"status":     m.Status(),
		"is_loading": m.IsLoading(),
	})
}

// GetUserData summarizes which data classes connected services supply.
func (h *IntegrationHandler) GetUserData(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.registry.Session(userID).Integrations.UserData()})
}

// Connect links one service from the catalog.
func (h *IntegrationHandler) Connect(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	m := h.registry.Session(userID).Integrations
	if err := m.ConnectService(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": m.Status()})
}

// Disconnect unlinks one service.
func (h *IntegrationHandler) Disconnect(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	m := h.registry.Session(userID).Integrations
	if err := m.DisconnectService(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": m.Status()})
}

// Sync refreshes all connected services.
func (h *IntegrationHandler) Sync(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	m := h.registry.Session(userID).Integrations
	if err := m.SyncData(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": m.Status()})
}
