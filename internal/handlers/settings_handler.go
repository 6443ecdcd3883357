package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hela/internal/errors"
	"hela/internal/models"
	"hela/internal/services"
)

// SettingsHandler handles persisted theme and dashboard settings.
type SettingsHandler struct {
	settings services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// UpdateThemeRequest represents the theme update payload. The full theme is
// persisted verbatim on every update.
type UpdateThemeRequest struct {
	Mode         models.ThemeMode `json:"mode" binding:"required,theme_mode"`
	PrimaryColor string           `json:"primary_color" binding:"required,hex_color"`
	AccentColor  string           `json:"accent_color" binding:"required,hex_color"`
	FontFamily   string           `json:"font_family" binding:"required,max=50"`
	FontSize     models.FontSize  `json:"font_size" binding:"required,font_size"`
}

// UpdateDashboardRequest represents the dashboard settings payload.
type UpdateDashboardRequest struct {
	Layout         models.DashboardLayout  `json:"layout" binding:"required,dashboard_layout"`
	VisibleWidgets models.WidgetVisibility `json:"visible_widgets"`
}

// GetTheme returns the stored theme merged over defaults.
func (h *SettingsHandler) GetTheme(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	theme, err := h.settings.GetTheme(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// UpdateTheme persists a new theme.
func (h *SettingsHandler) UpdateTheme(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	theme := models.ThemeSettings{
		Mode:         req.Mode,
		PrimaryColor: req.PrimaryColor,
		AccentColor:  req.AccentColor,
		FontFamily:   req.FontFamily,
		FontSize:     req.FontSize,
	}
	if err := h.settings.UpdateTheme(userID, theme); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// ResetTheme restores the default theme.
func (h *SettingsHandler) ResetTheme(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	theme, err := h.settings.ResetTheme(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// GetDashboard returns the stored dashboard settings merged over defaults.
func (h *SettingsHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, err := h.settings.GetDashboard(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dashboard": settings})
}

// UpdateDashboard persists new dashboard settings.
func (h *SettingsHandler) UpdateDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateDashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings := models.DashboardSettings{Layout: req.Layout, VisibleWidgets: req.VisibleWidgets}
	if err := h.settings.UpdateDashboard(userID, settings); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dashboard": settings})
}

// ToggleWidget flips one dashboard widget's visibility.
func (h *SettingsHandler) ToggleWidget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, err := h.settings.ToggleWidget(userID, c.Param("widget"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dashboard": settings})
}
