package services

import (
	"hela/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	UpdatePlan(userID string, plan models.UserPlan) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// SettingsServicer defines the contract for persisted user settings.
type SettingsServicer interface {
	GetTheme(userID string) (models.ThemeSettings, error)
	UpdateTheme(userID string, theme models.ThemeSettings) error
	ResetTheme(userID string) (models.ThemeSettings, error)
	GetDashboard(userID string) (models.DashboardSettings, error)
	UpdateDashboard(userID string, settings models.DashboardSettings) error
	ToggleWidget(userID, widget string) (models.DashboardSettings, error)
}
