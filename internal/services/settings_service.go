package services

import (
	apperrors "hela/internal/errors"
	"hela/internal/models"
	"hela/internal/prefs"
)

// settingsService persists theme and dashboard settings through the
// preference store. Settings are written verbatim and merged with the
// current defaults on read.
type settingsService struct {
	prefs *prefs.Store
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(store *prefs.Store) SettingsServicer {
	return &settingsService{prefs: store}
}

func (s *settingsService) GetTheme(userID string) (models.ThemeSettings, error) {
	theme := models.DefaultTheme()
	if err := s.prefs.Load(userID, models.PrefKeyTheme, &theme); err != nil {
		return models.ThemeSettings{}, err
	}
	return theme, nil
}

func (s *settingsService) UpdateTheme(userID string, theme models.ThemeSettings) error {
	return s.prefs.Set(userID, models.PrefKeyTheme, theme)
}

// ResetTheme restores and persists the default theme.
func (s *settingsService) ResetTheme(userID string) (models.ThemeSettings, error) {
	theme := models.DefaultTheme()
	if err := s.prefs.Set(userID, models.PrefKeyTheme, theme); err != nil {
		return models.ThemeSettings{}, err
	}
	return theme, nil
}

func (s *settingsService) GetDashboard(userID string) (models.DashboardSettings, error) {
	settings := models.DefaultDashboard()
	if err := s.prefs.Load(userID, models.PrefKeyDashboard, &settings); err != nil {
		return models.DashboardSettings{}, err
	}
	return settings, nil
}

func (s *settingsService) UpdateDashboard(userID string, settings models.DashboardSettings) error {
	return s.prefs.Set(userID, models.PrefKeyDashboard, settings)
}

// ToggleWidget flips the visibility of one dashboard widget and persists
// the result.
func (s *settingsService) ToggleWidget(userID, widget string) (models.DashboardSettings, error) {
	settings, err := s.GetDashboard(userID)
	if err != nil {
		return models.DashboardSettings{}, err
	}

	w := &settings.VisibleWidgets
	switch widget {
	case "budget":
		w.Budget = !w.Budget
	case "goals":
		w.Goals = !w.Goals
	case "reminders":
		w.Reminders = !w.Reminders
	case "insights":
		w.Insights = !w.Insights
	case "quick_actions":
		w.QuickActions = !w.QuickActions
	case "recent_activity":
		w.RecentActivity = !w.RecentActivity
	default:
		return models.DashboardSettings{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown widget")
	}

	if err := s.prefs.Set(userID, models.PrefKeyDashboard, settings); err != nil {
		return models.DashboardSettings{}, err
	}
	return settings, nil
}
