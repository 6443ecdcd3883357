package models

// ThemeMode represents the light/dark preference
type ThemeMode string

const (
	ThemeModeLight ThemeMode = "light"
	ThemeModeDark  ThemeMode = "dark"
	ThemeModeAuto  ThemeMode = "auto"
)

// FontSize represents the base font size preference
type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
)

// ThemeSettings is a preference record persisted verbatim on every update
// and merged with defaults on load.
type ThemeSettings struct {
	Mode         ThemeMode `json:"mode"`
	PrimaryColor string    `json:"primary_color"`
	AccentColor  string    `json:"accent_color"`
	FontFamily   string    `json:"font_family"`
	FontSize     FontSize  `json:"font_size"`
}

// DefaultTheme returns the out-of-the-box theme.
func DefaultTheme() ThemeSettings {
	return ThemeSettings{
		Mode:         ThemeModeLight,
		PrimaryColor: "#059669",
		AccentColor:  "#2563eb",
		FontFamily:   "Inter",
		FontSize:     FontSizeMedium,
	}
}

// DashboardLayout represents how dashboard widgets are arranged
type DashboardLayout string

const (
	LayoutGrid DashboardLayout = "grid"
	LayoutList DashboardLayout = "list"
)

// WidgetVisibility controls which dashboard widgets are shown.
type WidgetVisibility struct {
	Budget         bool `json:"budget"`
	Goals          bool `json:"goals"`
	Reminders      bool `json:"reminders"`
	Insights       bool `json:"insights"`
	QuickActions   bool `json:"quick_actions"`
	RecentActivity bool `json:"recent_activity"`
}

// DashboardSettings is a preference record for dashboard layout.
type DashboardSettings struct {
	Layout         DashboardLayout  `json:"layout"`
	VisibleWidgets WidgetVisibility `json:"visible_widgets"`
}

// DefaultDashboard returns the out-of-the-box dashboard settings.
func DefaultDashboard() DashboardSettings {
	return DashboardSettings{
		Layout: LayoutGrid,
		VisibleWidgets: WidgetVisibility{
			Budget:         true,
			Goals:          true,
			Reminders:      true,
			Insights:       true,
			QuickActions:   true,
			RecentActivity: true,
		},
	}
}
