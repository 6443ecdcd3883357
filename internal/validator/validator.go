// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("goal_priority", validateGoalPriority)
		_ = v.RegisterValidation("goal_status", validateGoalStatus)
		_ = v.RegisterValidation("reminder_frequency", validateReminderFrequency)
		_ = v.RegisterValidation("notification_method", validateNotificationMethod)
		_ = v.RegisterValidation("theme_mode", validateThemeMode)
		_ = v.RegisterValidation("font_size", validateFontSize)
		_ = v.RegisterValidation("dashboard_layout", validateDashboardLayout)
	}
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateGoalPriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high":
		return true
	}
	return false
}

func validateGoalStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "completed", "paused":
		return true
	}
	return false
}

func validateReminderFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "one-time", "weekly", "monthly":
		return true
	}
	return false
}

func validateNotificationMethod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "email", "sms", "both":
		return true
	}
	return false
}

func validateThemeMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "light", "dark", "auto":
		return true
	}
	return false
}

func validateFontSize(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "small", "medium", "large":
		return true
	}
	return false
}

func validateDashboardLayout(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "grid", "list":
		return true
	}
	return false
}
