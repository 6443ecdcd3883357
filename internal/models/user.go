package models

import (
	"time"

	"gorm.io/gorm"

	"hela/internal/uuid"
)

// UserPlan represents the subscription plan of a user
type UserPlan string

const (
	PlanFree    UserPlan = "free"
	PlanMonthly UserPlan = "monthly"
	PlanYearly  UserPlan = "yearly"
)

// User represents the user model in the database
type User struct {
	ID               string         `gorm:"type:uuid;primaryKey" json:"id"`
	Email            string         `gorm:"uniqueIndex;not null" json:"email"`
	Password         string         `gorm:"not null" json:"-"`
	Name             string         `json:"name"`
	Plan             UserPlan       `gorm:"default:free" json:"plan"`
	IsActive         bool           `gorm:"default:true" json:"is_active"`
	RefreshTokenHash string         `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook generates a UUIDv7 for new users
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New()
	}
	return nil
}
