package models

import "time"

// ReminderFrequency represents how often a reminder recurs
type ReminderFrequency string

const (
	FrequencyOneTime ReminderFrequency = "one-time"
	FrequencyWeekly  ReminderFrequency = "weekly"
	FrequencyMonthly ReminderFrequency = "monthly"
)

// NotificationMethod represents how a reminder is delivered
type NotificationMethod string

const (
	NotifyEmail NotificationMethod = "email"
	NotifySMS   NotificationMethod = "sms"
	NotifyBoth  NotificationMethod = "both"
)

// ReminderStatus represents the lifecycle status of a reminder
type ReminderStatus string

const (
	ReminderStatusActive    ReminderStatus = "active"
	ReminderStatusCompleted ReminderStatus = "completed"
	ReminderStatusSnoozed   ReminderStatus = "snoozed"
	ReminderStatusPending   ReminderStatus = "pending"
)

// Reminder represents a bill or task reminder. DueDate is the original due
// date; NextDue, when set, is the authoritative one.
type Reminder struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description,omitempty"`
	Frequency          ReminderFrequency  `json:"frequency"`
	NotificationMethod NotificationMethod `json:"notification_method"`
	DueDate            time.Time          `json:"due_date"`
	NextDue            *time.Time         `json:"next_due,omitempty"`
	Status             ReminderStatus     `json:"status"`
	CreatedAt          time.Time          `json:"created_at"`
}

// EffectiveDue returns NextDue when present, falling back to DueDate.
func (r *Reminder) EffectiveDue() time.Time {
	if r.NextDue != nil {
		return *r.NextDue
	}
	return r.DueDate
}

// ReminderUpdate holds the optional fields of a partial reminder update.
type ReminderUpdate struct {
	Title              *string             `json:"title"`
	Description        *string             `json:"description"`
	Frequency          *ReminderFrequency  `json:"frequency"`
	NotificationMethod *NotificationMethod `json:"notification_method"`
	DueDate            *time.Time          `json:"due_date"`
	NextDue            *time.Time          `json:"next_due"`
	Status             *ReminderStatus     `json:"status"`
}
