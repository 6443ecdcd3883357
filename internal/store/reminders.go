package store

import (
	"time"

	apperrors "hela/internal/errors"
	"hela/internal/models"
	"hela/internal/uuid"
)

// Reminders returns a copy of the reminders in insertion order.
func (s *Store) Reminders() []models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// AddReminder assigns an id and creation time and appends the reminder.
func (s *Store) AddReminder(r models.Reminder) models.Reminder {
	r.ID = uuid.New()
	r.CreatedAt = time.Now()

	s.mu.Lock()
	s.reminders = append(s.reminders, r)
	s.mu.Unlock()
	s.notify()
	return r
}

// UpdateReminder merges non-nil fields into the matching reminder. ID and
// CreatedAt are never altered. Returns ErrReminderNotFound when the id is
// unknown, leaving the collection unchanged.
func (s *Store) UpdateReminder(id string, upd models.ReminderUpdate) (models.Reminder, error) {
	s.mu.Lock()
	i := s.reminderIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Reminder{}, apperrors.ErrReminderNotFound
	}

	r := &s.reminders[i]
	if upd.Title != nil {
		r.Title = *upd.Title
	}
	if upd.Description != nil {
		r.Description = *upd.Description
	}
	if upd.Frequency != nil {
		r.Frequency = *upd.Frequency
	}
	if upd.NotificationMethod != nil {
		r.NotificationMethod = *upd.NotificationMethod
	}
	if upd.DueDate != nil {
		r.DueDate = *upd.DueDate
	}
	if upd.NextDue != nil {
		next := *upd.NextDue
		r.NextDue = &next
	}
	if upd.Status != nil {
		r.Status = *upd.Status
	}
	out := *r
	s.mu.Unlock()
	s.notify()
	return out, nil
}

// DeleteReminder removes the matching reminder. Returns ErrReminderNotFound
// when the id is unknown.
func (s *Store) DeleteReminder(id string) error {
	s.mu.Lock()
	i := s.reminderIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return apperrors.ErrReminderNotFound
	}
	s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
	s.mu.Unlock()
	s.notify()
	return nil
}

// CompleteReminder marks a one-time reminder completed. For a recurring
// reminder it advances the next due date by one period (7 days for weekly,
// one calendar month for monthly) and resets the status to active.
func (s *Store) CompleteReminder(id string) (models.Reminder, error) {
	s.mu.Lock()
	i := s.reminderIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Reminder{}, apperrors.ErrReminderNotFound
	}

	r := &s.reminders[i]
	switch r.Frequency {
	case models.FrequencyOneTime:
		r.Status = models.ReminderStatusCompleted
	case models.FrequencyWeekly:
		next := r.EffectiveDue().AddDate(0, 0, 7)
		r.NextDue = &next
		r.Status = models.ReminderStatusActive
	case models.FrequencyMonthly:
		next := addCalendarMonth(r.EffectiveDue())
		r.NextDue = &next
		r.Status = models.ReminderStatusActive
	}
	out := *r
	s.mu.Unlock()
	s.notify()
	return out, nil
}

// SnoozeReminder pushes the current due date forward by the given number of
// days and marks the reminder snoozed.
func (s *Store) SnoozeReminder(id string, days int) (models.Reminder, error) {
	s.mu.Lock()
	i := s.reminderIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Reminder{}, apperrors.ErrReminderNotFound
	}

	r := &s.reminders[i]
	next := r.EffectiveDue().AddDate(0, 0, days)
	r.NextDue = &next
	r.Status = models.ReminderStatusSnoozed
	out := *r
	s.mu.Unlock()
	s.notify()
	return out, nil
}

// RescheduleReminder moves both the original and next due dates to the
// given date and reactivates the reminder.
func (s *Store) RescheduleReminder(id string, date time.Time) (models.Reminder, error) {
	s.mu.Lock()
	i := s.reminderIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Reminder{}, apperrors.ErrReminderNotFound
	}

	r := &s.reminders[i]
	r.DueDate = date
	next := date
	r.NextDue = &next
	r.Status = models.ReminderStatusActive
	out := *r
	s.mu.Unlock()
	s.notify()
	return out, nil
}

func (s *Store) reminderIndex(id string) int {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			return i
		}
	}
	return -1
}

// addCalendarMonth advances a date by one calendar month, clamping to the
// last day of the target month (Jan 31 -> Feb 28/29), unlike AddDate which
// would overflow into March.
func addCalendarMonth(t time.Time) time.Time {
	year, month, day := t.Date()
	// Day 0 of month+2 is the last day of month+1.
	lastDay := time.Date(year, month+2, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month+1, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
