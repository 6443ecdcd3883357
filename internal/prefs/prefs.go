// Package prefs persists small JSON preference blobs under fixed keys,
// scoped to a user. Values are written verbatim on every save; loads merge
// the stored blob over the caller's defaults so records written by an older
// schema still round-trip.
package prefs

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "hela/internal/errors"
	"hela/internal/logger"
	"hela/internal/models"
)

// Store persists user preferences.
type Store struct {
	db *gorm.DB
}

// NewStore creates a preference store over the given database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Set serializes value as JSON and writes it under key, replacing any
// previous record for (userID, key).
func (s *Store) Set(userID, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}

	pref := models.Preference{UserID: userID, Key: key, Value: string(raw)}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Load reads the record under key into dest. dest must arrive pre-populated
// with defaults: a missing record leaves it untouched, and a stored blob is
// merged field-by-field so keys absent from older records keep their
// default values. A malformed blob is discarded with a warning rather than
// failing the load.
func (s *Store) Load(userID, key string, dest interface{}) error {
	var pref models.Preference
	err := s.db.Where("user_id = ? AND key = ?", userID, key).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Snapshot the defaults so a partially-applied decode of a corrupt
	// blob can be rolled back.
	snapshot, err := json.Marshal(dest)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := json.Unmarshal([]byte(pref.Value), dest); err != nil {
		logger.Get().Warnw("discarding malformed preference record",
			"user_id", userID,
			"key", key,
			"error", err.Error(),
		)
		_ = json.Unmarshal(snapshot, dest)
	}
	return nil
}

// Delete removes the record under key. Deleting a key that was never set
// is not an error.
func (s *Store) Delete(userID, key string) error {
	if err := s.db.Where("user_id = ? AND key = ?", userID, key).Delete(&models.Preference{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
