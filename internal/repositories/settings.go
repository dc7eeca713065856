package repositories

import (
	"context"
	"errors"

	"github.com/aksuu-app/aksuu-server/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsStore persists the per-account settings row.
type SettingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the stored settings, or the defaults when the account never
// saved any.
func (s *SettingsStore) Get(ctx context.Context, email string) (*models.Settings, error) {
	var st models.Settings
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := models.DefaultSettings(email)
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// Save upserts the settings row for its email.
func (s *SettingsStore) Save(ctx context.Context, st *models.Settings) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"public_profile", "public_events", "notif_push", "notif_email", "updated_at",
		}),
	}).Create(st).Error
}

// Delete removes the settings row as part of account deletion.
func (s *SettingsStore) Delete(ctx context.Context, email string) error {
	return s.db.WithContext(ctx).Where("email = ?", email).Delete(&models.Settings{}).Error
}
