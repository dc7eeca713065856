package repositories

import (
	"context"
	"errors"

	"github.com/aksuu-app/aksuu-server/internal/errs"
	"github.com/aksuu-app/aksuu-server/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResetStore holds at most one outstanding reset ticket per email.
type ResetStore struct {
	db *gorm.DB
}

func NewResetStore(db *gorm.DB) *ResetStore {
	return &ResetStore{db: db}
}

// Get returns the ticket for the email, expired or not, or errs.ErrNotFound.
// Expiry is the caller's concern: rows are never purged on read.
func (s *ResetStore) Get(ctx context.Context, email string) (*models.PasswordReset, error) {
	var t models.PasswordReset
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Save stores the ticket, overwriting any prior one for the same email.
func (s *ResetStore) Save(ctx context.Context, t *models.PasswordReset) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at"}),
	}).Create(t).Error
}

// Delete clears the ticket after a completed reset.
func (s *ResetStore) Delete(ctx context.Context, email string) error {
	return s.db.WithContext(ctx).Where("email = ?", email).Delete(&models.PasswordReset{}).Error
}
