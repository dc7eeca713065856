package repositories

import (
	"context"
	"errors"

	"github.com/aksuu-app/aksuu-server/internal/errs"
	"github.com/aksuu-app/aksuu-server/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CredentialStore persists one credential record per normalized email.
type CredentialStore struct {
	db *gorm.DB
}

func NewCredentialStore(db *gorm.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// Get returns the credential record for the email, or errs.ErrNotFound.
func (s *CredentialStore) Get(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Save upserts the record by email. Registering an email that already exists
// replaces its password and profile unconditionally; the row id and creation
// time are kept.
func (s *CredentialStore) Save(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"password", "name", "phone", "photo_uri", "rating", "language", "is_admin", "updated_at",
		}),
	}).Create(u).Error
}

// UpdatePassword rewrites only the stored password hash.
func (s *CredentialStore) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).
		Update("password", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes the credential record. Events organized by the account are
// left untouched.
func (s *CredentialStore) Delete(ctx context.Context, email string) error {
	return s.db.WithContext(ctx).Where("email = ?", email).Delete(&models.User{}).Error
}
