// Package auth is the credential and reset manager: it owns registration,
// login, the three-step password-reset flow and profile updates.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/aksuu-app/aksuu-server/internal/errs"
	"github.com/aksuu-app/aksuu-server/internal/models"
	"github.com/aksuu-app/aksuu-server/internal/utils"
)

// CredentialRepo is the credential-record storage the service needs.
type CredentialRepo interface {
	Get(ctx context.Context, email string) (*models.User, error)
	Save(ctx context.Context, u *models.User) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	Delete(ctx context.Context, email string) error
}

// ResetRepo stores at most one outstanding reset ticket per email.
type ResetRepo interface {
	Get(ctx context.Context, email string) (*models.PasswordReset, error)
	Save(ctx context.Context, t *models.PasswordReset) error
	Delete(ctx context.Context, email string) error
}

// SettingsRepo is the slice of settings storage account deletion needs.
type SettingsRepo interface {
	Delete(ctx context.Context, email string) error
}

const (
	resetCodeTTL = 10 * time.Minute

	defaultName     = "Пользователь"
	defaultLanguage = "ru"
	defaultRating   = 4.8

	// Accounts on the team domain get the admin flag.
	adminDomain = "@aksuu.dev"
)

type Service struct {
	creds    CredentialRepo
	resets   ResetRepo
	settings SettingsRepo

	now     func() time.Time
	newCode func() (string, error)
}

// NewService constructs the credential manager with its storage dependencies.
func NewService(creds CredentialRepo, resets ResetRepo, settings SettingsRepo) *Service {
	return &Service{
		creds:    creds,
		resets:   resets,
		settings: settings,
		now:      time.Now,
		newCode:  utils.NewResetCode,
	}
}

// NormalizeEmail trims and lowercases an email; every lookup and every stored
// record uses the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the credential record for the email, replacing any
// existing one unconditionally, and returns the stored profile.
func (s *Service) Register(ctx context.Context, email, password string) (*models.User, error) {
	norm := NormalizeEmail(email)
	if !strings.Contains(norm, "@") {
		return nil, errs.ErrInvalidEmail
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Email:    norm,
		Password: string(hash),
		Name:     defaultName,
		Rating:   defaultRating,
		Language: defaultLanguage,
		IsAdmin:  strings.HasSuffix(norm, adminDomain),
	}
	if err := s.creds.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login checks the credentials and returns the stored profile.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.creds.Get(ctx, NormalizeEmail(email))
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.ErrNotRegistered
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, errs.ErrInvalidCredentials
	}
	return u, nil
}

// Profile returns the profile for a logged-in account.
func (s *Service) Profile(ctx context.Context, email string) (*models.User, error) {
	return s.creds.Get(ctx, NormalizeEmail(email))
}

// RequestReset issues a fresh 6-digit code valid for ten minutes, replacing
// any prior outstanding ticket for the email. The code is returned to the
// caller for delivery; no mailer exists yet.
func (s *Service) RequestReset(ctx context.Context, email string) (string, error) {
	norm := NormalizeEmail(email)
	if _, err := s.creds.Get(ctx, norm); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", errs.ErrNotRegistered
		}
		return "", err
	}

	code, err := s.newCode()
	if err != nil {
		return "", err
	}
	ticket := &models.PasswordReset{
		Email:     norm,
		Code:      code,
		ExpiresAt: s.now().Add(resetCodeTTL),
	}
	if err := s.resets.Save(ctx, ticket); err != nil {
		return "", err
	}
	return code, nil
}

// VerifyResetCode checks the submitted code against the outstanding ticket.
// It never consumes the ticket: the final step still requires it.
func (s *Service) VerifyResetCode(ctx context.Context, email, code string) error {
	t, err := s.resets.Get(ctx, NormalizeEmail(email))
	if errors.Is(err, errs.ErrNotFound) {
		return errs.ErrNoPendingReset
	}
	if err != nil {
		return err
	}
	if s.now().After(t.ExpiresAt) {
		return errs.ErrResetExpired
	}
	if strings.TrimSpace(code) != t.Code {
		return errs.ErrInvalidResetCode
	}
	return nil
}

// SetNewPassword completes the reset flow: the policy is re-applied, the
// ticket must exist and name the same account, and on success the password
// is rewritten and the ticket deleted.
func (s *Service) SetNewPassword(ctx context.Context, email, newPassword string) error {
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	norm := NormalizeEmail(email)
	t, err := s.resets.Get(ctx, norm)
	if errors.Is(err, errs.ErrNotFound) {
		return errs.ErrNoPendingReset
	}
	if err != nil {
		return err
	}

	u, err := s.creds.Get(ctx, norm)
	if errors.Is(err, errs.ErrNotFound) {
		return errs.ErrNoPendingReset
	}
	if err != nil {
		return err
	}
	if t.Email != u.Email {
		return errs.ErrEmailMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.creds.UpdatePassword(ctx, norm, string(hash)); err != nil {
		return err
	}
	return s.resets.Delete(ctx, norm)
}

// UpdateProfile merges the patch into the stored profile. Only name, phone,
// photo and language are patchable.
func (s *Service) UpdateProfile(ctx context.Context, email string, patch models.ProfilePatch) (*models.User, error) {
	u, err := s.creds.Get(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.PhotoURI != nil {
		u.PhotoURI = *patch.PhotoURI
	}
	if patch.Language != nil {
		u.Language = *patch.Language
	}
	if err := s.creds.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GoogleLogin resolves a Google-authenticated email to an existing account.
func (s *Service) GoogleLogin(ctx context.Context, email string) (*models.User, error) {
	u, err := s.creds.Get(ctx, NormalizeEmail(email))
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.ErrNotRegistered
	}
	return u, err
}

// GoogleRegister creates an account from a Google profile. Unlike password
// registration it refuses to replace an existing record: the app sends users
// with an account through the login flow instead.
func (s *Service) GoogleRegister(ctx context.Context, email, name, photoURI string) (*models.User, error) {
	norm := NormalizeEmail(email)
	if _, err := s.creds.Get(ctx, norm); err == nil {
		return nil, errs.ErrAlreadyRegistered
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	u := &models.User{
		Email:    norm,
		Password: "", // Google-authenticated
		Name:     name,
		PhotoURI: photoURI,
		Rating:   defaultRating,
		Language: defaultLanguage,
		IsAdmin:  strings.HasSuffix(norm, adminDomain),
	}
	if u.Name == "" {
		u.Name = defaultName
	}
	if err := s.creds.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteAccount removes the credential record, any reset ticket and the
// settings row. Events organized by the account are intentionally kept.
func (s *Service) DeleteAccount(ctx context.Context, email string) error {
	norm := NormalizeEmail(email)
	if err := s.creds.Delete(ctx, norm); err != nil {
		return err
	}
	if err := s.resets.Delete(ctx, norm); err != nil {
		return err
	}
	return s.settings.Delete(ctx, norm)
}
