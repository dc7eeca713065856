// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotRegistered indicates no credential record exists for the email.
	ErrNotRegistered = errors.New("not registered")

	// ErrInvalidCredentials indicates an email/password mismatch on login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidEmail indicates the email failed the minimal format check.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrAlreadyRegistered indicates a Google sign-up for an existing account.
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrNoPendingReset indicates there is no outstanding reset ticket.
	ErrNoPendingReset = errors.New("no pending reset")

	// ErrResetExpired indicates the reset code is past its expiry.
	ErrResetExpired = errors.New("reset code expired")

	// ErrInvalidResetCode indicates the submitted code does not match.
	ErrInvalidResetCode = errors.New("invalid reset code")

	// ErrEmailMismatch indicates the ticket email disagrees with the credential record.
	ErrEmailMismatch = errors.New("email mismatch")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

// PasswordPolicyError reports every unmet password rule at once, not just the
// first, so the UI can show the full checklist.
type PasswordPolicyError struct {
	Violations []string
}

func (e *PasswordPolicyError) Error() string {
	return fmt.Sprintf("weak password: needs %s", strings.Join(e.Violations, ", "))
}
