package auth

import "github.com/aksuu-app/aksuu-server/internal/errs"

// ValidatePassword enforces the account password policy: at least 12
// characters with a lowercase letter, an uppercase letter, a digit and a
// character outside [A-Za-z0-9]. Every unmet rule is reported together in a
// single PasswordPolicyError.
func ValidatePassword(password string) error {
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	var violations []string
	if len([]rune(password)) < 12 {
		violations = append(violations, "at least 12 characters")
	}
	if !hasLower {
		violations = append(violations, "at least one lowercase letter (a-z)")
	}
	if !hasUpper {
		violations = append(violations, "at least one uppercase letter (A-Z)")
	}
	if !hasDigit {
		violations = append(violations, "at least one digit (0-9)")
	}
	if !hasSpecial {
		violations = append(violations, "at least one special character (!@#...)")
	}

	if len(violations) > 0 {
		return &errs.PasswordPolicyError{Violations: violations}
	}
	return nil
}
