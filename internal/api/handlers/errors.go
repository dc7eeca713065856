package handlers

import (
	"errors"
	"net/http"

	"github.com/aksuu-app/aksuu-server/internal/errs"
	"github.com/aksuu-app/aksuu-server/internal/utils"
)

// serviceError maps the auth/event error taxonomy onto HTTP responses. Each
// condition stays distinguishable so the app can react differently (redirect
// to register vs. retry vs. request a new code).
func serviceError(w http.ResponseWriter, err error) {
	var policyErr *errs.PasswordPolicyError
	if errors.As(err, &policyErr) {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Password is too weak",
			Errors:  policyErr.Violations,
		})
		return
	}

	status := http.StatusInternalServerError
	message := "Something went wrong"

	switch {
	case errors.Is(err, errs.ErrInvalidEmail):
		status, message = http.StatusBadRequest, "Enter a valid email"
	case errors.Is(err, errs.ErrNotRegistered):
		status, message = http.StatusNotFound, "No account for this email"
	case errors.Is(err, errs.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, errs.ErrAlreadyRegistered):
		status, message = http.StatusBadRequest, "An account already exists for this email"
	case errors.Is(err, errs.ErrNoPendingReset):
		status, message = http.StatusBadRequest, "Request a reset code first"
	case errors.Is(err, errs.ErrResetExpired):
		status, message = http.StatusGone, "The code has expired, request a new one"
	case errors.Is(err, errs.ErrInvalidResetCode):
		status, message = http.StatusBadRequest, "Invalid code"
	case errors.Is(err, errs.ErrEmailMismatch):
		status, message = http.StatusConflict, "Email does not match the reset request"
	case errors.Is(err, errs.ErrNotFound):
		status, message = http.StatusNotFound, "Not found"
	}

	utils.JSONResponse(w, status, utils.Payload{
		Success: false,
		Message: message,
	})
}
