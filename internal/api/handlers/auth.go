package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aksuu-app/aksuu-server/internal/api/middleware"
	"github.com/aksuu-app/aksuu-server/internal/config"
	"github.com/aksuu-app/aksuu-server/internal/models"
	"github.com/aksuu-app/aksuu-server/internal/utils"
)

// AuthService is the slice of the credential manager the HTTP layer uses.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Profile(ctx context.Context, email string) (*models.User, error)
	RequestReset(ctx context.Context, email string) (string, error)
	VerifyResetCode(ctx context.Context, email, code string) error
	SetNewPassword(ctx context.Context, email, newPassword string) error
	UpdateProfile(ctx context.Context, email string, patch models.ProfilePatch) (*models.User, error)
	GoogleLogin(ctx context.Context, email string) (*models.User, error)
	GoogleRegister(ctx context.Context, email, name, photoURI string) (*models.User, error)
	DeleteAccount(ctx context.Context, email string) error
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// JWT Claims struct
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// POST /auth/sign-up
// Register godoc
// @Summary Register an account
// @Description Creates the credential record for the email, replacing any existing one, and starts a session.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/v1/auth/sign-up [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &input) {
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	user, err := h.svc.Register(r.Context(), input.Email, input.Password)
	if err != nil {
		serviceError(w, err)
		return
	}

	if !setSessionCookie(w, user) {
		return
	}
	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Account registered successfully",
		Data:    user,
	})
}

// POST /auth/login
// Login godoc
// @Summary Log in
// @Description Checks credentials and sets the session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &input) {
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	user, err := h.svc.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		serviceError(w, err)
		return
	}

	if !setSessionCookie(w, user) {
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Login successful",
		Data:    user,
	})
}

// POST /api/v1/auth/logout
// Logout godoc
// @Summary Log out
// @Description Clears the session cookie. The credential record stays so re-login remains possible.
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	isProd := config.Envs.Environment == "production"

	// Delete the token cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // maxAge < 0 deletes the cookie
		Secure:   isProd,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Logged out successfully",
	})
}

// DELETE /api/v1/auth/account
// DeleteAccount godoc
// @Summary Delete the account
// @Description Removes the credential record, reset ticket and settings. Organized events are kept.
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/v1/auth/account [delete]
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}

	email, ok := middleware.SessionEmail(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	if err := h.svc.DeleteAccount(r.Context(), email); err != nil {
		serviceError(w, err)
		return
	}

	h.Logout(w, r)
}

// setSessionCookie signs a JWT for the user and sets it as the session
// cookie. Returns false after writing an error response on failure.
func setSessionCookie(w http.ResponseWriter, user *models.User) bool {
	secret := config.Envs.JWTSecret
	if secret == "" {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "No config found for JWT",
		})
		return false
	}

	expiration := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to create token",
		})
		return false
	}

	maxAge := int(time.Until(expiration).Seconds())
	isProd := config.Envs.Environment == "production"

	sameSite := http.SameSiteLaxMode
	if isProd {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   isProd,
		HttpOnly: true,
		SameSite: sameSite,
	})
	return true
}

// decodeBody parses a JSON body into dst, rejecting unknown fields. Returns
// false after writing an error response on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return false
	}
	return true
}

func methodNotAllowed(w http.ResponseWriter) {
	utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
		Success: false,
		Message: "Method not allowed",
	})
}
