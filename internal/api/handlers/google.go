package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aksuu-app/aksuu-server/internal/api/services"
	"github.com/aksuu-app/aksuu-server/internal/config"
	"github.com/aksuu-app/aksuu-server/internal/errs"
)

// GET /auth/google/login
func (h *AuthHandler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	redirectType := r.URL.Query().Get("redirect") // "login" or "register"
	if redirectType == "" {
		redirectType = "login"
	}

	state, err := GenerateState(map[string]string{"flow": redirectType})
	if err != nil {
		http.Error(w, "Failed to generate OAuth state", http.StatusInternalServerError)
		return
	}

	url := services.GoogleOauthConfig.AuthCodeURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GET /auth/google/callback
func (h *AuthHandler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.FormValue("state")
	stateData, err := DecodeState(state)
	if err != nil {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}

	flowType := stateData["flow"] // "login" or "register"
	code := r.FormValue("code")

	token, err := services.GoogleOauthConfig.Exchange(r.Context(), code)
	if err != nil {
		http.Error(w, "Code exchange failed", http.StatusInternalServerError)
		fmt.Println("Exchange error:", err)
		return
	}

	client := services.GoogleOauthConfig.Client(r.Context(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)

	var googleUser struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.Unmarshal(data, &googleUser); err != nil {
		http.Error(w, "Failed to parse user info", http.StatusInternalServerError)
		return
	}

	appBase := config.Envs.AppBaseURL

	switch flowType {
	case "register":
		u, err := h.svc.GoogleRegister(r.Context(), googleUser.Email, googleUser.Name, googleUser.Picture)
		if errors.Is(err, errs.ErrAlreadyRegistered) {
			http.Redirect(w, r, appBase+"/login?error=user_already_exists", http.StatusTemporaryRedirect)
			return
		}
		if err != nil {
			http.Error(w, "Failed to create account", http.StatusInternalServerError)
			return
		}
		if !setSessionCookie(w, u) {
			return
		}
		http.Redirect(w, r, appBase+"/?status=success_register", http.StatusTemporaryRedirect)

	default: // login
		u, err := h.svc.GoogleLogin(r.Context(), googleUser.Email)
		if errors.Is(err, errs.ErrNotRegistered) {
			http.Redirect(w, r, appBase+"/register?error=user_not_found", http.StatusTemporaryRedirect)
			return
		}
		if err != nil {
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}
		if !setSessionCookie(w, u) {
			return
		}
		http.Redirect(w, r, appBase+"/?status=success_login", http.StatusTemporaryRedirect)
	}
}
