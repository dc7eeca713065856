package handlers

import (
	"context"
	"net/http"

	"github.com/aksuu-app/aksuu-server/internal/api/middleware"
	"github.com/aksuu-app/aksuu-server/internal/models"
	"github.com/aksuu-app/aksuu-server/internal/utils"
)

// SettingsRepo is the settings storage as the HTTP layer sees it.
type SettingsRepo interface {
	Get(ctx context.Context, email string) (*models.Settings, error)
	Save(ctx context.Context, st *models.Settings) error
}

type SettingsHandler struct {
	store SettingsRepo
}

func NewSettingsHandler(store SettingsRepo) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// GET|PUT /api/v1/settings
// Settings godoc
// @Summary Get or replace the account settings
// @Description The four profile toggles. Accounts that never saved settings read as the defaults.
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/v1/settings [get]
func (h *SettingsHandler) Settings(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.SessionEmail(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	switch r.Method {
	case http.MethodGet:
		st, err := h.store.Get(r.Context(), email)
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Settings retrieved successfully",
			Data:    st,
		})

	case http.MethodPut:
		var input struct {
			PublicProfile bool `json:"publicProfile"`
			PublicEvents  bool `json:"publicEvents"`
			NotifPush     bool `json:"notifPush"`
			NotifEmail    bool `json:"notifEmail"`
		}
		if !decodeBody(w, r, &input) {
			return
		}
		st := &models.Settings{
			Email:         email,
			PublicProfile: input.PublicProfile,
			PublicEvents:  input.PublicEvents,
			NotifPush:     input.NotifPush,
			NotifEmail:    input.NotifEmail,
		}
		if err := h.store.Save(r.Context(), st); err != nil {
			serviceError(w, err)
			return
		}
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Settings saved successfully",
			Data:    st,
		})

	default:
		methodNotAllowed(w)
	}
}
