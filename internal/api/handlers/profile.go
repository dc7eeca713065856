package handlers

import (
	"net/http"

	"github.com/aksuu-app/aksuu-server/internal/api/middleware"
	"github.com/aksuu-app/aksuu-server/internal/models"
	"github.com/aksuu-app/aksuu-server/internal/utils"
)

// GET|PATCH /api/v1/profile
// Profile godoc
// @Summary Get or patch the profile
// @Description PATCH merges name, phone, photoUri and language; other fields are not editable here.
// @Tags Profile
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/v1/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
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
		user, err := h.svc.Profile(r.Context(), email)
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Profile retrieved successfully",
			Data:    user,
		})

	case http.MethodPatch:
		var patch models.ProfilePatch
		if !decodeBody(w, r, &patch) {
			return
		}
		user, err := h.svc.UpdateProfile(r.Context(), email, patch)
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Profile updated successfully",
			Data:    user,
		})

	default:
		methodNotAllowed(w)
	}
}
