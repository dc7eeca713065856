package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aksuu-app/aksuu-server/internal/utils"
)

// PhotoRepo is the photo bucket as the HTTP layer sees it.
type PhotoRepo interface {
	PresignPut(ctx context.Context, key string, expires time.Duration) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
	PublicURL(key string) string
}

type PhotoHandler struct {
	store PhotoRepo
}

func NewPhotoHandler(store PhotoRepo) *PhotoHandler {
	return &PhotoHandler{store: store}
}

const uploadURLTTL = 10 * time.Minute

// POST /api/v1/photos/presign
// Presign godoc
// @Summary Get a presigned photo upload URL
// @Description Returns the object key and a short-lived PUT URL; the client uploads directly to storage.
// @Tags Photos
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/v1/photos/presign [post]
func (h *PhotoHandler) Presign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	key := fmt.Sprintf("photos/%s", uuid.New().String())
	uploadURL, err := h.store.PresignPut(r.Context(), key, uploadURLTTL)
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to create upload URL",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Upload URL created",
		Data: map[string]any{
			"key":       key,
			"uploadUrl": uploadURL,
			"expiresIn": uploadURLTTL.String(),
		},
	})
}

// POST /api/v1/photos/complete
// Complete godoc
// @Summary Confirm a finished photo upload
// @Description Verifies the object exists and returns the URL to store as photoUri.
// @Tags Photos
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/photos/complete [post]
func (h *PhotoHandler) Complete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var input struct {
		Key string `json:"key"`
	}
	if !decodeBody(w, r, &input) {
		return
	}
	if input.Key == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Missing object key",
		})
		return
	}

	ok, err := h.store.Exists(r.Context(), input.Key)
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to verify upload",
		})
		return
	}
	if !ok {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "No uploaded object for this key",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Upload confirmed",
		Data: map[string]any{
			"key":      input.Key,
			"photoUri": h.store.PublicURL(input.Key),
		},
	})
}
