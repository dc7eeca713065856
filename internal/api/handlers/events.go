package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aksuu-app/aksuu-server/internal/api/middleware"
	"github.com/aksuu-app/aksuu-server/internal/events"
	"github.com/aksuu-app/aksuu-server/internal/feed"
	"github.com/aksuu-app/aksuu-server/internal/models"
	"github.com/aksuu-app/aksuu-server/internal/utils"
)

// EventRepo is the event draft store as the HTTP layer sees it.
type EventRepo interface {
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id string) (*models.Event, error)
	Upsert(ctx context.Context, draft models.EventDraft, meta models.EventMeta) (*models.Event, error)
}

// PhotoResolver turns stored photo object keys into fetchable URLs.
type PhotoResolver interface {
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}

// ProfileSource resolves an organizer's display name from their email.
type ProfileSource interface {
	Profile(ctx context.Context, email string) (*models.User, error)
}

type EventHandler struct {
	store  EventRepo
	photos PhotoResolver
	names  ProfileSource
}

func NewEventHandler(store EventRepo, photos PhotoResolver, names ProfileSource) *EventHandler {
	return &EventHandler{store: store, photos: photos, names: names}
}

const photoURLTTL = 15 * time.Minute

type eventResponse struct {
	models.Event
	PhotoURL string `json:"photoUrl,omitempty"`
}

// GET /api/v1/events
// List godoc
// @Summary List events
// @Description Returns all events newest-starting first, narrowed by the feed filter query parameters.
// @Tags Events
// @Produce json
// @Param q query string false "Search text over title, location and organizer"
// @Param categories query string false "Comma-separated category list"
// @Param dateRange query string false "any, today, week or month"
// @Param price query string false "any, free or paid"
// @Success 200 {object} utils.Payload
// @Router /api/v1/events [get]
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.List(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}

	filtered := feed.Parse(r.URL.Query()).Apply(list, time.Now())

	items := make([]eventResponse, len(filtered))
	g, ctx := errgroup.WithContext(r.Context())
	for i, e := range filtered {
		items[i] = eventResponse{Event: e}
		if !isPhotoKey(e.PhotoURI) {
			items[i].PhotoURL = e.PhotoURI
			continue
		}
		g.Go(func() error {
			url, err := h.photos.PresignGet(ctx, e.PhotoURI, photoURLTTL)
			if err != nil {
				return err
			}
			items[i].PhotoURL = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to resolve photo URLs",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Events retrieved successfully",
		Data: map[string]any{
			"events": items,
			"total":  len(items),
		},
	})
}

// GET /api/v1/events/{id}
// Get godoc
// @Summary Get a single event
// @Tags Events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/events/{id} [get]
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Missing event id",
		})
		return
	}

	e, err := h.store.Get(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}

	item := eventResponse{Event: *e, PhotoURL: e.PhotoURI}
	if isPhotoKey(e.PhotoURI) {
		url, err := h.photos.PresignGet(r.Context(), e.PhotoURI, photoURLTTL)
		if err != nil {
			utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
				Success: false,
				Message: "Failed to resolve photo URL",
			})
			return
		}
		item.PhotoURL = url
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Event retrieved successfully",
		Data:    item,
	})
}

type draftInput struct {
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Category     models.EventCategory `json:"category"`
	StartsAt     time.Time            `json:"startsAt"`
	LocationName string               `json:"locationName"`
	PhotoURI     string               `json:"photoUri"`
	Limit        int                  `json:"limit"`
	Price        int                  `json:"price"`
	Status       models.EventStatus   `json:"status"`
}

// POST /api/v1/events
// Create godoc
// @Summary Create an event
// @Description Validates the draft and stores it; the organizer comes from the session.
// @Tags Events
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/v1/events [post]
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.upsert(w, r, "")
}

// PUT /api/v1/events/{id}
// Update godoc
// @Summary Update an event
// @Description Merges the draft into the existing event; the id never changes.
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/events/{id} [put]
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Missing event id",
		})
		return
	}
	h.upsert(w, r, id)
}

func (h *EventHandler) upsert(w http.ResponseWriter, r *http.Request, id string) {
	email, ok := middleware.SessionEmail(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	var input draftInput
	if !decodeBody(w, r, &input) {
		return
	}

	status := input.Status
	if status == "" {
		status = models.StatusDraft
	}
	if status != models.StatusDraft && status != models.StatusPublished {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid status",
		})
		return
	}

	draft := models.EventDraft{
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		StartsAt:     input.StartsAt,
		LocationName: input.LocationName,
		PhotoURI:     input.PhotoURI,
		Limit:        input.Limit,
		Price:        input.Price,
	}

	// The store is a dumb persistence shim; this is the validation boundary.
	if fields := events.ValidateDraft(draft); len(fields) > 0 {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Missing or invalid fields",
			Errors:  fields,
		})
		return
	}

	saved, err := h.store.Upsert(r.Context(), draft, models.EventMeta{
		ID:             id,
		Status:         status,
		OrganizerEmail: email,
		OrganizerName:  h.profileName(r.Context(), email),
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	code := http.StatusOK
	message := "Event updated successfully"
	if id == "" {
		code = http.StatusCreated
		message = "Event created successfully"
	}
	utils.JSONResponse(w, code, utils.Payload{
		Success: true,
		Message: message,
		Data:    saved,
	})
}

// profileName resolves the organizer's display name, falling back to the
// email local part when the profile cannot be loaded.
func (h *EventHandler) profileName(ctx context.Context, email string) string {
	if h.names != nil {
		if u, err := h.names.Profile(ctx, email); err == nil && u.Name != "" {
			return u.Name
		}
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// isPhotoKey reports whether a stored photo reference is an R2 object key
// rather than an absolute URL.
func isPhotoKey(uri string) bool {
	return uri != "" && !strings.Contains(uri, "://")
}
