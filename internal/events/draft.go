// Package events holds the draft validation and stamping rules for event
// records; persistence itself lives in the repositories package.
package events

import (
	"strings"
	"time"

	"github.com/aksuu-app/aksuu-server/internal/models"
	"github.com/aksuu-app/aksuu-server/internal/utils"
)

// ValidateDraft returns the names of missing or invalid draft fields, empty
// when the draft is ready to save. The store never validates; callers run
// this before upsert.
func ValidateDraft(d models.EventDraft) []string {
	var fields []string
	if strings.TrimSpace(d.Title) == "" {
		fields = append(fields, "title")
	}
	if strings.TrimSpace(d.Description) == "" {
		fields = append(fields, "description")
	}
	if !d.Category.Valid() {
		fields = append(fields, "category")
	}
	if strings.TrimSpace(d.LocationName) == "" {
		fields = append(fields, "location")
	}
	if d.StartsAt.IsZero() {
		fields = append(fields, "starts_at")
	}
	if d.Limit <= 0 {
		fields = append(fields, "limit")
	}
	if d.Price < 0 {
		fields = append(fields, "price")
	}
	return fields
}

// New stamps a fresh event from a draft: generated id, creation and update
// times set to now, organizer taken from meta.
func New(draft models.EventDraft, meta models.EventMeta) models.Event {
	now := time.Now()
	return models.Event{
		ID:             utils.NewEventID(),
		Title:          draft.Title,
		Description:    draft.Description,
		Category:       draft.Category,
		StartsAt:       draft.StartsAt,
		LocationName:   draft.LocationName,
		PhotoURI:       draft.PhotoURI,
		Limit:          draft.Limit,
		Price:          draft.Price,
		Status:         meta.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
		OrganizerEmail: meta.OrganizerEmail,
		OrganizerName:  meta.OrganizerName,
	}
}

// ApplyDraft merges a draft into an existing event. The id, creation time and
// organizer are immutable; the update time is refreshed.
func ApplyDraft(e *models.Event, draft models.EventDraft, status models.EventStatus) {
	e.Title = draft.Title
	e.Description = draft.Description
	e.Category = draft.Category
	e.StartsAt = draft.StartsAt
	e.LocationName = draft.LocationName
	e.PhotoURI = draft.PhotoURI
	e.Limit = draft.Limit
	e.Price = draft.Price
	e.Status = status
	e.UpdatedAt = time.Now()
}
