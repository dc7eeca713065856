package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksuu-app/aksuu-server/internal/models"
)

func validDraft() models.EventDraft {
	return models.EventDraft{
		Title:        "Morning run",
		Description:  "Easy 5k around the lake",
		Category:     models.CategorySport,
		StartsAt:     time.Now().Add(24 * time.Hour),
		LocationName: "Karakol park",
		Limit:        20,
		Price:        0,
	}
}

func TestValidateDraft(t *testing.T) {
	testCases := []struct {
		name       string
		mutate     func(*models.EventDraft)
		wantFields []string
	}{
		{name: "valid", mutate: func(d *models.EventDraft) {}, wantFields: nil},
		{name: "free event is valid", mutate: func(d *models.EventDraft) { d.Price = 0 }, wantFields: nil},
		{name: "blank title", mutate: func(d *models.EventDraft) { d.Title = "   " }, wantFields: []string{"title"}},
		{name: "blank description", mutate: func(d *models.EventDraft) { d.Description = "" }, wantFields: []string{"description"}},
		{name: "unknown category", mutate: func(d *models.EventDraft) { d.Category = "party" }, wantFields: []string{"category"}},
		{name: "blank location", mutate: func(d *models.EventDraft) { d.LocationName = "" }, wantFields: []string{"location"}},
		{name: "missing start", mutate: func(d *models.EventDraft) { d.StartsAt = time.Time{} }, wantFields: []string{"starts_at"}},
		{name: "zero limit", mutate: func(d *models.EventDraft) { d.Limit = 0 }, wantFields: []string{"limit"}},
		{name: "negative limit", mutate: func(d *models.EventDraft) { d.Limit = -3 }, wantFields: []string{"limit"}},
		{name: "negative price", mutate: func(d *models.EventDraft) { d.Price = -1 }, wantFields: []string{"price"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			assert.Equal(t, tc.wantFields, ValidateDraft(d))
		})
	}
}

func TestValidateDraftReportsEveryField(t *testing.T) {
	fields := ValidateDraft(models.EventDraft{Price: -1})
	assert.Equal(t, []string{
		"title", "description", "category", "location", "starts_at", "limit", "price",
	}, fields)
}

func TestNewGeneratesDistinctIDs(t *testing.T) {
	meta := models.EventMeta{
		Status:         models.StatusPublished,
		OrganizerEmail: "a@b.com",
		OrganizerName:  "Aigerim",
	}

	first := New(validDraft(), meta)
	second := New(validDraft(), meta)

	// Identical payloads in rapid succession still get distinct ids.
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEmpty(t, first.ID)

	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
	assert.Equal(t, "a@b.com", first.OrganizerEmail)
	assert.Equal(t, "Aigerim", first.OrganizerName)
	assert.Equal(t, models.StatusPublished, first.Status)
}

func TestApplyDraftKeepsIdentity(t *testing.T) {
	meta := models.EventMeta{
		Status:         models.StatusDraft,
		OrganizerEmail: "a@b.com",
		OrganizerName:  "Aigerim",
	}
	e := New(validDraft(), meta)

	id, createdAt := e.ID, e.CreatedAt
	priorUpdatedAt := e.UpdatedAt

	updated := validDraft()
	updated.Title = "Evening run"
	updated.Price = 150
	ApplyDraft(&e, updated, models.StatusPublished)

	assert.Equal(t, id, e.ID)
	assert.Equal(t, createdAt, e.CreatedAt)
	assert.Equal(t, "a@b.com", e.OrganizerEmail)
	assert.Equal(t, "Evening run", e.Title)
	assert.Equal(t, 150, e.Price)
	assert.Equal(t, models.StatusPublished, e.Status)

	require.False(t, e.UpdatedAt.Before(priorUpdatedAt))
	require.False(t, e.UpdatedAt.Before(e.CreatedAt))
}
