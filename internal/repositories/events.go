package repositories

import (
	"context"
	"errors"

	"github.com/aksuu-app/aksuu-server/internal/errs"
	"github.com/aksuu-app/aksuu-server/internal/events"
	"github.com/aksuu-app/aksuu-server/internal/models"
	"gorm.io/gorm"
)

// EventStore is a dumb persistence shim over the events table: it performs
// no draft validation, that happens at the API boundary before upsert.
type EventStore struct {
	db *gorm.DB
}

func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{db: db}
}

// List returns every event, newest-starting first.
func (s *EventStore) List(ctx context.Context) ([]models.Event, error) {
	var list []models.Event
	err := s.db.WithContext(ctx).Order("starts_at DESC").Find(&list).Error
	return list, err
}

// Get returns the event with the given id, or errs.ErrNotFound.
func (s *EventStore) Get(ctx context.Context, id string) (*models.Event, error) {
	var e models.Event
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Upsert creates or updates an event from a draft. With meta.ID set the
// matching event must exist; its id, creation time and organizer never
// change. With meta.ID empty a fresh event is stamped and stored.
func (s *EventStore) Upsert(ctx context.Context, draft models.EventDraft, meta models.EventMeta) (*models.Event, error) {
	if meta.ID != "" {
		existing, err := s.Get(ctx, meta.ID)
		if err != nil {
			return nil, err
		}
		events.ApplyDraft(existing, draft, meta.Status)
		if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}

	created := events.New(draft, meta)
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}
