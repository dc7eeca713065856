package models

import "time"

type EventCategory string

const (
	CategorySport     EventCategory = "sport"
	CategoryHealth    EventCategory = "health"
	CategoryCulture   EventCategory = "culture"
	CategoryHobby     EventCategory = "hobby"
	CategoryEducation EventCategory = "education"
)

// Valid reports whether c is one of the five fixed categories.
func (c EventCategory) Valid() bool {
	switch c {
	case CategorySport, CategoryHealth, CategoryCulture, CategoryHobby, CategoryEducation:
		return true
	}
	return false
}

type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
)

// Event is a single entry in the feed. IDs are generation-time based strings,
// immutable after creation. The organizer is recorded by email with no
// referential integrity back to the users table: deleting an account leaves
// its events in place.
type Event struct {
	ID             string        `json:"id" gorm:"primaryKey"`
	Title          string        `json:"title" gorm:"not null"`
	Description    string        `json:"description" gorm:"not null"`
	Category       EventCategory `json:"category" gorm:"not null"`
	StartsAt       time.Time     `json:"startsAt" gorm:"index;not null"`
	LocationName   string        `json:"locationName" gorm:"not null"`
	PhotoURI       string        `json:"photoUri"`
	Limit          int           `json:"limit" gorm:"column:participant_limit;not null"`
	Price          int           `json:"price" gorm:"not null"` // 0 = free
	Status         EventStatus   `json:"status" gorm:"not null"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	OrganizerEmail string        `json:"organizerEmail" gorm:"index;not null"`
	OrganizerName  string        `json:"organizerName" gorm:"not null"`
}

// EventDraft is the organizer-editable subset of an event.
type EventDraft struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Category     EventCategory `json:"category"`
	StartsAt     time.Time     `json:"startsAt"`
	LocationName string        `json:"locationName"`
	PhotoURI     string        `json:"photoUri"`
	Limit        int           `json:"limit"`
	Price        int           `json:"price"`
}

// EventMeta carries everything the upsert needs besides the draft itself.
// An empty ID means create; a non-empty ID must match an existing event.
type EventMeta struct {
	ID             string
	Status         EventStatus
	OrganizerEmail string
	OrganizerName  string
}
