package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential record plus the profile shown in the app.
// There is exactly one record per normalized email; registering the same
// email again replaces the record instead of failing.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash; empty for Google-only accounts
	Name      string    `json:"name" gorm:"not null"`
	Phone     string    `json:"phone"`
	PhotoURI  string    `json:"photoUri"`
	Rating    float64   `json:"rating"`
	Language  string    `json:"language" gorm:"default:ru"` // ru, kg or en
	IsAdmin   bool      `json:"isAdmin" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// ProfilePatch is the merge-patch accepted by the profile endpoint.
// Only these four fields are editable; email, rating and the admin flag
// never change through the profile screen.
type ProfilePatch struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	PhotoURI *string `json:"photoUri,omitempty"`
	Language *string `json:"language,omitempty"`
}
