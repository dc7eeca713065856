package models

import "time"

// PasswordReset is the outstanding reset ticket for an account: at most one
// per email, overwritten by every new request. Expiry is evaluated on read;
// expired rows stay in place until a successful password change deletes them.
type PasswordReset struct {
	Email     string    `json:"email" gorm:"primaryKey"`
	Code      string    `json:"-" gorm:"not null"` // 6 ASCII digits
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
