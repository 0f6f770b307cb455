package models

import "time"

// User is a registered account. Salt and Verifier form the password
// credential (see cryptox) and never leave the storage/service layers.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Name      string    `json:"name,omitempty"`
	Salt      []byte    `json:"-"`
	Verifier  []byte    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session is the single persisted login slot of this device.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiry"`
	User      User      `json:"currentUser"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
