package models

import "time"

// Session is the server-side record behind a signed session token. It pins
// the identity, the role fixed at login, and the anti-forgery token that
// mutating requests must echo back.
type Session struct {
	SID       string    `gorm:"column:sid;primaryKey;size:64" json:"sid"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Role      Role      `gorm:"size:16;not null" json:"role"`
	Name      string    `json:"name"` // display name resolved at login
	CSRFToken string    `gorm:"size:64;not null" json:"-"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	Revoked   bool      `gorm:"index;not null" json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

// Identity is the resolved (user, role) pair handed to domain operations.
// It is passed explicitly; nothing reads ambient session state.
type Identity struct {
	UserID uint
	Role   Role
	Name   string
}
