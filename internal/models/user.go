package models

import "time"

// User is the authentication identity. PasswordHash is empty for OAuth-only
// accounts; a local-provider user always has one. Users and billing Clients
// are separate identities correlated by email only.
type User struct {
	BaseModel
	Email          string       `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string       `json:"-"`
	Name           string       `gorm:"not null" json:"name"`
	Role           UserRole     `gorm:"type:varchar(20);not null;default:'client'" json:"role"`
	Provider       AuthProvider `gorm:"type:varchar(20);not null;default:'local'" json:"provider"`
	ProviderID     string       `json:"-"`
	ProfilePicture string       `json:"profilePicture,omitempty"`

	Sessions []Session `gorm:"foreignKey:UserID" json:"-"`
}

// Session is a server-side session row. The cookie carries only the opaque
// token; the principal is re-fetched by user id on every request.
type Session struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index" json:"userId"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}
