// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is an account in the marketplace. Planner and vendor are independent
// flags; a user may hold both, either or neither.
type User struct {
	ID           uint
	Username     string // Globally unique login name.
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	IsVendor     bool
	IsPlanner    bool
	IsStaff      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name, trimmed. Empty when neither is set.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// DisplayName returns the full name, or the username when no name is set.
func (u *User) DisplayName() string {
	if name := u.FullName(); name != "" {
		return name
	}

	return u.Username
}

// Capabilities derives the capability set from the user's flags.
func (u *User) Capabilities() Capabilities {
	caps := make(Capabilities, 0, 3)
	if u.IsVendor {
		caps = append(caps, CapabilityVendor)
	}
	if u.IsPlanner {
		caps = append(caps, CapabilityPlanner)
	}
	if u.IsStaff {
		caps = append(caps, CapabilityStaff)
	}

	return caps
}

// Principal is the authenticated caller of a request. It is resolved once per
// request and handed explicitly to every use case.
type Principal struct {
	UserID       uint
	Username     string
	Capabilities Capabilities
}

// NewPrincipal builds the principal for an authenticated user.
func NewPrincipal(u *User) *Principal {
	return &Principal{
		UserID:       u.ID,
		Username:     u.Username,
		Capabilities: u.Capabilities(),
	}
}

// Can reports whether the principal holds capability c. A nil principal holds nothing.
func (p *Principal) Can(c Capability) bool {
	if p == nil {
		return false
	}

	return p.Capabilities.Has(c)
}

// Is reports whether the principal is the user with the given id.
func (p *Principal) Is(userID uint) bool {
	return p != nil && p.UserID == userID
}

// RefreshToken is an issued refresh token, stored by hash.
type RefreshToken struct {
	ID        uint
	UserID    uint
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token is past its expiry at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
