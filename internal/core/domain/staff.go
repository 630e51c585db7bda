package domain

import (
	"strings"
	"time"
)

// Role is a staff account's role; it is the sole input to the visibility policy.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCoordinator Role = "coordinator"
	RoleNavigator   Role = "navigator"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCoordinator, RoleNavigator:
		return true
	}
	return false
}

// StaffAccount is a program staff member who can sign in.
type StaffAccount struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"` // Unique, stored lower-cased
	FullName          string     `json:"fullName"`
	Role              Role       `json:"role"`
	AssignedLocations []string   `json:"assignedLocations"`
	IsActive          bool       `json:"isActive"`
	PhoneNumber       string     `json:"phoneNumber,omitempty"`
	PasswordHash      string     `json:"-"`
	LastLogin         *time.Time `json:"lastLogin,omitempty"`
	AuditFields
}

// Actor returns the session identity for the account.
func (s StaffAccount) Actor() Actor {
	return Actor{ID: s.ID, Email: s.Email, FullName: s.FullName, Role: s.Role}
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Actor is the identity a request acts as. A nil *Actor means an
// unauthenticated demo session.
type Actor struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
}

// Session is a validated access token.
type Session struct {
	Actor     Actor
	TokenID   string
	ExpiresAt time.Time
}

// GoogleIdentity is the verified identity from a Google sign-in.
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}
