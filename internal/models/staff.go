package models

import "time"

// AuditFields holds the row timestamps shared by mutable tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}

// StaffAccount is the staff_accounts table row.
type StaffAccount struct {
	StaffID           string     `db:"staff_id"`
	Email             string     `db:"email"`
	FullName          string     `db:"full_name"`
	Role              string     `db:"role"`
	AssignedLocations []string   `db:"assigned_locations"`
	IsActive          bool       `db:"is_active"`
	PhoneNumber       string     `db:"phone_number"`
	PasswordHash      string     `db:"password_hash"`
	LastLogin         *time.Time `db:"last_login"`
	AuditFields
}
