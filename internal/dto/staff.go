package dto

import (
	"time"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// CreateStaffRequest defines the data needed to create a staff account.
type CreateStaffRequest struct {
	Email             string   `json:"email" binding:"required,email"`
	FullName          string   `json:"fullName" binding:"required"`
	Role              string   `json:"role" binding:"required,oneof=admin coordinator navigator"`
	AssignedLocations []string `json:"assignedLocations"`
	PhoneNumber       string   `json:"phoneNumber"`
	Password          string   `json:"password" binding:"required,min=8"`
}

// UpdateStaffRequest defines the staff fields that may be changed.
type UpdateStaffRequest struct {
	FullName          *string   `json:"fullName"`
	Role              *string   `json:"role" binding:"omitempty,oneof=admin coordinator navigator"`
	AssignedLocations *[]string `json:"assignedLocations"`
	IsActive          *bool     `json:"isActive"`
	PhoneNumber       *string   `json:"phoneNumber"`
	Password          *string   `json:"password" binding:"omitempty,min=8"`
}

// StaffResponse is the wire representation of a staff account.
type StaffResponse struct {
	ID                string      `json:"id"`
	Email             string      `json:"email"`
	FullName          string      `json:"fullName"`
	Role              domain.Role `json:"role"`
	AssignedLocations []string    `json:"assignedLocations"`
	IsActive          bool        `json:"isActive"`
	PhoneNumber       string      `json:"phoneNumber,omitempty"`
	LastLogin         *time.Time  `json:"lastLogin,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
	LastUpdatedAt     time.Time   `json:"lastUpdatedAt"`
}

// ToStaffResponse converts a domain.StaffAccount to StaffResponse.
func ToStaffResponse(s domain.StaffAccount) StaffResponse {
	return StaffResponse{
		ID:                s.ID,
		Email:             s.Email,
		FullName:          s.FullName,
		Role:              s.Role,
		AssignedLocations: nonNil(s.AssignedLocations),
		IsActive:          s.IsActive,
		PhoneNumber:       s.PhoneNumber,
		LastLogin:         s.LastLogin,
		CreatedAt:         s.CreatedAt,
		LastUpdatedAt:     s.LastUpdatedAt,
	}
}

// ToListStaffResponse converts a slice of domain.StaffAccount.
func ToListStaffResponse(accounts []domain.StaffAccount) []StaffResponse {
	res := make([]StaffResponse, len(accounts))
	for i, s := range accounts {
		res[i] = ToStaffResponse(s)
	}
	return res
}
