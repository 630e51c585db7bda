package dto

import (
	"time"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// LoginRequest represents the email and password login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response after successful authentication.
type LoginResponse struct {
	Token        string              `json:"token"`
	ExpiresAt    time.Time           `json:"expiresAt"`
	Staff        StaffResponse       `json:"staff"`
	Capabilities []domain.Capability `json:"capabilities"`
}
