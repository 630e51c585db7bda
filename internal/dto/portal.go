package dto

import (
	"time"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// PortalLoginRequest is the client portal sign-in payload.
type PortalLoginRequest struct {
	ClientID string `json:"clientId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PortalLoginResponse carries the portal session token.
type PortalLoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Client    PortalProfile `json:"client"`
}

// PortalProfile is the part of the client record shown in the portal.
type PortalProfile struct {
	ID                string   `json:"id"`
	FullName          string   `json:"fullName"`
	Languages         []string `json:"languages"`
	PreferredLanguage string   `json:"preferredLanguage"`
}

// ToPortalProfile converts a domain.Client to PortalProfile.
func ToPortalProfile(c domain.Client) PortalProfile {
	languages := c.Languages
	if languages == nil {
		languages = []string{}
	}
	return PortalProfile{
		ID:                c.ID,
		FullName:          c.FullName,
		Languages:         languages,
		PreferredLanguage: c.PreferredLanguage(),
	}
}

// AttachmentRequest is an inline file attached to an experience entry.
type AttachmentRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type"`
	Data string `json:"data" binding:"required"`
}

// CreateExperienceRequest is a client's experience entry.
type CreateExperienceRequest struct {
	Content     string              `json:"content" binding:"required"`
	Attachments []AttachmentRequest `json:"attachments" binding:"omitempty,max=5,dive"`
}

// SendMessageRequest is one portal message. Language defaults to the
// client's preferred language.
type SendMessageRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
}
