package repositories

import (
	"context"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// ExperienceRepository stores the experience entries clients submit.
type ExperienceRepository interface {
	// ListExperiences returns a client's entries, newest first.
	ListExperiences(ctx context.Context, clientID string) ([]domain.ExperienceEntry, error)
	SaveExperience(ctx context.Context, entry domain.ExperienceEntry) error
	// MarkExperienceRead returns apperrors.ErrNotFound unless the entry
	// belongs to clientID.
	MarkExperienceRead(ctx context.Context, clientID, experienceID string) error
}

// MessageRepository stores the portal conversation.
type MessageRepository interface {
	// ListMessages returns a client's conversation, oldest first.
	ListMessages(ctx context.Context, clientID string) ([]domain.PortalMessage, error)
	SaveMessage(ctx context.Context, message domain.PortalMessage) error
	// MarkMessageRead returns apperrors.ErrNotFound unless the message
	// belongs to clientID.
	MarkMessageRead(ctx context.Context, clientID, messageID string) error
}

// PortalRepositoryFacade combines the portal stores with the per-client
// submission counts staff work from.
type PortalRepositoryFacade interface {
	ExperienceRepository
	MessageRepository
	// ListPortalActivity returns counts for every client with at least one
	// submission, most recent submission first.
	ListPortalActivity(ctx context.Context) ([]domain.PortalActivity, error)
}
