package services

import (
	"context"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/SscSPs/multinav_crm/internal/dto"
)

// PortalClientSvc defines what a client signed in to the portal may do.
// Every call acts on the actor's own record; staff and demo actors get
// apperrors.ErrForbidden.
type PortalClientSvc interface {
	// AuthenticateClient checks a client ID and portal password. Unknown
	// clients, clients without portal access and wrong passwords all return
	// apperrors.ErrUnauthorized.
	AuthenticateClient(ctx context.Context, clientID, password string) (*domain.Client, error)
	Profile(ctx context.Context, actor *domain.Actor) (*domain.Client, error)
	ListOwnExperiences(ctx context.Context, actor *domain.Actor) ([]domain.ExperienceEntry, error)
	SubmitExperience(ctx context.Context, actor *domain.Actor, req dto.CreateExperienceRequest) (*domain.ExperienceEntry, error)
	ListOwnMessages(ctx context.Context, actor *domain.Actor) ([]domain.PortalMessage, error)
	SendClientMessage(ctx context.Context, actor *domain.Actor, req dto.SendMessageRequest) (*domain.PortalMessage, error)
}

// PortalStaffSvc defines the staff side of the portal, gated on client
// records access.
type PortalStaffSvc interface {
	// PortalInbox lists clients with portal submissions, most recent first.
	PortalInbox(ctx context.Context, actor *domain.Actor) ([]domain.PortalInboxEntry, error)
	ListClientExperiences(ctx context.Context, actor *domain.Actor, clientID string) ([]domain.ExperienceEntry, error)
	MarkExperienceRead(ctx context.Context, actor *domain.Actor, clientID, experienceID string) error
	ListClientMessages(ctx context.Context, actor *domain.Actor, clientID string) ([]domain.PortalMessage, error)
	ReplyToClient(ctx context.Context, actor *domain.Actor, clientID string, req dto.SendMessageRequest) (*domain.PortalMessage, error)
	MarkMessageRead(ctx context.Context, actor *domain.Actor, clientID, messageID string) error
}

// PortalSvcFacade combines both sides of the client portal.
type PortalSvcFacade interface {
	PortalClientSvc
	PortalStaffSvc
}
