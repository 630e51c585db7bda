package services

import (
	"context"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/SscSPs/multinav_crm/internal/dto"
)

// ClientReaderSvc defines read operations for client records.
// Returned clients carry ages derived at the time of the call.
type ClientReaderSvc interface {
	ListClients(ctx context.Context, actor *domain.Actor) ([]domain.Client, error)
	GetClient(ctx context.Context, actor *domain.Actor, clientID string) (*domain.Client, error)
}

// ClientWriterSvc defines write operations for client records.
type ClientWriterSvc interface {
	CreateClient(ctx context.Context, actor *domain.Actor, req dto.CreateClientRequest) (*domain.Client, error)
	UpdateClient(ctx context.Context, actor *domain.Actor, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)
	// DeleteClient does not cascade; activities keep the dangling reference.
	DeleteClient(ctx context.Context, actor *domain.Actor, clientID string) error
}

// ClientSvcFacade combines all client service interfaces.
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
