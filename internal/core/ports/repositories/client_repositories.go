package repositories

import (
	"context"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// ClientReader defines read operations for clients.
type ClientReader interface {
	// ListClients returns every client, ordered by creation time.
	ListClients(ctx context.Context) ([]domain.Client, error)
	// FindClientByID returns apperrors.ErrNotFound when no client has the ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
}

// ClientWriter defines write operations for clients.
type ClientWriter interface {
	SaveClient(ctx context.Context, client domain.Client) error
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client repository operations.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
