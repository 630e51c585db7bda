package repositories

import (
	"context"
	"time"
)

// TokenRevocationRepository records access tokens revoked before expiry.
type TokenRevocationRepository interface {
	// RevokeToken marks tokenID revoked until expiresAt, after which the token
	// is invalid anyway.
	RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}
