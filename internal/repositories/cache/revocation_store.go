// Package cache keeps revoked access-token IDs in Redis until the token
// would have expired anyway.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
)

const revokedKeyPrefix = "multinav:revoked:"

// NewClient creates a Redis client and verifies the connection.
func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

// RevocationStore implements portsrepo.TokenRevocationRepository.
type RevocationStore struct {
	client *redis.Client
	now    func() time.Time
}

var _ portsrepo.TokenRevocationRepository = (*RevocationStore)(nil)

func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client, now: time.Now}
}

func (s *RevocationStore) RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("%w: failed to revoke token: %w", apperrors.ErrStorage, err)
	}
	return nil
}

func (s *RevocationStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: failed to check token revocation: %w", apperrors.ErrStorage, err)
	}
	return n > 0, nil
}
