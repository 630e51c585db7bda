package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *RevocationStore) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewRevocationStore(client)
	fixed := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	return mr, store
}

func TestRevocationStore_RevokeUntilExpiry(t *testing.T) {
	mr, store := setupTestRedis(t)
	ctx := context.Background()
	expiresAt := store.now().Add(10 * time.Minute)

	require.NoError(t, store.RevokeToken(ctx, "tok-1", expiresAt))

	revoked, err := store.IsTokenRevoked(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, 10*time.Minute, mr.TTL(revokedKeyPrefix+"tok-1"))

	other, err := store.IsTokenRevoked(ctx, "tok-2")
	require.NoError(t, err)
	assert.False(t, other)

	mr.FastForward(11 * time.Minute)
	revoked, err = store.IsTokenRevoked(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationStore_ExpiredTokenIsNotStored(t *testing.T) {
	mr, store := setupTestRedis(t)

	require.NoError(t, store.RevokeToken(context.Background(), "old", store.now().Add(-time.Second)))

	assert.False(t, mr.Exists(revokedKeyPrefix+"old"))
}

func TestRevocationStore_UnavailableRedis(t *testing.T) {
	mr, store := setupTestRedis(t)
	mr.Close()

	_, err := store.IsTokenRevoked(context.Background(), "tok-1")

	assert.ErrorIs(t, err, apperrors.ErrStorage)
}

func TestNewClient_PingFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(context.Background(), addr, "")

	assert.Error(t, err)
}
