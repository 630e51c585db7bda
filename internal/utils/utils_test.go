package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecordID(t *testing.T) {
	id, err := GenerateRecordID("C")
	require.NoError(t, err)
	assert.Len(t, id, 1+RecordIDLength)
	assert.True(t, strings.HasPrefix(id, "C"))
	for _, r := range id[1:] {
		assert.Contains(t, recordIDAlphabet, string(r))
	}
}

func TestJWTRoundTrip(t *testing.T) {
	actor := domain.Actor{ID: "S1", Email: "nav@example.org", FullName: "Nav One", Role: domain.RoleNavigator}
	now := time.Now()

	token, issued, err := GenerateJWT(actor, "secret", time.Hour, "multinav", now)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, actor, claims.Actor())
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, "multinav", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)

	expired, _, err := GenerateJWT(actor, "secret", time.Minute, "multinav", now.Add(-time.Hour))
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("", ""))
	assert.False(t, CheckPasswordHash("correct horse", ""))

	_, err = HashPassword(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
