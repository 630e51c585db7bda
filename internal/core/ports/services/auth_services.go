package services

import (
	"context"
	"time"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"golang.org/x/oauth2"
)

// TokenSvcFacade defines the interface for session token management.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, staff *domain.StaffAccount) (string, time.Time, error)
	// GeneratePortalToken issues a session for a client signed in to the
	// portal. The session carries domain.RoleClient.
	GeneratePortalToken(ctx context.Context, client *domain.Client) (string, time.Time, error)
	// ValidateAccessToken verifies signature, expiry and revocation.
	ValidateAccessToken(ctx context.Context, token string) (*domain.Session, error)
	// RevokeSession invalidates the session's token until it expires.
	RevokeSession(ctx context.Context, session *domain.Session) error
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// VerifyIdentity validates the ID token carried by token and returns the
	// verified identity.
	VerifyIdentity(ctx context.Context, token *oauth2.Token) (*domain.GoogleIdentity, error)
}
