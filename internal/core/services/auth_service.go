package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/platform/config"
	"github.com/SscSPs/multinav_crm/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService implements the TokenSvcFacade for handling JWT session tokens.
type tokenService struct {
	BaseService
	cfg        *config.Config
	revocation portsrepo.TokenRevocationRepository // Optional
}

// NewTokenService creates a new instance of tokenService. A nil revocation
// store disables logout revocation; tokens then live until they expire.
func NewTokenService(cfg *config.Config, revocation portsrepo.TokenRevocationRepository, options ...ServiceOption) portssvc.TokenSvcFacade {
	return &tokenService{BaseService: newBase(options), cfg: cfg, revocation: revocation}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given staff account.
func (s *tokenService) GenerateAccessToken(ctx context.Context, staff *domain.StaffAccount) (string, time.Time, error) {
	token, claims, err := utils.GenerateJWT(staff.Actor(), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("staff_id", staff.ID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, claims.ExpiresAt.Time, nil
}

func (s *tokenService) GeneratePortalToken(ctx context.Context, client *domain.Client) (string, time.Time, error) {
	token, claims, err := utils.GenerateJWT(client.PortalActor(), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to generate portal token", slog.String("client_id", client.ID))
		return "", time.Time{}, fmt.Errorf("failed to generate portal token: %w", err)
	}
	return token, claims.ExpiresAt.Time, nil
}

func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}
	if (!claims.Role.IsValid() && claims.Role != domain.RoleClient) || claims.Subject == "" {
		return nil, fmt.Errorf("%w: token carries no staff or client identity", apperrors.ErrUnauthorized)
	}
	if s.revocation != nil && claims.ID != "" {
		revoked, err := s.revocation.IsTokenRevoked(ctx, claims.ID)
		if err != nil {
			s.LogError(ctx, err, "Failed to check token revocation", slog.String("staff_id", claims.Subject))
			return nil, err
		}
		if revoked {
			return nil, fmt.Errorf("%w: token has been revoked", apperrors.ErrUnauthorized)
		}
	}
	session := &domain.Session{Actor: claims.Actor(), TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

func (s *tokenService) RevokeSession(ctx context.Context, session *domain.Session) error {
	if session == nil || session.TokenID == "" {
		return nil
	}
	if s.revocation == nil {
		s.LogDebug(ctx, "No revocation store configured, token stays valid until expiry",
			slog.String("staff_id", session.Actor.ID))
		return nil
	}
	if err := s.revocation.RevokeToken(ctx, session.TokenID, session.ExpiresAt); err != nil {
		s.LogError(ctx, err, "Failed to revoke token", slog.String("staff_id", session.Actor.ID))
		return err
	}
	s.LogInfo(ctx, "Session revoked", slog.String("staff_id", session.Actor.ID))
	return nil
}

// --- GoogleOAuthHandlerSvcFacade Implementation ---

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
type googleOAuthHandlerService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
	validate     func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
}

// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
func (s *googleOAuthHandlerService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
func (s *googleOAuthHandlerService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthHandlerService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to exchange oauth code: %v", apperrors.ErrUnauthorized, err)
	}
	return token, nil
}

// VerifyIdentity validates the ID token Google returned alongside token.
func (s *googleOAuthHandlerService) VerifyIdentity(ctx context.Context, token *oauth2.Token) (*domain.GoogleIdentity, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}
	raw, _ := token.Extra("id_token").(string)
	if raw == "" {
		return nil, fmt.Errorf("%w: google response carried no id_token", apperrors.ErrUnauthorized)
	}

	payload, err := s.validate(ctx, raw, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: google ID token validation failed: %v", apperrors.ErrUnauthorized, err)
	}

	identity := &domain.GoogleIdentity{Subject: payload.Subject}
	identity.Email, _ = payload.Claims["email"].(string)
	identity.EmailVerified, _ = payload.Claims["email_verified"].(bool)
	identity.Name, _ = payload.Claims["name"].(string)
	return identity, nil
}
