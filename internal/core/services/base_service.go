package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/analytics"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/SscSPs/multinav_crm/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock returns the current instant; ages, authorship stamps and audit
	// fields are all taken from it. Defaults to time.Now.
	Clock func() time.Time
}

// Now returns the service's notion of the current time.
func (s *BaseService) Now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Authorize returns apperrors.ErrForbidden when the actor may not open capability.
func (s *BaseService) Authorize(ctx context.Context, actor *domain.Actor, capability domain.Capability) error {
	if analytics.CanAccess(actor, capability) {
		return nil
	}
	err := fmt.Errorf("%w: %s requires %s", apperrors.ErrForbidden, roleOf(actor), capability)
	s.LogDebug(ctx, "Capability check failed",
		slog.String("role", roleOf(actor)),
		slog.String("capability", string(capability)))
	return err
}

// logUnexpected logs err unless it is one of the expected outcomes a caller
// maps to a client error.
func (s *BaseService) logUnexpected(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrDuplicate) || errors.Is(err, apperrors.ErrForbidden) {
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

func roleOf(actor *domain.Actor) string {
	if actor == nil {
		return "demo"
	}
	return string(actor.Role)
}

// ServiceOption configures the shared BaseService of any service.
type ServiceOption func(*BaseService)

// WithClock overrides the clock used by a service.
func WithClock(clock func() time.Time) ServiceOption {
	return func(b *BaseService) {
		b.Clock = clock
	}
}

func newBase(options []ServiceOption) BaseService {
	var b BaseService
	for _, option := range options {
		option(&b)
	}
	return b
}
