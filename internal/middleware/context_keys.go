package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is the type of keys stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	sessionCtxKey = contextKey("session")
	demoCtxKey    = contextKey("demo")
)

// GetLoggerFromCtx returns the request-scoped logger, or slog.Default when
// the context carries none.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetSessionFromCtx returns the authenticated session, if any.
func GetSessionFromCtx(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionCtxKey).(*domain.Session)
	return session, ok && session != nil
}

// ActorFromContext returns the actor the request runs as. A nil actor with
// ok == true is a demo-mode request; ok == false means the request was never
// authenticated and must be rejected.
func ActorFromContext(c *gin.Context) (*domain.Actor, bool) {
	ctx := c.Request.Context()
	if session, ok := GetSessionFromCtx(ctx); ok {
		actor := session.Actor
		return &actor, true
	}
	if demo, _ := ctx.Value(demoCtxKey).(bool); demo {
		return nil, true
	}
	return nil, false
}
