package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer
// session tokens. With demoMode set, requests without an Authorization header
// proceed as the unauthenticated demo actor.
func AuthMiddleware(tokenSvc portssvc.TokenSvcFacade, demoMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if demoMode {
				ctx := context.WithValue(c.Request.Context(), demoCtxKey, true)
				ctx = WithLogger(ctx, logger.With(slog.Bool("demo", true)))
				c.Request = c.Request.WithContext(ctx)
				c.Next()
				return
			}
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		session, err := tokenSvc.ValidateAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			if !errors.Is(err, apperrors.ErrUnauthorized) {
				logger.Error("Failed to validate token", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate token"})
				return
			}
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		enrichedLogger := logger.With(
			slog.String("user_id", session.Actor.ID),
			slog.String("role", string(session.Actor.Role)),
		)
		ctx := context.WithValue(c.Request.Context(), sessionCtxKey, session)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}
