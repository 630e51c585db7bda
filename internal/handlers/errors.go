package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/SscSPs/multinav_crm/internal/middleware"
)

// ErrorResponse is the error body returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps a service error onto an HTTP status. Unrecognised errors are
// internal failures.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrNoData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrNarrativeNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, apperrors.ErrNarrativeService), errors.Is(err, apperrors.ErrContractViolation):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response for err. Client errors echo the
// error text; everything else is logged and answered with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)
	switch {
	case status == http.StatusForbidden:
		logger.Warn("Request forbidden", slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: "You do not have permission to perform this action"})
	case status < http.StatusInternalServerError:
		logger.Warn(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: err.Error()})
	case status == http.StatusInternalServerError:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback + ": " + publicNarrativeReason(err)})
	}
}

func publicNarrativeReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrNarrativeNotConfigured):
		return "the insight service is not configured"
	case errors.Is(err, apperrors.ErrContractViolation):
		return "the insight service returned an unexpected response"
	default:
		return "the insight service is unavailable"
	}
}

// respondBindError answers a request whose body or query failed binding.
func respondBindError(c *gin.Context, err error, what string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + what + ": " + bindErrorMessage(err)})
}

// bindErrorMessage renders validation failures per field. Other binding
// errors (malformed JSON, type mismatches) keep their own text.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
		case "datetime":
			msgs = append(msgs, fe.Field()+" must be formatted YYYY-MM-DD")
		case "email":
			msgs = append(msgs, fe.Field()+" must be a valid email address")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed the %s check", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// requireActor returns the request's actor. A nil actor is a demo session.
// When the request carries no identity at all it writes 401 and returns false.
func requireActor(c *gin.Context) (*domain.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return actor, true
}
