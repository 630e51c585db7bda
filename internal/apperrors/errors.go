package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the actor is authenticated but lacks the capability for the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing, invalid or revoked credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrStorage wraps failures reported by the entity store.
var ErrStorage = errors.New("storage error")

// ErrNoData indicates a report window that matched no records at all.
var ErrNoData = errors.New("no data for the selected period")

// ErrNarrativeService wraps failures reported by the insight narrative service.
var ErrNarrativeService = errors.New("narrative service error")

// ErrNarrativeNotConfigured indicates the narrative service has no credential configured.
var ErrNarrativeNotConfigured = errors.New("narrative service not configured")

// ErrContractViolation indicates the narrative service returned a payload of the wrong shape.
var ErrContractViolation = errors.New("narrative response contract violation")
