package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseOptionalDate parses a YYYY-MM-DD string; an empty string yields nil.
func ParseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be formatted YYYY-MM-DD", apperrors.ErrValidation, field)
	}
	return &t, nil
}

// FormatOptionalDate formats t as YYYY-MM-DD, or "" when nil.
func FormatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
