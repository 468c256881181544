package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxIDLength bounds widget identifiers accepted from board files and HTTP requests.
const maxIDLength = 128

// ValidateWidgetID validates a widget identifier supplied by a collaborator.
// Identifiers are opaque to the engine, but they end up in URLs, SVG element
// ids and log lines, so the accepted alphabet is kept narrow:
//   - No empty ids
//   - Maximum length of 128 characters
//   - No control characters or whitespace
//   - No path separators or quotes
func ValidateWidgetID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "widget id cannot be empty")
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidID, "widget id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidID, "widget id contains whitespace or control characters")
		}
	}

	if strings.ContainsAny(id, `/\"'<>`) {
		return New(ErrCodeInvalidID, "widget id contains invalid characters: %q", id)
	}

	return nil
}

// ValidateDimension validates a container or geometry dimension in pixels.
// Dimensions must be finite and non-negative.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s is not a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s cannot be negative (got %g)", name, v)
	}
	return nil
}
