// Package validation holds the pure input checks applied by the services
// before any mutation. Every failure is an entities.ValidationError naming
// the offending field and constraint.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/taskboard/core/internal/domain/entities"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// RequiredName trims the value and enforces non-empty plus the length bound.
// Returns the trimmed value on success.
func RequiredName(value, field string, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", entities.NewValidationError(field+" is required", field, "required")
	}
	if len(trimmed) > maxLen {
		return "", entities.NewValidationError(
			fmt.Sprintf("%s must be at most %d characters", field, maxLen), field, "max_length")
	}
	return trimmed, nil
}

// Username enforces the 3-50 character bound after trimming.
func Username(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < 3 {
		return "", entities.NewValidationError("username must be at least 3 characters", "username", "min_length")
	}
	if len(trimmed) > 50 {
		return "", entities.NewValidationError("username must be at most 50 characters", "username", "max_length")
	}
	return trimmed, nil
}

// Email checks the trimmed value against a permissive RFC-ish pattern.
func Email(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if !emailPattern.MatchString(trimmed) {
		return "", entities.NewValidationError("invalid email format", "email", "format")
	}
	return trimmed, nil
}

// Password enforces the minimum credential length. The value is never trimmed.
func Password(value string) error {
	if len(value) < 8 {
		return entities.NewValidationError("password must be at least 8 characters", "password", "min_length")
	}
	return nil
}

// Position rejects negative ordering keys.
func Position(value int) error {
	if value < 0 {
		return entities.NewValidationError("position must be a non-negative integer", "position", "non_negative")
	}
	return nil
}

// DueDate parses a strict YYYY-MM-DD calendar date.
func DueDate(value string) (entities.Date, error) {
	d, err := entities.ParseDate(value)
	if err != nil {
		return entities.Date{}, entities.NewValidationError(
			"due_date must be a YYYY-MM-DD date", "due_date", "date_format")
	}
	return d, nil
}

// TagList converts a decoded JSON array into Tags, failing with the index of
// the first non-string element.
func TagList(raw []interface{}) (entities.Tags, error) {
	tags := make(entities.Tags, 0, len(raw))
	for i, elem := range raw {
		s, ok := elem.(string)
		if !ok {
			verr := entities.NewValidationError(
				fmt.Sprintf("tags element %d must be a string", i), "tags", "element_type")
			verr.Details["index"] = i
			return nil, verr
		}
		tags = append(tags, s)
	}
	return tags, nil
}
