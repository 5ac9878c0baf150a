// Package validation defines the request payloads accepted by the API and
// rejects malformed input before it reaches the storage layer. The structs
// here are deliberately independent of the GORM models.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"ecoconnect/internal/models"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func required(field, value string, errs []models.FieldError) []models.FieldError {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, models.FieldError{Field: field, Message: fmt.Sprintf("%s is required", field)})
	}
	return errs
}

// ValidateSlug checks the canonical slug format: lowercase alphanumeric
// runs separated by single hyphens, no leading or trailing hyphen.
func ValidateSlug(slug string) error {
	if !slugRegex.MatchString(slug) {
		return fmt.Errorf("slug must contain only lowercase letters, numbers, and hyphens")
	}
	return nil
}
