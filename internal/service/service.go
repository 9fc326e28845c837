// Package service holds the business rules for each resource. Services
// validate input, call repositories and return *apperror.Error values that
// the HTTP layer renders as-is.
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"scholarstream/internal/apperror"
	"scholarstream/internal/repository"
)

const msgMissingFields = "Missing required fields"

var now = func() time.Time { return time.Now().UTC() }

// checkID rejects identifiers that are not UUIDs, e.g. "Invalid user ID format".
func checkID(id, entity string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.BadRequest("Invalid " + entity + " ID format")
	}
	return nil
}

// canonicalID parses a reference to another entity and returns it in the
// lowercase hyphenated form stored in the database.
func canonicalID(id, entity string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", apperror.BadRequest("Invalid " + entity + " ID format")
	}
	return u.String(), nil
}

// normalizeID canonicalises id when it is a UUID and leaves it as is otherwise.
func normalizeID(id string) string {
	if u, err := uuid.Parse(id); err == nil {
		return u.String()
	}
	return id
}

// storeError maps repository failures onto client-facing errors.
func storeError(err error, notFound string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperror.NotFound(notFound)
	default:
		return apperror.Internal(err)
	}
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func anyBlank(vals ...string) bool {
	for _, v := range vals {
		if blank(v) {
			return true
		}
	}
	return false
}

// nonBlank returns nil for a nil or whitespace-only value so a partial
// update skips the field.
func nonBlank(s *string) *string {
	if s == nil || blank(*s) {
		return nil
	}
	return s
}
