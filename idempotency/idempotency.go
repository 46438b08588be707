// Package idempotency generates and validates the per-request keys the API
// uses to deduplicate retried writes.
package idempotency

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cyphera/circle-w3s/circleerr"
)

// NewKey returns a fresh random UUID v4 in canonical text form.
// uuid.New reads from crypto/rand and panics only if the OS entropy source
// is unavailable.
func NewKey() string {
	return uuid.New().String()
}

// Validate checks that key is a canonical, lower-case UUID v4 string.
func Validate(key string) error {
	id, err := uuid.Parse(key)
	if err != nil {
		return &circleerr.IdentifierError{Value: key, Err: err}
	}
	if id.String() != strings.ToLower(key) {
		return &circleerr.IdentifierError{Value: key, Err: fmt.Errorf("not in canonical 8-4-4-4-12 form")}
	}
	if id.Version() != 4 {
		return &circleerr.IdentifierError{Value: key, Err: fmt.Errorf("expected version 4, got %d", id.Version())}
	}
	if id.Variant() != uuid.RFC4122 {
		return &circleerr.IdentifierError{Value: key, Err: fmt.Errorf("unexpected variant %s", id.Variant())}
	}
	return nil
}

// Resolve returns override unchanged when it is set and valid, and a fresh
// key otherwise. Call it once per request, never once per template.
func Resolve(override string) (string, error) {
	if override == "" {
		return NewKey(), nil
	}
	if err := Validate(override); err != nil {
		return "", err
	}
	return override, nil
}
