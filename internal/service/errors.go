package service

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports a single field contract violation. It is always
// raised before any store call, so a rejected write never reaches the
// database.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ErrInvalidCredentials is returned for both unknown-email and wrong-password
// logins, so the two are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("credenciais inválidas")

// ErrEmailTaken is returned when registration hits an already-used email.
var ErrEmailTaken = errors.New("email já cadastrado")

// normalizeOptional collapses empty or whitespace-only optional values to
// absent. An empty string is indistinguishable from "not provided" and must
// never be stored as a spurious blank.
func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
