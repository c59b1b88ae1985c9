// Package store is the account-scoped data access layer. Every read and
// write of tenant data goes through it, and every operation is constrained
// to a single account_id. Nothing outside this package issues entity queries.
package store

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both a genuinely absent id and a row owned by another
// account. The two cases are deliberately indistinguishable so a tenant
// cannot probe for foreign ids.
var ErrNotFound = errors.New("registro não encontrado")

// ErrUnprovisioned means the principal authenticated but has no user row, so
// no account can be resolved. Not retryable; callers must never fall back to
// a guessed account.
var ErrUnprovisioned = errors.New("usuário não vinculado a nenhuma conta")

// StoreError wraps a database fault. It is surfaced as-is and never retried
// here; retry policy, if any, belongs to the caller.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store: %s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error { return &StoreError{Op: op, Err: err} }
