package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountScoped is embedded by every row type that is partitioned by account.
// The account_id column is the tenant boundary: no query in the system may
// touch a row whose AccountID differs from the caller's resolved account.
type AccountScoped struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time
}

// RowID returns the primary key.
func (s *AccountScoped) RowID() uuid.UUID { return s.ID }

// OwnerAccount returns the account the row belongs to.
func (s *AccountScoped) OwnerAccount() uuid.UUID { return s.AccountID }

// ForceAccount overwrites AccountID. The store calls this on every insert so
// that a caller-supplied account_id can never land in a foreign tenant.
func (s *AccountScoped) ForceAccount(id uuid.UUID) { s.AccountID = id }

// EnsureID assigns a fresh uuid when the row has none yet.
func (s *AccountScoped) EnsureID() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
}

// Scope exposes the embedded base, for callers that hold the row behind a
// type parameter.
func (s *AccountScoped) Scope() *AccountScoped { return s }

// Owned is the interface the store requires of account-partitioned rows.
// All of it is provided by embedding AccountScoped.
type Owned interface {
	RowID() uuid.UUID
	OwnerAccount() uuid.UUID
	ForceAccount(uuid.UUID)
	EnsureID()
	Scope() *AccountScoped
}
