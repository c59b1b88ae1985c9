package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is a closed set. It is stored and returned but not yet checked by
// any operation; access control today is account scoping only.
type UserRole string

const (
	RoleOwner   UserRole = "owner"
	RoleManager UserRole = "manager"
	RoleDriver  UserRole = "driver"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleDriver:
		return true
	}
	return false
}

// User is a principal bound to exactly one account. ID doubles as the
// principal id carried in the access token; it is assigned at registration,
// never by the scoped store.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'owner'"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
}
