package model

import (
	"time"

	"github.com/google/uuid"
)

// Account is the tenant boundary. All users, vehicles and suppliers hang off
// an account via account_id.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Timezone  string    `gorm:"not null;default:'America/Sao_Paulo'"`
	CreatedAt time.Time
}
