package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GuiCPessoa/Frota-Simples/internal/model"
)

// Resolver maps an authenticated principal to its account. Scoped services
// call it at the start of every operation; the result is never cached.
type Resolver interface {
	ResolveAccountID(ctx context.Context, principalID uuid.UUID) (uuid.UUID, error)
}

// Identity persists accounts and users. Registration and login are the only
// paths in the system that read or write these tables without an account
// filter already in hand.
type Identity interface {
	Resolver
	CreateAccountWithOwner(ctx context.Context, account *model.Account, owner *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type identityStore struct {
	db *gorm.DB
}

func NewIdentity(db *gorm.DB) Identity { return &identityStore{db: db} }

func (s *identityStore) ResolveAccountID(ctx context.Context, principalID uuid.UUID) (uuid.UUID, error) {
	var u model.User
	err := s.db.WithContext(ctx).Select("account_id").First(&u, "id = ?", principalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, ErrUnprovisioned
	}
	if err != nil {
		return uuid.Nil, storeErr("resolve account", err)
	}
	return u.AccountID, nil
}

// CreateAccountWithOwner creates the account and its owner user in one
// transaction, so onboarding can never leave an account without a member.
func (s *identityStore) CreateAccountWithOwner(ctx context.Context, account *model.Account, owner *model.User) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if account.ID == uuid.Nil {
			account.ID = uuid.New()
		}
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		owner.AccountID = account.ID
		return tx.Create(owner).Error
	})
	if err != nil {
		return storeErr("create account", err)
	}
	return nil
}

func (s *identityStore) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("find user by email", err)
	}
	return &u, nil
}

func (s *identityStore) FindUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("find user by id", err)
	}
	return &u, nil
}
