package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GuiCPessoa/Frota-Simples/internal/model"
)

// Scoped is the account-scoped CRUD surface for one entity kind.
//
// Centralizing the tenant filter here, instead of trusting every call site
// to remember its own account_id clause, is the property this package exists
// for: a missed filter is a silent cross-tenant data leak, not a crash.
type Scoped[T any] interface {
	// List returns the account's full set, newest-created first.
	List(ctx context.Context, accountID uuid.UUID) ([]T, error)
	// Get returns ErrNotFound for absent and foreign-account ids alike.
	Get(ctx context.Context, accountID, id uuid.UUID) (*T, error)
	// Insert writes rec with account_id forced to accountID; any
	// caller-supplied account_id is overwritten.
	Insert(ctx context.Context, accountID uuid.UUID, rec *T) error
	// Update touches the row only when its account_id matches; id,
	// account_id and created_at are never updatable.
	Update(ctx context.Context, accountID, id uuid.UUID, rec *T) error
	// Delete is not idempotent: deleting an absent id returns ErrNotFound.
	Delete(ctx context.Context, accountID, id uuid.UUID) error
	// Count returns the size of the account's set.
	Count(ctx context.Context, accountID uuid.UUID) (int64, error)
}

type scopedStore[T any] struct {
	db *gorm.DB
}

// NewScoped builds the store for one entity kind. T must embed
// model.AccountScoped.
func NewScoped[T any](db *gorm.DB) Scoped[T] {
	return &scopedStore[T]{db: db}
}

// scoped is the single point where the tenant filter is applied. Every
// query in this file starts here.
func (s *scopedStore[T]) scoped(ctx context.Context, accountID uuid.UUID) *gorm.DB {
	return s.db.WithContext(ctx).Model(new(T)).Where("account_id = ?", accountID)
}

func (s *scopedStore[T]) List(ctx context.Context, accountID uuid.UUID) ([]T, error) {
	var rows []T
	// id is only a deterministic tiebreak for equal created_at values.
	err := s.scoped(ctx, accountID).Order("created_at DESC, id").Find(&rows).Error
	if err != nil {
		return nil, storeErr("list", err)
	}
	return rows, nil
}

func (s *scopedStore[T]) Get(ctx context.Context, accountID, id uuid.UUID) (*T, error) {
	var row T
	err := s.scoped(ctx, accountID).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get", err)
	}
	return &row, nil
}

func (s *scopedStore[T]) Insert(ctx context.Context, accountID uuid.UUID, rec *T) error {
	owned, err := asOwned(rec)
	if err != nil {
		return err
	}
	owned.ForceAccount(accountID)
	owned.EnsureID()
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return storeErr("insert", err)
	}
	return nil
}

func (s *scopedStore[T]) Update(ctx context.Context, accountID, id uuid.UUID, rec *T) error {
	owned, err := asOwned(rec)
	if err != nil {
		return err
	}
	// Keep the in-memory record consistent with what is written.
	owned.ForceAccount(accountID)

	res := s.scoped(ctx, accountID).
		Where("id = ?", id).
		Select("*").
		Omit("id", "account_id", "created_at").
		Updates(rec)
	if res.Error != nil {
		return storeErr("update", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *scopedStore[T]) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, id).
		Delete(new(T))
	if res.Error != nil {
		return storeErr("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *scopedStore[T]) Count(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	if err := s.scoped(ctx, accountID).Count(&n).Error; err != nil {
		return 0, storeErr("count", err)
	}
	return n, nil
}

func asOwned(rec any) (model.Owned, error) {
	owned, ok := rec.(model.Owned)
	if !ok {
		return nil, storeErr("scope", fmt.Errorf("%T does not embed model.AccountScoped", rec))
	}
	return owned, nil
}
