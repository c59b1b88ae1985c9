package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GuiCPessoa/Frota-Simples/internal/model"
	"github.com/GuiCPessoa/Frota-Simples/internal/store"
)

// stubScoped is an in-memory store.Scoped that honors the same account
// isolation contract as the real implementation: foreign-account rows are
// invisible, not forbidden.
type stubScoped[T any] struct {
	mu   sync.Mutex
	rows []*T
	seq  int64
}

func newStubScoped[T any]() *stubScoped[T] { return &stubScoped[T]{} }

func scopeOf[T any](rec *T) *model.AccountScoped {
	return any(rec).(model.Owned).Scope()
}

func (s *stubScoped[T]) List(_ context.Context, accountID uuid.UUID) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []T
	// Reverse insertion order matches created_at DESC.
	for i := len(s.rows) - 1; i >= 0; i-- {
		if scopeOf(s.rows[i]).AccountID == accountID {
			out = append(out, *s.rows[i])
		}
	}
	return out, nil
}

func (s *stubScoped[T]) Get(_ context.Context, accountID, id uuid.UUID) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		sc := scopeOf(r)
		if sc.AccountID == accountID && sc.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubScoped[T]) Insert(_ context.Context, accountID uuid.UUID, rec *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc := scopeOf(rec)
	sc.AccountID = accountID
	sc.ID = uuid.New()
	s.seq++
	sc.CreatedAt = time.Unix(s.seq, 0)
	cp := *rec
	s.rows = append(s.rows, &cp)
	return nil
}

func (s *stubScoped[T]) Update(_ context.Context, accountID, id uuid.UUID, rec *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		sc := scopeOf(r)
		if sc.AccountID == accountID && sc.ID == id {
			keep := *sc
			*r = *rec
			// id, account_id and created_at are never updatable.
			*scopeOf(r) = keep
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *stubScoped[T]) Delete(_ context.Context, accountID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rows {
		sc := scopeOf(r)
		if sc.AccountID == accountID && sc.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *stubScoped[T]) Count(_ context.Context, accountID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, r := range s.rows {
		if scopeOf(r).AccountID == accountID {
			n++
		}
	}
	return n, nil
}

// all returns every stored row regardless of account, for assertions about
// what actually reached the store.
func (s *stubScoped[T]) all() []*T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*T(nil), s.rows...)
}

// failingScoped returns the same error from every operation.
type failingScoped[T any] struct{ err error }

func (f *failingScoped[T]) List(context.Context, uuid.UUID) ([]T, error) { return nil, f.err }
func (f *failingScoped[T]) Get(context.Context, uuid.UUID, uuid.UUID) (*T, error) {
	return nil, f.err
}
func (f *failingScoped[T]) Insert(context.Context, uuid.UUID, *T) error { return f.err }
func (f *failingScoped[T]) Update(context.Context, uuid.UUID, uuid.UUID, *T) error {
	return f.err
}
func (f *failingScoped[T]) Delete(context.Context, uuid.UUID, uuid.UUID) error { return f.err }
func (f *failingScoped[T]) Count(context.Context, uuid.UUID) (int64, error)    { return 0, f.err }

// stubIdentity is an in-memory store.Identity.
type stubIdentity struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*model.User
	accounts map[uuid.UUID]*model.Account
}

func newStubIdentity() *stubIdentity {
	return &stubIdentity{
		users:    map[uuid.UUID]*model.User{},
		accounts: map[uuid.UUID]*model.Account{},
	}
}

// provision registers a principal already linked to an account and returns
// its id.
func (s *stubIdentity) provision(accountID uuid.UUID, email string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.users[id] = &model.User{
		ID:        id,
		AccountID: accountID,
		Email:     email,
		Role:      model.RoleOwner,
		CreatedAt: time.Now(),
	}
	return id
}

func (s *stubIdentity) ResolveAccountID(_ context.Context, principalID uuid.UUID) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[principalID]
	if !ok {
		return uuid.Nil, store.ErrUnprovisioned
	}
	return u.AccountID, nil
}

func (s *stubIdentity) CreateAccountWithOwner(_ context.Context, account *model.Account, owner *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	owner.AccountID = account.ID
	s.accounts[account.ID] = account
	s.users[owner.ID] = owner
	return nil
}

func (s *stubIdentity) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubIdentity) FindUserByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func strPtr(v string) *string { return &v }
