//go:build unit || e2e

// Package memstore is an in-memory stand-in for the PostgreSQL persistence layer.
// It enforces the same uniqueness and foreign-key rules and reports them with
// the same repository error kinds.
package memstore

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"laundry-backoffice/internal/domain/company"
	"laundry-backoffice/internal/domain/credential"
	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/infra"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"
	"laundry-backoffice/internal/usecase/queries"
	"laundry-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	errNoRows          = errors.New("no rows in result set")
	errUniqueViolation = errors.New("duplicate key value violates unique constraint \"users_email_key\"")
	errForeignKey      = errors.New("insert or update violates foreign key constraint")
)

type companyRecord struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
	directors []uuid.UUID
}

type Store struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]shared.UserSnapshot
	emails    map[string]uuid.UUID
	companies map[uuid.UUID]companyRecord
	units     map[uuid.UUID]queries.UnitView
	tokens    map[string]*credential.Token // keyed by digest
}

func New() *Store {
	return &Store{
		users:     make(map[uuid.UUID]shared.UserSnapshot),
		emails:    make(map[string]uuid.UUID),
		companies: make(map[uuid.UUID]companyRecord),
		units:     make(map[uuid.UUID]queries.UnitView),
		tokens:    make(map[string]*credential.Token),
	}
}

// UnitOfWork returns a shared.UnitOfWork backed by the store.
func (s *Store) UnitOfWork() *UoW {
	return &UoW{store: s}
}

func (s *Store) Users() *UserReadStore {
	return &UserReadStore{store: s}
}

func (s *Store) Companies() *CompanyReadStore {
	return &CompanyReadStore{store: s}
}

func (s *Store) Units() *UnitReadStore {
	return &UnitReadStore{store: s}
}

// UserCount is the number of persisted users with the given email.
func (s *Store) UserCount(email string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, u := range s.users {
		if u.Email == email {
			n++
		}
	}
	return n
}

// PasswordTokens returns copies of every token issued for userID, oldest first.
func (s *Store) PasswordTokens(userID uuid.UUID) []*credential.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*credential.Token
	for _, t := range s.tokens {
		if t.UserID() == userID {
			out = append(out, cloneToken(t))
		}
	}
	slices.SortFunc(out, byCreated((*credential.Token).CreatedAt, (*credential.Token).ID))
	return out
}

// SeedUser inserts u as-is, bypassing the usecases.
func (s *Store) SeedUser(u *user.User) {
	if err := s.insertUser(u); err != nil {
		panic(err)
	}
}

// SeedCompany inserts c as-is, bypassing the director filter.
func (s *Store) SeedCompany(c *company.Company) {
	if err := s.insertCompany(c); err != nil {
		panic(err)
	}
}

func (s *Store) insertUser(u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emails[u.Email().Value()]; taken {
		return infra.WrapRepoErr("failed to create user", errUniqueViolation, infra.KindDuplicateKey)
	}
	s.users[u.ID()] = snapshotOf(u)
	s.emails[u.Email().Value()] = u.ID()
	return nil
}

func (s *Store) updateUser(u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID()]; !ok {
		return infra.WrapRepoErr("user not found", errNoRows, infra.KindNotFound)
	}
	s.users[u.ID()] = snapshotOf(u)
	return nil
}

func (s *Store) insertCompany(c *company.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range c.DirectorIDs() {
		if _, ok := s.users[id]; !ok {
			return infra.WrapRepoErr("failed to add company director", errForeignKey, infra.KindForeignKeyViolated)
		}
	}
	directors := slices.Clone(c.DirectorIDs())
	slices.SortFunc(directors, compareUUID)
	s.companies[c.ID()] = companyRecord{
		id:        c.ID(),
		name:      c.Name(),
		createdAt: c.CreatedAt(),
		directors: directors,
	}
	return nil
}

func (s *Store) insertUnit(u *company.Unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.companies[u.CompanyID()]; !ok {
		return infra.WrapRepoErr("failed to create unit", errForeignKey, infra.KindForeignKeyViolated)
	}
	s.units[u.ID()] = queries.UnitView{
		ID:        u.ID(),
		CompanyID: u.CompanyID(),
		Name:      u.Name(),
		Address:   u.Address(),
		CreatedAt: u.CreatedAt(),
	}
	return nil
}

func (s *Store) insertToken(t *credential.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[t.UserID()]; !ok {
		return infra.WrapRepoErr("failed to create password token", errForeignKey, infra.KindForeignKeyViolated)
	}
	key := string(t.Hash())
	if _, taken := s.tokens[key]; taken {
		return infra.WrapRepoErr("failed to create password token", errUniqueViolation, infra.KindDuplicateKey)
	}
	s.tokens[key] = cloneToken(t)
	return nil
}

func (s *Store) consumeToken(hash []byte, now time.Time) (*credential.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tokens[string(hash)]
	if !ok || t.Consume(now) != nil {
		return nil, infra.WrapRepoErr("failed to consume password token", errNoRows, infra.KindNotFound)
	}
	return cloneToken(t), nil
}

func (s *Store) revokeTokens(userID uuid.UUID, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tokens {
		if t.UserID() == userID && t.UsedAt() == nil {
			used := now
			s.tokens[string(t.Hash())] = credential.Reconstruct(credential.ReconstructParams{
				ID:        t.ID(),
				UserID:    t.UserID(),
				Purpose:   t.Purpose(),
				Hash:      t.Hash(),
				CreatedAt: t.CreatedAt(),
				ExpiresAt: t.ExpiresAt(),
				UsedAt:    &used,
			})
		}
	}
}

func cloneToken(t *credential.Token) *credential.Token {
	var usedAt *time.Time
	if t.UsedAt() != nil {
		u := *t.UsedAt()
		usedAt = &u
	}
	return credential.Reconstruct(credential.ReconstructParams{
		ID:        t.ID(),
		UserID:    t.UserID(),
		Purpose:   t.Purpose(),
		Hash:      slices.Clone(t.Hash()),
		CreatedAt: t.CreatedAt(),
		ExpiresAt: t.ExpiresAt(),
		UsedAt:    usedAt,
	})
}

func snapshotOf(u *user.User) shared.UserSnapshot {
	return shared.UserSnapshot{
		ID:               u.ID(),
		Name:             u.Name().Value(),
		Email:            u.Email().Value(),
		PasswordHash:     u.PasswordHash(),
		Role:             u.Role(),
		Online:           u.Online(),
		EmailVerified:    u.EmailVerified(),
		TwoFactorEnabled: u.TwoFactorEnabled(),
		TwoFactorSecret:  u.TwoFactorSecret(),
		UnitID:           u.UnitID(),
		LastLoginAt:      u.LastLoginAt(),
		CreatedAt:        u.CreatedAt(),
		UpdatedAt:        u.UpdatedAt(),
	}
}

func viewOf(s shared.UserSnapshot) *queries.UserView {
	return &queries.UserView{
		ID:               s.ID,
		Name:             s.Name,
		Email:            s.Email,
		Role:             s.Role,
		Online:           s.Online,
		EmailVerified:    s.EmailVerified,
		TwoFactorEnabled: s.TwoFactorEnabled,
		UnitID:           s.UnitID,
		LastLoginAt:      s.LastLoginAt,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func companyViewOf(c companyRecord) *queries.CompanyView {
	return &queries.CompanyView{
		ID:          c.id,
		Name:        c.name,
		CreatedAt:   c.createdAt,
		DirectorIDs: slices.Clone(c.directors),
	}
}

func compareUUID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

func byCreated[T any](created func(T) time.Time, id func(T) uuid.UUID) func(a, b T) int {
	return func(a, b T) int {
		if c := created(a).Compare(created(b)); c != 0 {
			return c
		}
		return compareUUID(id(a), id(b))
	}
}

// UoW applies writes immediately; there is no rollback.
type UoW struct {
	store *Store
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, &memTx{store: u.store})
}

func (u *UoW) CommandReads() shared.CommandReads {
	return &commandReads{store: u.store}
}

type memTx struct {
	store *Store
}

func (t *memTx) Users() shared.UserRepository        { return &userRepo{store: t.store} }
func (t *memTx) Companies() shared.CompanyRepository { return &companyRepo{store: t.store} }
func (t *memTx) Units() shared.UnitRepository        { return &unitRepo{store: t.store} }
func (t *memTx) Reads() shared.CommandReads          { return &commandReads{store: t.store} }
func (t *memTx) DB() sqlc.DBTX                       { return nil }

func (t *memTx) PasswordTokens() shared.PasswordTokenRepository {
	return &tokenRepo{store: t.store}
}

type userRepo struct{ store *Store }

func (r *userRepo) Create(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	return r.store.insertUser(u)
}

func (r *userRepo) Update(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	return r.store.updateUser(u)
}

type companyRepo struct{ store *Store }

func (r *companyRepo) Create(_ context.Context, _ sqlc.DBTX, c *company.Company) error {
	return r.store.insertCompany(c)
}

type unitRepo struct{ store *Store }

func (r *unitRepo) Create(_ context.Context, _ sqlc.DBTX, u *company.Unit) error {
	return r.store.insertUnit(u)
}

type tokenRepo struct{ store *Store }

func (r *tokenRepo) Create(_ context.Context, _ sqlc.DBTX, t *credential.Token) error {
	return r.store.insertToken(t)
}

func (r *tokenRepo) Consume(_ context.Context, _ sqlc.DBTX, hash []byte, now time.Time) (*credential.Token, error) {
	return r.store.consumeToken(hash, now)
}

func (r *tokenRepo) RevokeForUser(_ context.Context, _ sqlc.DBTX, userID uuid.UUID, now time.Time) error {
	r.store.revokeTokens(userID, now)
	return nil
}

type commandReads struct{ store *Store }

func (r *commandReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", errNoRows, infra.KindNotFound)
	}
	return &u, nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	r.store.mu.RLock()
	id, ok := r.store.emails[email]
	r.store.mu.RUnlock()
	if !ok {
		return nil, infra.WrapRepoErr("user not found", errNoRows, infra.KindNotFound)
	}
	return r.UserByID(ctx, id)
}

func (r *commandReads) EmailExists(_ context.Context, email string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.emails[email]
	return ok, nil
}

func (r *commandReads) CompanyByID(_ context.Context, id uuid.UUID) (*shared.CompanySnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.companies[id]
	if !ok {
		return nil, infra.WrapRepoErr("company not found", errNoRows, infra.KindNotFound)
	}
	return &shared.CompanySnapshot{ID: c.id, Name: c.name, DirectorIDs: slices.Clone(c.directors)}, nil
}

type UserReadStore struct{ store *Store }

func (r *UserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", errNoRows, infra.KindNotFound)
	}
	return viewOf(u), nil
}

func (r *UserReadStore) List(_ context.Context, role *user.Role) ([]*queries.UserView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	views := make([]*queries.UserView, 0, len(r.store.users))
	for _, u := range r.store.users {
		if role != nil && u.Role != *role {
			continue
		}
		views = append(views, viewOf(u))
	}
	slices.SortFunc(views, byCreated(
		func(v *queries.UserView) time.Time { return v.CreatedAt },
		func(v *queries.UserView) uuid.UUID { return v.ID },
	))
	return views, nil
}

type CompanyReadStore struct{ store *Store }

func (r *CompanyReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.CompanyView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.companies[id]
	if !ok {
		return nil, infra.WrapRepoErr("company not found", errNoRows, infra.KindNotFound)
	}
	return companyViewOf(c), nil
}

func (r *CompanyReadStore) List(_ context.Context) ([]*queries.CompanyView, error) {
	return r.list(func(companyRecord) bool { return true }), nil
}

func (r *CompanyReadStore) ListByDirector(_ context.Context, directorID uuid.UUID) ([]*queries.CompanyView, error) {
	return r.list(func(c companyRecord) bool { return slices.Contains(c.directors, directorID) }), nil
}

func (r *CompanyReadStore) list(keep func(companyRecord) bool) []*queries.CompanyView {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	views := make([]*queries.CompanyView, 0, len(r.store.companies))
	for _, c := range r.store.companies {
		if keep(c) {
			views = append(views, companyViewOf(c))
		}
	}
	slices.SortFunc(views, byCreated(
		func(v *queries.CompanyView) time.Time { return v.CreatedAt },
		func(v *queries.CompanyView) uuid.UUID { return v.ID },
	))
	return views
}

type UnitReadStore struct{ store *Store }

func (r *UnitReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.UnitView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.units[id]
	if !ok {
		return nil, infra.WrapRepoErr("unit not found", errNoRows, infra.KindNotFound)
	}
	return &u, nil
}

func (r *UnitReadStore) ListByCompany(_ context.Context, companyID uuid.UUID) ([]*queries.UnitView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	views := make([]*queries.UnitView, 0)
	for _, u := range r.store.units {
		if u.CompanyID == companyID {
			views = append(views, &u)
		}
	}
	slices.SortFunc(views, byCreated(
		func(v *queries.UnitView) time.Time { return v.CreatedAt },
		func(v *queries.UnitView) uuid.UUID { return v.ID },
	))
	return views, nil
}

var (
	_ shared.UnitOfWork        = (*UoW)(nil)
	_ queries.UserReadStore    = (*UserReadStore)(nil)
	_ queries.CompanyReadStore = (*CompanyReadStore)(nil)
	_ queries.UnitReadStore    = (*UnitReadStore)(nil)
)
