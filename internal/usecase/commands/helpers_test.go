//go:build unit

package commands_test

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/pkg/clock"
	"laundry-backoffice/internal/pkg/jwt"
	"laundry-backoffice/internal/pkg/password"
	"laundry-backoffice/internal/usecase/shared"
	"laundry-backoffice/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "commands-test-secret"

var baseTime = time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)

// fakeHasher skips bcrypt's work factor; each hash is still unique.
type fakeHasher struct {
	n        atomic.Int64
	verified atomic.Int64
}

func (h *fakeHasher) Hash(raw string) (string, error) {
	h.n.Add(1)
	if raw == "" {
		return "", password.ErrInvalidPassword
	}
	if len(raw) > 72 {
		return "", password.ErrPasswordTooLong
	}
	return "fake$" + uuid.NewString() + "$" + raw, nil
}

func (h *fakeHasher) Verify(raw, hashed string) bool {
	h.verified.Add(1)
	return raw != "" && strings.HasPrefix(hashed, "fake$") && strings.HasSuffix(hashed, "$"+raw)
}

type fixture struct {
	store  *memstore.Store
	uow    shared.UnitOfWork
	hasher *fakeHasher
	clock  *clock.MockClock
	jwt    *jwt.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := clock.NewMockClock(baseTime)
	svc, err := jwt.NewService(testSecret, clk)
	require.NoError(t, err)

	store := memstore.New()
	return &fixture{
		store:  store,
		uow:    store.UnitOfWork(),
		hasher: &fakeHasher{},
		clock:  clk,
		jwt:    svc,
	}
}

// seedUser stores a user whose password is "password123".
func (f *fixture) seedUser(t *testing.T, name, email string, role user.Role) *user.User {
	t.Helper()
	reg, err := user.NewRegistration(name, email, "password123", role)
	require.NoError(t, err)
	hash, err := f.hasher.Hash(reg.Password.Value())
	require.NoError(t, err)

	u := user.NewUser(reg.Name, reg.Email, hash, reg.Role, f.clock.Now())
	f.store.SeedUser(u)
	return u
}

func actorOf(u *user.User) shared.Actor {
	return shared.Actor{ID: u.ID(), Role: u.Role(), Name: u.Name().Value(), Email: u.Email().Value()}
}
