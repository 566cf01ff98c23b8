//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/pkg/clock"
	"laundry-backoffice/internal/pkg/config"
	"laundry-backoffice/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken signs a token for a user that need not exist in any store.
func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, clock.NewRealClock(), userID, role)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	issuedAt := clock.NewMockClock(time.Now().Add(-2 * jwt.TokenDuration))
	return h.sign(t, issuedAt, userID, role)
}

func (h *JWTHelper) sign(t *testing.T, clk clock.Clock, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service, err := jwt.NewService(h.cfg.Secret, clk)
	require.NoError(t, err)

	u := user.Reconstruct(user.ReconstructParams{
		ID:    userID,
		Name:  "Token Holder",
		Email: "holder@example.com",
		Role:  role,
	})
	token, err := service.GenerateToken(u)
	require.NoError(t, err)
	return token
}
