//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/pkg/clock"
	"laundry-backoffice/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-key-for-unit-tests-only"

func newUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	name, err := user.NewName("Ada")
	require.NoError(t, err)
	email, err := user.NewEmail("ada@example.com")
	require.NoError(t, err)
	return user.NewUser(name, email, "hash", role, time.Now())
}

func newService(t *testing.T, clk clock.Clock) *jwt.Service {
	t.Helper()
	svc, err := jwt.NewService(secret, clk)
	require.NoError(t, err)
	return svc
}

func TestNewService(t *testing.T) {
	_, err := jwt.NewService("", clock.NewRealClock())
	assert.ErrorIs(t, err, jwt.ErrMissingSecret)
}

func TestGenerateAndValidate(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	svc := newService(t, clk)

	for _, role := range []user.Role{user.RoleAdmin, user.RoleDirector, user.RoleEmployee} {
		t.Run(role.String(), func(t *testing.T) {
			u := newUser(t, role)

			token, err := svc.GenerateToken(u)
			require.NoError(t, err)

			claims, err := svc.ValidateToken(token)
			require.NoError(t, err)

			id, err := claims.UserID()
			require.NoError(t, err)
			assert.Equal(t, u.ID(), id)
			assert.Equal(t, role, claims.Role)
			assert.Equal(t, []string{role.String()}, claims.Groups)
			assert.Equal(t, "Ada", claims.Name)
			assert.Equal(t, "ada@example.com", claims.Email)
			assert.Equal(t, jwt.Issuer, claims.Issuer)
			assert.Equal(t, now.Add(jwt.TokenDuration).Unix(), claims.ExpiresAt.Unix())
		})
	}
}

func TestGenerateToken_UniquePerCall(t *testing.T) {
	svc := newService(t, clock.NewMockClock(time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)))
	u := newUser(t, user.RoleEmployee)

	first, err := svc.GenerateToken(u)
	require.NoError(t, err)
	second, err := svc.GenerateToken(u)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "同じ時刻でもトークンは異なる")
}

func TestValidateToken_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	svc := newService(t, clk)

	token, err := svc.GenerateToken(newUser(t, user.RoleEmployee))
	require.NoError(t, err)

	clk.Add(59 * time.Minute)
	_, err = svc.ValidateToken(token)
	require.NoError(t, err)

	clk.Add(2 * time.Minute)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_Rejects(t *testing.T) {
	now := time.Now()
	svc := newService(t, clock.NewMockClock(now))

	sign := func(t *testing.T, key string, method gojwt.SigningMethod, claims jwt.Claims) string {
		t.Helper()
		s, err := gojwt.NewWithClaims(method, claims).SignedString([]byte(key))
		require.NoError(t, err)
		return s
	}
	base := func() jwt.Claims {
		return jwt.Claims{
			Name:   "Ada",
			Email:  "ada@example.com",
			Role:   user.RoleDirector,
			Groups: []string{"DIRECTOR"},
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    jwt.Issuer,
				Subject:   uuid.NewString(),
				IssuedAt:  gojwt.NewNumericDate(now),
				ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
	}

	t.Run("正常な署名は通る", func(t *testing.T) {
		_, err := svc.ValidateToken(sign(t, secret, gojwt.SigningMethodHS256, base()))
		require.NoError(t, err)
	})

	cases := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"空文字", func(t *testing.T) string { return "" }},
		{"不正な形式", func(t *testing.T) string { return "not.a.jwt" }},
		{"別の秘密鍵", func(t *testing.T) string {
			return sign(t, "other-secret", gojwt.SigningMethodHS256, base())
		}},
		{"別のアルゴリズム", func(t *testing.T) string {
			return sign(t, secret, gojwt.SigningMethodHS512, base())
		}},
		{"発行者が異なる", func(t *testing.T) string {
			c := base()
			c.Issuer = "someone-else"
			return sign(t, secret, gojwt.SigningMethodHS256, c)
		}},
		{"有効期限なし", func(t *testing.T) string {
			c := base()
			c.ExpiresAt = nil
			return sign(t, secret, gojwt.SigningMethodHS256, c)
		}},
		{"groupsとroleの不一致", func(t *testing.T) string {
			c := base()
			c.Groups = []string{"ADMIN"}
			return sign(t, secret, gojwt.SigningMethodHS256, c)
		}},
		{"groupsなし", func(t *testing.T) string {
			c := base()
			c.Groups = nil
			return sign(t, secret, gojwt.SigningMethodHS256, c)
		}},
		{"未知のroleコード", func(t *testing.T) string {
			c := base()
			c.Role = user.Role(9)
			c.Groups = []string{"UNKNOWN"}
			return sign(t, secret, gojwt.SigningMethodHS256, c)
		}},
		{"subjectがUUIDでない", func(t *testing.T) string {
			c := base()
			c.Subject = "42"
			return sign(t, secret, gojwt.SigningMethodHS256, c)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tc.token(t))
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}
}
