//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/handler/middleware"
	"laundry-backoffice/internal/pkg/jwt"
	"laundry-backoffice/internal/usecase/shared"
	"laundry-backoffice/tests/common/httptest"
	usecasemock "laundry-backoffice/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, roles ...user.Role) (*gin.Engine, *usecasemock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	m := middleware.NewAuthMiddleware(validator)

	r := gin.New()
	chain := []gin.HandlerFunc{m.RequireAuth()}
	if len(roles) > 0 {
		chain = append(chain, m.RequireRole(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID.String()})
	})
	r.GET("/protected", chain...)
	return r, validator
}

func TestRequireAuth(t *testing.T) {
	actor := shared.Actor{ID: uuid.New(), Role: user.RoleEmployee}

	t.Run("正常系: Actorをコンテキストに載せる", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("good").Return(actor, nil).Times(1)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/protected", nil, "good")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, actor.ID.String(), body["id"])
	})

	t.Run("トークンなしは401", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/protected", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("Bearer以外のスキームは401", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		req := map[string]string{"Authorization": "Basic dXNlcjpwdw=="}
		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/protected", nil, req)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("Bearerスキームは大文字小文字を区別しない", func(t *testing.T) {
		for _, scheme := range []string{"bearer", "BEARER", "bEaReR"} {
			r, validator := newAuthRouter(t)
			validator.EXPECT().ValidateToken("good").Return(actor, nil).Times(1)

			req := map[string]string{"Authorization": scheme + " good"}
			rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/protected", nil, req)
			assert.Equal(t, http.StatusOK, rec.Code, "scheme %q", scheme)
		}
	})

	t.Run("スキームのみ・区切りなしは401", func(t *testing.T) {
		for _, header := range []string{"Bearer", "Bearer ", "Bearergood", "bear"} {
			r, _ := newAuthRouter(t)

			req := map[string]string{"Authorization": header}
			rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/protected", nil, req)
			httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
		}
	})

	t.Run("無効・期限切れは401", func(t *testing.T) {
		for _, e := range []error{jwt.ErrInvalidToken, jwt.ErrExpiredToken} {
			r, validator := newAuthRouter(t)
			validator.EXPECT().ValidateToken("bad").Return(shared.Actor{}, e).Times(1)

			rec := httptest.PerformRequest(t, r, http.MethodGet, "/protected", nil, "bad")
			httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
		}
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name   string
		role   user.Role
		status int
	}{
		{"Adminは通過", user.RoleAdmin, http.StatusOK},
		{"Directorは通過", user.RoleDirector, http.StatusOK},
		{"Employeeは403", user.RoleEmployee, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, validator := newAuthRouter(t, user.RoleAdmin, user.RoleDirector)
			validator.EXPECT().ValidateToken("tok").Return(shared.Actor{ID: uuid.New(), Role: tc.role}, nil).Times(1)

			rec := httptest.PerformRequest(t, r, http.MethodGet, "/protected", nil, "tok")
			if tc.status == http.StatusOK {
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}
			httptest.AssertErrorResponse(t, rec, tc.status, "Insufficient permissions")
		})
	}

	t.Run("RequireAuthなしは500", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		m := middleware.NewAuthMiddleware(usecasemock.NewMockTokenValidator(gomock.NewController(t)))
		r := gin.New()
		r.GET("/x", m.RequireRole(user.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/x", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
