//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/handler/dto/request"
	resdto "laundry-backoffice/internal/handler/dto/response"
	"laundry-backoffice/tests/common/builder"
	"laundry-backoffice/tests/common/dbtest"
	"laundry-backoffice/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) resdto.AuthResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token, "token missing from login response")

	return res
}

// CreateAndLogin inserts a user with builder.DefaultPassword and returns its token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, pepper, email string, role user.Role) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, pepper, email, role)
	return LoginUser(t, router, email, builder.DefaultPassword).Token
}
