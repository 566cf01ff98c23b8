//go:build e2e

package auth_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"laundry-backoffice/internal/domain/credential"
	"laundry-backoffice/internal/domain/user"
	resdto "laundry-backoffice/internal/handler/dto/response"
	"laundry-backoffice/tests/common/authtest"
	"laundry-backoffice/tests/common/builder"
	"laundry-backoffice/tests/common/dbtest"
	"laundry-backoffice/tests/common/httptest"
	"laundry-backoffice/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	resetRequestURL = "/auth/reset/request"
	setPasswordURL  = "/auth/password/set"
)

type passwordSuite struct {
	e2e.SharedSuite
	employeeID uuid.UUID
}

func TestPasswordSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(passwordSuite))
}

func (s *passwordSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, s.Config.Auth.Pepper, "director@example.com", user.RoleDirector)
	s.employeeID = dbtest.CreateTestUser(s.T(), s.DB, s.Config.Auth.Pepper, "employee@example.com", user.RoleEmployee)
}

func (s *passwordSuite) countTokens(t *testing.T, userID uuid.UUID, unusedOnly bool) int {
	t.Helper()
	q := "SELECT count(*) FROM password_tokens WHERE user_id = $1"
	if unusedOnly {
		q += " AND used_at IS NULL"
	}
	var n int
	require.NoError(t, s.DB.QueryRow(t.Context(), q, userID).Scan(&n))
	return n
}

func (s *passwordSuite) TestRequestReset() {
	s.Run("登録済みメールはトークンを保存して202", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, resetRequestURL, map[string]string{"email": "employee@example.com"}, "")
		var res resdto.LinkSentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusAccepted, &res)
		require.Equal(t, resdto.StatusLinkSent, res.Status)

		var purpose string
		var ttlSeconds int64
		err := s.DB.QueryRow(t.Context(),
			"SELECT purpose, EXTRACT(EPOCH FROM expires_at - created_at)::bigint FROM password_tokens WHERE user_id = $1",
			s.employeeID).Scan(&purpose, &ttlSeconds)
		require.NoError(t, err)
		require.Equal(t, "RESET", purpose)
		require.Equal(t, 2*time.Hour, time.Duration(ttlSeconds)*time.Second)
	})

	s.Run("未登録メールも202で何も保存しない", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, resetRequestURL, map[string]string{"email": "ghost@example.com"}, "")
		require.Equal(t, http.StatusAccepted, w.Code)

		var n int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM password_tokens").Scan(&n))
		require.Zero(t, n)
	})
}

func (s *passwordSuite) TestSetPassword() {
	tests := []struct {
		name           string
		purpose        credential.Purpose
		age            time.Duration
		expectedStatus int
		description    string
	}{
		{
			name:           "リセットリンク",
			purpose:        credential.PurposeReset,
			expectedStatus: http.StatusOK,
			description:    "有効なリセットリンクでパスワードを設定できること",
		},
		{
			name:           "期限切れのリセットリンク",
			purpose:        credential.PurposeReset,
			age:            3 * time.Hour,
			expectedStatus: http.StatusBadRequest,
			description:    "2時間を過ぎたリセットリンクは使えないこと",
		},
		{
			name:           "期限内の招待リンク",
			purpose:        credential.PurposeInvite,
			age:            20 * time.Hour,
			expectedStatus: http.StatusOK,
			description:    "招待リンクは24時間以内なら使えること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			raw := dbtest.CreatePasswordToken(t, s.DB, s.employeeID, tt.purpose, time.Now().Add(-tt.age))
			body := map[string]string{"token": raw, "password": "fresh-secret"}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, setPasswordURL, body, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid or expired password link")
				authtest.LoginUser(t, s.Router, "employee@example.com", builder.DefaultPassword)
				return
			}

			var res resdto.SetPasswordResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.Equal(t, s.employeeID, res.UserID)

			authtest.LoginUser(t, s.Router, "employee@example.com", "fresh-secret")

			var verified bool
			require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT email_verified FROM users WHERE id = $1", s.employeeID).Scan(&verified))
			require.True(t, verified, "email_verifiedが更新されていない")

			w = httptest.PerformRequest(t, s.Router, http.MethodPost, setPasswordURL, body, "")
			require.Equal(t, http.StatusBadRequest, w.Code, "同じリンクは二度使えないこと")
		})
	}
}

func (s *passwordSuite) TestSetPassword_RevokesOtherLinks() {
	s.Run("設定後は残りのリンクが失効", func() {
		t := s.T()

		first := dbtest.CreatePasswordToken(t, s.DB, s.employeeID, credential.PurposeInvite, time.Now())
		second := dbtest.CreatePasswordToken(t, s.DB, s.employeeID, credential.PurposeReset, time.Now())
		require.Equal(t, 2, s.countTokens(t, s.employeeID, true))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, setPasswordURL, map[string]string{"token": second, "password": "one"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Zero(t, s.countTokens(t, s.employeeID, true))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, setPasswordURL, map[string]string{"token": first, "password": "two"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid or expired password link")
	})
}

func (s *passwordSuite) TestSetPassword_Concurrent() {
	s.Run("同じリンクの同時使用は1件のみ成功", func() {
		t := s.T()
		const n = 6

		raw := dbtest.CreatePasswordToken(t, s.DB, s.employeeID, credential.PurposeReset, time.Now())

		var wg sync.WaitGroup
		codes := make([]int, n)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				body := map[string]string{"token": raw, "password": "racer"}
				codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, setPasswordURL, body, "").Code
			}()
		}
		wg.Wait()

		ok, rejected := 0, 0
		for _, c := range codes {
			switch c {
			case http.StatusOK:
				ok++
			case http.StatusBadRequest:
				rejected++
			}
		}
		require.Equal(t, 1, ok)
		require.Equal(t, n-1, rejected)
	})
}

func (s *passwordSuite) TestInvite() {
	s.Run("DirectorがEmployeeを招待", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "director@example.com", builder.DefaultPassword).Token
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/users/"+s.employeeID.String()+"/invite", nil, token)
		require.Equal(t, http.StatusAccepted, w.Code)

		var purpose string
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT purpose FROM password_tokens WHERE user_id = $1", s.employeeID).Scan(&purpose))
		require.Equal(t, "INVITE", purpose)
	})

	s.Run("EmployeeはDirectorを招待できない", func() {
		t := s.T()

		var directorID uuid.UUID
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'director@example.com'").Scan(&directorID))

		token := authtest.LoginUser(t, s.Router, "employee@example.com", builder.DefaultPassword).Token
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/users/"+directorID.String()+"/invite", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
		require.Zero(t, s.countTokens(t, directorID, false))
	})
}
