//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/infra"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserWriteQueries) UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

// sqlc.DBTX implementation for MockUserWriteQueries
func (m *MockUserWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	name, err := user.NewName("Maria")
	require.NoError(t, err)
	email, err := user.NewEmail("maria@example.com")
	require.NoError(t, err)
	return user.NewUser(name, email, "$2a$12$hash", user.RoleDirector, time.Now())
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "duplicate email", mockError: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newTestUser(t)
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
				return p.ID == u.ID() &&
					p.Email == "maria@example.com" &&
					p.Role == int16(2) &&
					p.PasswordHash == "$2a$12$hash" &&
					!p.UnitID.Valid &&
					!p.LastLoginAt.Valid
			})).Return(tt.mockError)

			repo := NewUserRepository(mockQueries)
			err := repo.Create(context.Background(), mockQueries, u)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserRepository_Update(t *testing.T) {
	tests := []struct {
		name      string
		affected  int64
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "missing row", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newTestUser(t)
			loginAt := time.Now().Add(time.Minute)
			u.RecordLogin(loginAt)

			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateUserParams) bool {
				return p.ID == u.ID() && p.LastLoginAt.Valid && p.LastLoginAt.Time.Equal(loginAt) && p.UpdatedAt.Time.Equal(loginAt)
			})).Return(tt.affected, tt.mockError)

			repo := NewUserRepository(mockQueries)
			err := repo.Update(context.Background(), mockQueries, u)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
