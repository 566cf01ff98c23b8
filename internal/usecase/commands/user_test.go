//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"laundry-backoffice/internal/domain/user"
	reqdto "laundry-backoffice/internal/handler/dto/request"
	"laundry-backoffice/internal/pkg/errs"
	"laundry-backoffice/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCommands_Create(t *testing.T) {
	ctx := context.Background()

	newReq := func(email string, role user.Role) reqdto.CreateUserRequest {
		return reqdto.CreateUserRequest{Name: "New Person", Email: email, Password: "pw", Role: role}
	}

	t.Run("ロール付与の可否", func(t *testing.T) {
		tests := []struct {
			name      string
			caller    user.Role
			requested user.Role
			allowed   bool
		}{
			{"AdminはAdminを作成できる", user.RoleAdmin, user.RoleAdmin, true},
			{"AdminはDirectorを作成できる", user.RoleAdmin, user.RoleDirector, true},
			{"AdminはEmployeeを作成できる", user.RoleAdmin, user.RoleEmployee, true},
			{"DirectorはEmployeeを作成できる", user.RoleDirector, user.RoleEmployee, true},
			{"DirectorはDirectorを作成できない", user.RoleDirector, user.RoleDirector, false},
			{"DirectorはAdminを作成できない", user.RoleDirector, user.RoleAdmin, false},
			{"EmployeeはEmployeeを作成できない", user.RoleEmployee, user.RoleEmployee, false},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				cmds := commands.NewUserCommands(f.uow, f.hasher, f.clock)
				caller := f.seedUser(t, "Caller", "caller@example.com", tc.caller)

				id, err := cmds.Create(ctx, actorOf(caller), newReq("new@example.com", tc.requested))
				if !tc.allowed {
					assert.ErrorIs(t, err, commands.ErrForbidden)
					assert.Equal(t, 0, f.store.UserCount("new@example.com"))
					return
				}
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, id)

				snap, err := f.uow.CommandReads().UserByID(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, tc.requested, snap.Role)
				assert.Equal(t, "New Person", snap.Name)
			})
		}
	})

	t.Run("入力検証は権限チェックより先", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewUserCommands(f.uow, f.hasher, f.clock)
		employee := f.seedUser(t, "Emp", "emp@example.com", user.RoleEmployee)

		_, err := cmds.Create(ctx, actorOf(employee), newReq("broken", user.RoleEmployee))
		assert.True(t, errs.Is(err, commands.ErrValidation), "got %v", err)
	})

	t.Run("権限チェックは重複チェックより先", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewUserCommands(f.uow, f.hasher, f.clock)
		director := f.seedUser(t, "Dir", "dir@example.com", user.RoleDirector)

		_, err := cmds.Create(ctx, actorOf(director), newReq("dir@example.com", user.RoleAdmin))
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("重複メールはConflict", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewUserCommands(f.uow, f.hasher, f.clock)
		admin := f.seedUser(t, "Admin", "admin@example.com", user.RoleAdmin)

		_, err := cmds.Create(ctx, actorOf(admin), newReq("admin@example.com", user.RoleEmployee))
		assert.True(t, errs.Is(err, commands.ErrEmailTaken), "got %v", err)
	})

	t.Run("長すぎるパスワードはValidation", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewUserCommands(f.uow, f.hasher, f.clock)
		admin := f.seedUser(t, "Admin", "admin@example.com", user.RoleAdmin)

		req := newReq("long@example.com", user.RoleEmployee)
		req.Password = strings.Repeat("x", 100)
		_, err := cmds.Create(ctx, actorOf(admin), req)
		assert.True(t, errs.Is(err, commands.ErrValidation), "got %v", err)
	})
}
