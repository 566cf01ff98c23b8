//go:build unit

package authz_test

import (
	"testing"

	"laundry-backoffice/internal/domain/authz"
	"laundry-backoffice/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var roles = []user.Role{user.RoleAdmin, user.RoleDirector, user.RoleEmployee}

func TestCompanyListing(t *testing.T) {
	for _, r := range roles {
		assert.Equal(t, r == user.RoleAdmin, authz.CanListAllCompanies(r), r.String())
		assert.Equal(t, r != user.RoleEmployee, authz.CanListOwnCompanies(r), r.String())
		assert.Equal(t, r == user.RoleAdmin, authz.CanCreateCompany(r), r.String())
	}
}

func TestCanCreateUnit(t *testing.T) {
	caller := uuid.New()
	other := uuid.New()

	cases := []struct {
		name      string
		role      user.Role
		directors []uuid.UUID
		want      bool
	}{
		{"管理者は常に可", user.RoleAdmin, nil, true},
		{"担当ディレクターは可", user.RoleDirector, []uuid.UUID{other, caller}, true},
		{"担当外ディレクターは不可", user.RoleDirector, []uuid.UUID{other}, false},
		{"ディレクター不在の会社は不可", user.RoleDirector, nil, false},
		{"従業員は担当扱いでも不可", user.RoleEmployee, []uuid.UUID{caller}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, authz.CanCreateUnit(tc.role, caller, tc.directors))
			assert.Equal(t, tc.want, authz.CanListUnits(tc.role, caller, tc.directors))
			assert.Equal(t, tc.want, authz.CanViewCompany(tc.role, caller, tc.directors))
		})
	}
}

func TestCanCreateUser(t *testing.T) {
	cases := []struct {
		caller    user.Role
		requested user.Role
		want      bool
	}{
		{user.RoleAdmin, user.RoleAdmin, true},
		{user.RoleAdmin, user.RoleDirector, true},
		{user.RoleAdmin, user.RoleEmployee, true},
		{user.RoleDirector, user.RoleAdmin, false},
		{user.RoleDirector, user.RoleDirector, false},
		{user.RoleDirector, user.RoleEmployee, true},
		{user.RoleEmployee, user.RoleAdmin, false},
		{user.RoleEmployee, user.RoleDirector, false},
		{user.RoleEmployee, user.RoleEmployee, false},
		{user.RoleAdmin, user.Role(0), false},
	}
	for _, tc := range cases {
		t.Run(tc.caller.String()+"->"+tc.requested.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, authz.CanCreateUser(tc.caller, tc.requested))
		})
	}
}

func TestCanInviteUser(t *testing.T) {
	for _, caller := range roles {
		for _, target := range roles {
			assert.Equal(t, authz.CanCreateUser(caller, target), authz.CanInviteUser(caller, target),
				"%s->%s", caller, target)
		}
	}
	assert.True(t, authz.CanInviteUser(user.RoleDirector, user.RoleEmployee))
	assert.False(t, authz.CanInviteUser(user.RoleDirector, user.RoleDirector))
	assert.False(t, authz.CanInviteUser(user.RoleEmployee, user.RoleEmployee))
}

func TestCanListUsers(t *testing.T) {
	for _, r := range roles {
		assert.True(t, authz.CanListUsers(r))
	}
	assert.False(t, authz.CanListUsers(user.Role(7)))
}
