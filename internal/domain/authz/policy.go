// Package authz holds the role rules gating company, unit and user operations.
// Every function is pure; "not found" is decided by the caller before these run.
package authz

import (
	"slices"

	"laundry-backoffice/internal/domain/user"

	"github.com/google/uuid"
)

func CanListAllCompanies(role user.Role) bool {
	return role == user.RoleAdmin
}

// CanListOwnCompanies admits Admins (who see every company) and Directors
// (who see the companies listing them).
func CanListOwnCompanies(role user.Role) bool {
	return role == user.RoleAdmin || role == user.RoleDirector
}

func CanCreateCompany(role user.Role) bool {
	return role == user.RoleAdmin
}

func CanCreateUnit(role user.Role, callerID uuid.UUID, directors []uuid.UUID) bool {
	switch role {
	case user.RoleAdmin:
		return true
	case user.RoleDirector:
		return slices.Contains(directors, callerID)
	default:
		return false
	}
}

func CanListUnits(role user.Role, callerID uuid.UUID, directors []uuid.UUID) bool {
	return CanCreateUnit(role, callerID, directors)
}

// CanViewCompany uses the same rule as unit access.
func CanViewCompany(role user.Role, callerID uuid.UUID, directors []uuid.UUID) bool {
	return CanCreateUnit(role, callerID, directors)
}

func CanCreateUser(callerRole, requestedRole user.Role) bool {
	if !requestedRole.IsValid() {
		return false
	}
	switch callerRole {
	case user.RoleAdmin:
		return true
	case user.RoleDirector:
		return requestedRole == user.RoleEmployee
	default:
		return false
	}
}

func CanListUsers(callerRole user.Role) bool {
	return callerRole.IsValid()
}

// CanInviteUser lets a caller send a set-password link to users it could have created.
func CanInviteUser(callerRole, targetRole user.Role) bool {
	return CanCreateUser(callerRole, targetRole)
}
