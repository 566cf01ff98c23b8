package converter

import (
	"laundry-backoffice/internal/domain/user"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"
	"laundry-backoffice/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:               u.ID(),
		Name:             u.Name().Value(),
		Email:            u.Email().Value(),
		PasswordHash:     u.PasswordHash(),
		Role:             u.Role().Code(),
		Online:           u.Online(),
		EmailVerified:    u.EmailVerified(),
		TwoFactorEnabled: u.TwoFactorEnabled(),
		TwoFactorSecret:  pgconv.StringPtrToPgtype(u.TwoFactorSecret()),
		UnitID:           pgconv.UUIDPtrToPgtype(u.UnitID()),
		LastLoginAt:      pgconv.TimePtrToPgtype(u.LastLoginAt()),
		CreatedAt:        pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserToUpdateParams(u *user.User) sqlc.UpdateUserParams {
	return sqlc.UpdateUserParams{
		ID:               u.ID(),
		Name:             u.Name().Value(),
		Email:            u.Email().Value(),
		PasswordHash:     u.PasswordHash(),
		Role:             u.Role().Code(),
		Online:           u.Online(),
		EmailVerified:    u.EmailVerified(),
		TwoFactorEnabled: u.TwoFactorEnabled(),
		TwoFactorSecret:  pgconv.StringPtrToPgtype(u.TwoFactorSecret()),
		UnitID:           pgconv.UUIDPtrToPgtype(u.UnitID()),
		LastLoginAt:      pgconv.TimePtrToPgtype(u.LastLoginAt()),
		UpdatedAt:        pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}
