package repository

import (
	"context"

	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/infra"
	"laundry-backoffice/internal/infra/repository/converter"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

// Create reports a taken email as KindDuplicateKey via the users_email_key constraint.
func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	affected, err := r.queries.UpdateUser(ctx, tx, converter.UserToUpdateParams(u))
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
