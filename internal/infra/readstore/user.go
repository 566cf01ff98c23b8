package readstore

import (
	"context"

	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/infra"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"
	"laundry-backoffice/internal/pkg/pgconv"
	"laundry-backoffice/internal/usecase/queries"
	"laundry-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	ExistsUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (bool, error)
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error)
	ListUsersByRole(ctx context.Context, db sqlc.DBTX, role int16) ([]sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toUserView(row), nil
}

// SnapshotByID returns the full write-side record, password hash included.
func (r *UserReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserSnapshot(row), nil
}

func (r *UserReadStore) SnapshotByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return toUserSnapshot(row), nil
}

func (r *UserReadStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	exists, err := r.queries.ExistsUserByEmail(ctx, r.db, email)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check email", err)
	}
	return exists, nil
}

// List returns every user, or only those with the given role.
func (r *UserReadStore) List(ctx context.Context, role *user.Role) ([]*queries.UserView, error) {
	var (
		rows []sqlc.Users
		err  error
	)
	if role == nil {
		rows, err = r.queries.ListUsers(ctx, r.db)
	} else {
		rows, err = r.queries.ListUsersByRole(ctx, r.db, role.Code())
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUserView(row))
	}
	return views, nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:               row.ID,
		Name:             row.Name,
		Email:            row.Email,
		Role:             user.Role(row.Role),
		Online:           row.Online,
		EmailVerified:    row.EmailVerified,
		TwoFactorEnabled: row.TwoFactorEnabled,
		UnitID:           pgconv.UUIDPtrFromPgtype(row.UnitID),
		LastLoginAt:      pgconv.TimePtrFromPgtype(row.LastLoginAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toUserSnapshot(row sqlc.Users) *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:               row.ID,
		Name:             row.Name,
		Email:            row.Email,
		PasswordHash:     row.PasswordHash,
		Role:             user.Role(row.Role),
		Online:           row.Online,
		EmailVerified:    row.EmailVerified,
		TwoFactorEnabled: row.TwoFactorEnabled,
		TwoFactorSecret:  pgconv.StringPtrFromPgtype(row.TwoFactorSecret),
		UnitID:           pgconv.UUIDPtrFromPgtype(row.UnitID),
		LastLoginAt:      pgconv.TimePtrFromPgtype(row.LastLoginAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
