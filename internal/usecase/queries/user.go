package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

import (
	"context"

	"laundry-backoffice/internal/domain/authz"
	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/infra"
	"laundry-backoffice/internal/pkg/errs"
	"laundry-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrForbidden    = errs.New("forbidden")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, actor shared.Actor) (*UserView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	// List returns all users when role is nil.
	List(ctx context.Context, actor shared.Actor, role *user.Role) ([]*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context, role *user.Role) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, actor shared.Actor) (*UserView, error) {
	return q.GetByID(ctx, actor.ID)
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (q *userQueriesImpl) List(ctx context.Context, actor shared.Actor, role *user.Role) ([]*UserView, error) {
	if !authz.CanListUsers(actor.Role) {
		return nil, ErrForbidden
	}
	return q.readStore.List(ctx, role)
}
