package commands

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user.go -package=commandsmock

import (
	"context"
	"log/slog"

	"laundry-backoffice/internal/domain/authz"
	reqdto "laundry-backoffice/internal/handler/dto/request"
	"laundry-backoffice/internal/pkg/clock"
	"laundry-backoffice/internal/pkg/errs"
	"laundry-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	Create(ctx context.Context, actor shared.Actor, req reqdto.CreateUserRequest) (uuid.UUID, error)
}

type userCommandsImpl struct {
	creator *userCreator
}

func NewUserCommands(uow shared.UnitOfWork, hasher PasswordHasher, clk clock.Clock) UserCommands {
	return &userCommandsImpl{
		creator: &userCreator{uow: uow, hasher: hasher, clock: clk},
	}
}

// Create checks input, then the caller's right to grant the requested role,
// then email availability.
func (c *userCommandsImpl) Create(ctx context.Context, actor shared.Actor, req reqdto.CreateUserRequest) (uuid.UUID, error) {
	reg, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	if !authz.CanCreateUser(actor.Role, reg.Role) {
		return uuid.Nil, ErrForbidden
	}

	u, err := c.creator.create(ctx, reg)
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("user created", "user_id", u.ID(), "role", u.Role().String(), "created_by", actor.ID)

	return u.ID(), nil
}
