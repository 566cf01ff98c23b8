package commands

import (
	"context"
	"errors"

	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/infra"
	"laundry-backoffice/internal/pkg/clock"
	"laundry-backoffice/internal/pkg/errs"
	"laundry-backoffice/internal/pkg/password"
	"laundry-backoffice/internal/usecase/shared"
)

// userCreator is shared by self-serve registration and user creation by staff.
type userCreator struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
	clock  clock.Clock
}

// create treats the exists check as a fast path only; the users_email_key
// constraint decides races between concurrent registrations.
func (c *userCreator) create(ctx context.Context, reg user.Registration) (*user.User, error) {
	exists, err := c.uow.CommandReads().EmailExists(ctx, reg.Email.Value())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := hashPassword(c.hasher, reg.Password.Value())
	if err != nil {
		return nil, err
	}

	u := user.NewUser(reg.Name, reg.Email, hash, reg.Role, c.clock.Now())

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailTaken)
		}
		return nil, err
	}

	return u, nil
}

// hashPassword reports inputs the hasher refuses as validation errors.
func hashPassword(h PasswordHasher, raw string) (string, error) {
	hash, err := h.Hash(raw)
	if err != nil {
		if errors.Is(err, password.ErrPasswordTooLong) || errors.Is(err, password.ErrInvalidPassword) {
			return "", errs.Mark(err, ErrValidation)
		}
		return "", err
	}
	return hash, nil
}
