package commands

//go:generate mockgen -source=password.go -destination=../../../tests/mock/commands/password.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"

	"laundry-backoffice/internal/domain/authz"
	"laundry-backoffice/internal/domain/credential"
	"laundry-backoffice/internal/domain/user"
	reqdto "laundry-backoffice/internal/handler/dto/request"
	"laundry-backoffice/internal/infra"
	"laundry-backoffice/internal/pkg/clock"
	"laundry-backoffice/internal/pkg/errs"
	"laundry-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

// PasswordCommands covers the emailed-link half of the credential lifecycle:
// invites for staff-created accounts, self-service resets, and redeeming either.
type PasswordCommands interface {
	Invite(ctx context.Context, actor shared.Actor, userID uuid.UUID) error
	RequestReset(ctx context.Context, req reqdto.PasswordResetRequest) error
	SetPassword(ctx context.Context, req reqdto.SetPasswordRequest) (uuid.UUID, error)
}

type passwordCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
	sender PasswordLinkSender
	clock  clock.Clock
}

func NewPasswordCommands(uow shared.UnitOfWork, hasher PasswordHasher, sender PasswordLinkSender, clk clock.Clock) PasswordCommands {
	return &passwordCommandsImpl{
		uow:    uow,
		hasher: hasher,
		sender: sender,
		clock:  clk,
	}
}

// Invite resolves the user before checking the caller's rights over it.
func (p *passwordCommandsImpl) Invite(ctx context.Context, actor shared.Actor, userID uuid.UUID) error {
	snap, err := p.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !authz.CanInviteUser(actor.Role, snap.Role) {
		return ErrForbidden
	}

	if err := p.issue(ctx, snap, credential.PurposeInvite); err != nil {
		return err
	}

	slog.Info("password invite sent", "user_id", snap.ID, "invited_by", actor.ID)
	return nil
}

// RequestReset succeeds for unknown emails too, so the endpoint does not
// reveal which addresses are registered.
func (p *passwordCommandsImpl) RequestReset(ctx context.Context, req reqdto.PasswordResetRequest) error {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	snap, err := p.uow.CommandReads().UserByEmail(ctx, email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("password reset requested for unknown email")
			return nil
		}
		return err
	}

	if err := p.issue(ctx, snap, credential.PurposeReset); err != nil {
		return err
	}

	slog.Info("password reset link sent", "user_id", snap.ID)
	return nil
}

func (p *passwordCommandsImpl) SetPassword(ctx context.Context, req reqdto.SetPasswordRequest) (uuid.UUID, error) {
	raw := strings.TrimSpace(req.Token)
	if raw == "" {
		return uuid.Nil, errs.Mark(credential.ErrTokenRequired, ErrValidation)
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	hash, err := hashPassword(p.hasher, pw.Value())
	if err != nil {
		return uuid.Nil, err
	}

	now := p.clock.Now()
	var userID uuid.UUID
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tok, err := tx.PasswordTokens().Consume(ctx, tx.DB(), credential.Digest(raw), now)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidPasswordToken
			}
			return err
		}

		snap, err := tx.Reads().UserByID(ctx, tok.UserID())
		if err != nil {
			return err
		}
		u := snap.ToDomain()
		u.SetPassword(hash, now)
		if err := tx.Users().Update(ctx, tx.DB(), u); err != nil {
			return err
		}

		// Older links for the same user stop working once a password is set
		if err := tx.PasswordTokens().RevokeForUser(ctx, tx.DB(), u.ID(), now); err != nil {
			return err
		}
		userID = u.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("password set from link", "user_id", userID)
	return userID, nil
}

// issue stores the token and hands the link to the sender in one transaction;
// a failed send leaves no usable token behind.
func (p *passwordCommandsImpl) issue(ctx context.Context, snap *shared.UserSnapshot, purpose credential.Purpose) error {
	tok, raw, err := credential.Issue(snap.ID, purpose, p.clock.Now())
	if err != nil {
		return err
	}

	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.PasswordTokens().Create(ctx, tx.DB(), tok); err != nil {
			return err
		}
		return p.sender.Send(ctx, PasswordLink{
			UserID:    snap.ID,
			Name:      snap.Name,
			Email:     snap.Email,
			Purpose:   purpose,
			Token:     raw,
			ExpiresAt: tok.ExpiresAt(),
		})
	})
}
