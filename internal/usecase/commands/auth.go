package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"
	"sync"

	reqdto "laundry-backoffice/internal/handler/dto/request"
	"laundry-backoffice/internal/infra"
	"laundry-backoffice/internal/pkg/clock"
	"laundry-backoffice/internal/pkg/errs"
	"laundry-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type AuthResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	RegisterAdmin(ctx context.Context, req reqdto.RegisterAdminRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow     shared.UnitOfWork
	hasher  PasswordHasher
	tokens  TokenIssuer
	clock   clock.Clock
	creator *userCreator
	// dummyHash is verified against when the email is unknown, so both
	// credential failures cost one hash comparison.
	dummyHash func() string
}

func NewAuthCommands(uow shared.UnitOfWork, hasher PasswordHasher, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:     uow,
		hasher:  hasher,
		tokens:  tokens,
		clock:   clk,
		creator: &userCreator{uow: uow, hasher: hasher, clock: clk},
		dummyHash: sync.OnceValue(func() string {
			h, err := hasher.Hash(uuid.NewString())
			if err != nil {
				slog.Error("failed to prepare dummy password hash", "error", err.Error())
				return ""
			}
			return h
		}),
	}
}

func (a *authCommandsImpl) RegisterAdmin(ctx context.Context, req reqdto.RegisterAdminRequest) (*AuthResult, error) {
	reg, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	u, err := a.creator.create(ctx, reg)
	if err != nil {
		return nil, err
	}

	token, err := a.tokens.GenerateToken(u)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.Info("user registered", "user_id", u.ID(), "role", u.Role().String())

	return &AuthResult{UserID: u.ID(), Token: token}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	snapshot, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			a.hasher.Verify(credentials.Password().Value(), a.dummyHash())
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.hasher.Verify(credentials.Password().Value(), snapshot.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	u := snapshot.ToDomain()
	u.RecordLogin(a.clock.Now())

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Update(ctx, tx.DB(), u)
	})
	if err != nil {
		// Login already succeeded; only the last-login bookkeeping is lost
		slog.Warn("failed to record last login", "user_id", u.ID(), "error", err.Error())
	}

	token, err := a.tokens.GenerateToken(u)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{UserID: u.ID(), Token: token}, nil
}
