package repository

import (
	"context"
	"time"

	"laundry-backoffice/internal/domain/credential"
	"laundry-backoffice/internal/infra"
	"laundry-backoffice/internal/infra/repository/converter"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"
	"laundry-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PasswordTokenWriteQueries interface {
	CreatePasswordToken(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePasswordTokenParams) error
	ConsumePasswordToken(ctx context.Context, db sqlc.DBTX, arg sqlc.ConsumePasswordTokenParams) (sqlc.PasswordTokens, error)
	RevokeUserPasswordTokens(ctx context.Context, db sqlc.DBTX, arg sqlc.RevokeUserPasswordTokensParams) (int64, error)
}

type PasswordTokenRepository struct {
	queries PasswordTokenWriteQueries
}

func NewPasswordTokenRepository(queries PasswordTokenWriteQueries) *PasswordTokenRepository {
	return &PasswordTokenRepository{
		queries: queries,
	}
}

func (r *PasswordTokenRepository) Create(ctx context.Context, tx sqlc.DBTX, t *credential.Token) error {
	if err := r.queries.CreatePasswordToken(ctx, tx, converter.PasswordTokenToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create password token", err)
	}
	return nil
}

// Consume marks the token with the given digest used, in one statement, so
// concurrent redemptions of the same link cannot both succeed. A missing, used
// or expired token is reported as KindNotFound.
func (r *PasswordTokenRepository) Consume(ctx context.Context, tx sqlc.DBTX, hash []byte, now time.Time) (*credential.Token, error) {
	row, err := r.queries.ConsumePasswordToken(ctx, tx, sqlc.ConsumePasswordTokenParams{
		Now:       pgconv.TimeToPgtype(now),
		TokenHash: hash,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to consume password token", err)
	}

	t, err := converter.PasswordTokenFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert password token", err, infra.KindDBFailure)
	}
	return t, nil
}

// RevokeForUser retires every outstanding token of the user.
func (r *PasswordTokenRepository) RevokeForUser(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, now time.Time) error {
	if _, err := r.queries.RevokeUserPasswordTokens(ctx, tx, sqlc.RevokeUserPasswordTokensParams{
		UserID: userID,
		UsedAt: pgconv.TimeToPgtype(now),
	}); err != nil {
		return infra.WrapRepoErr("failed to revoke password tokens", err)
	}
	return nil
}
