package converter

import (
	"laundry-backoffice/internal/domain/credential"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"
	"laundry-backoffice/internal/pkg/pgconv"
)

func PasswordTokenToCreateParams(t *credential.Token) sqlc.CreatePasswordTokenParams {
	return sqlc.CreatePasswordTokenParams{
		ID:        t.ID(),
		UserID:    t.UserID(),
		Purpose:   string(t.Purpose()),
		TokenHash: t.Hash(),
		CreatedAt: pgconv.TimeToPgtype(t.CreatedAt()),
		ExpiresAt: pgconv.TimeToPgtype(t.ExpiresAt()),
	}
}

func PasswordTokenFromRow(row sqlc.PasswordTokens) (*credential.Token, error) {
	purpose, err := credential.ParsePurpose(row.Purpose)
	if err != nil {
		return nil, err
	}
	return credential.Reconstruct(credential.ReconstructParams{
		ID:        row.ID,
		UserID:    row.UserID,
		Purpose:   purpose,
		Hash:      row.TokenHash,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		ExpiresAt: pgconv.TimeFromPgtype(row.ExpiresAt),
		UsedAt:    pgconv.TimePtrFromPgtype(row.UsedAt),
	}), nil
}
