package shared

import (
	"context"
	"time"

	"laundry-backoffice/internal/domain/company"
	"laundry-backoffice/internal/domain/credential"
	"laundry-backoffice/internal/domain/user"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Companies() CompanyRepository
	Units() UnitRepository
	PasswordTokens() PasswordTokenRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CompanyByID(ctx context.Context, id uuid.UUID) (*CompanySnapshot, error)
}

// Write-side snapshots keep commands independent of query view types.
type UserSnapshot struct {
	ID               uuid.UUID
	Name             string
	Email            string
	PasswordHash     string
	Role             user.Role
	Online           bool
	EmailVerified    bool
	TwoFactorEnabled bool
	TwoFactorSecret  *string
	UnitID           *uuid.UUID
	LastLoginAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (s *UserSnapshot) ToDomain() *user.User {
	return user.Reconstruct(user.ReconstructParams{
		ID:               s.ID,
		Name:             s.Name,
		Email:            s.Email,
		PasswordHash:     s.PasswordHash,
		Role:             s.Role,
		Online:           s.Online,
		EmailVerified:    s.EmailVerified,
		TwoFactorEnabled: s.TwoFactorEnabled,
		TwoFactorSecret:  s.TwoFactorSecret,
		UnitID:           s.UnitID,
		LastLoginAt:      s.LastLoginAt,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	})
}

type CompanySnapshot struct {
	ID          uuid.UUID
	Name        string
	DirectorIDs []uuid.UUID
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}

type CompanyRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *company.Company) error
}

type UnitRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *company.Unit) error
}

type PasswordTokenRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *credential.Token) error
	// Consume redeems the token with the given digest; unknown, used and
	// expired tokens all fail with a not-found repository error.
	Consume(ctx context.Context, tx sqlc.DBTX, hash []byte, now time.Time) (*credential.Token, error)
	RevokeForUser(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, now time.Time) error
}
