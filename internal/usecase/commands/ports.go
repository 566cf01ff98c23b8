package commands

import (
	"context"
	"time"

	"laundry-backoffice/internal/domain/credential"
	"laundry-backoffice/internal/domain/user"

	"github.com/google/uuid"
)

type PasswordHasher interface {
	Hash(raw string) (string, error)
	Verify(raw, hashed string) bool
}

type TokenIssuer interface {
	GenerateToken(u *user.User) (string, error)
}

// PasswordLink carries the opaque token to the user; it is the only place the
// raw value exists after issue.
type PasswordLink struct {
	UserID    uuid.UUID
	Name      string
	Email     string
	Purpose   credential.Purpose
	Token     string
	ExpiresAt time.Time
}

type PasswordLinkSender interface {
	Send(ctx context.Context, link PasswordLink) error
}
