package queries

import (
	"slices"
	"time"

	"laundry-backoffice/internal/domain/user"

	"github.com/google/uuid"
)

// UserView never carries the password hash.
type UserView struct {
	ID               uuid.UUID
	Name             string
	Email            string
	Role             user.Role
	Online           bool
	EmailVerified    bool
	TwoFactorEnabled bool
	UnitID           *uuid.UUID
	LastLoginAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CompanyView struct {
	ID          uuid.UUID
	Name        string
	CreatedAt   time.Time
	DirectorIDs []uuid.UUID
}

func (c *CompanyView) HasDirector(id uuid.UUID) bool {
	return slices.Contains(c.DirectorIDs, id)
}

type UnitView struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	Address   string
	CreatedAt time.Time
}
