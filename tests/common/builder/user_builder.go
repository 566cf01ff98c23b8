//go:build unit || e2e

package builder

import (
	"time"

	"laundry-backoffice/internal/domain/user"
	reqdto "laundry-backoffice/internal/handler/dto/request"
	sqlc "laundry-backoffice/internal/infra/sqlc/generated"
	"laundry-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// DefaultPassword is the plain-text password behind every builder-made user.
const DefaultPassword = "password123"

type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Password     string
	PasswordHash string
	Role         user.Role
	UnitID       *uuid.UUID
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "test@example.com",
		Password:     DefaultPassword,
		PasswordHash: "hashed_password",
		Role:         user.RoleAdmin,
		CreatedAt:    time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() *user.User {
	return user.Reconstruct(user.ReconstructParams{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		UnitID:       u.UnitID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.CreatedAt,
	})
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	var unitID pgtype.UUID
	if u.UnitID != nil {
		unitID = pgtype.UUID{Bytes: *u.UnitID, Valid: true}
	}

	return sqlc.Users{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role.Code(),
		UnitID:       unitID,
		CreatedAt:    pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		UnitID:    u.UnitID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.CreatedAt,
	}
}

func (u *UserBuilder) BuildCreateDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role,
	}
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterAdminRequest {
	role := u.Role
	return reqdto.RegisterAdminRequest{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Role:     &role,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithUnitID(unitID *uuid.UUID) *UserBuilder {
	u.UnitID = unitID
	return u
}

func (u *UserBuilder) WithCreatedAt(t time.Time) *UserBuilder {
	u.CreatedAt = t
	return u
}
