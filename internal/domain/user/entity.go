package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id               uuid.UUID
	name             Name
	email            Email
	passwordHash     string
	role             Role
	online           bool
	emailVerified    bool
	twoFactorEnabled bool
	twoFactorSecret  *string
	unitID           *uuid.UUID
	lastLoginAt      *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func NewUser(name Name, email Email, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}
}

type ReconstructParams struct {
	ID               uuid.UUID
	Name             string
	Email            string
	PasswordHash     string
	Role             Role
	Online           bool
	EmailVerified    bool
	TwoFactorEnabled bool
	TwoFactorSecret  *string
	UnitID           *uuid.UUID
	LastLoginAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Reconstruct rebuilds a persisted user without re-validating stored values.
func Reconstruct(p ReconstructParams) *User {
	return &User{
		id:               p.ID,
		name:             Name{value: p.Name},
		email:            Email{value: p.Email},
		passwordHash:     p.PasswordHash,
		role:             p.Role,
		online:           p.Online,
		emailVerified:    p.EmailVerified,
		twoFactorEnabled: p.TwoFactorEnabled,
		twoFactorSecret:  p.TwoFactorSecret,
		unitID:           p.UnitID,
		lastLoginAt:      p.LastLoginAt,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}
}

func (u *User) RecordLogin(now time.Time) {
	u.lastLoginAt = &now
	u.updatedAt = now
}

// SetPassword replaces the password hash. Setting a password through an emailed
// link also proves ownership of the address.
func (u *User) SetPassword(passwordHash string, now time.Time) {
	u.passwordHash = passwordHash
	u.emailVerified = true
	u.updatedAt = now
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Name() Name               { return u.name }
func (u *User) Email() Email             { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Role() Role               { return u.role }
func (u *User) Online() bool             { return u.online }
func (u *User) EmailVerified() bool      { return u.emailVerified }
func (u *User) TwoFactorEnabled() bool   { return u.twoFactorEnabled }
func (u *User) TwoFactorSecret() *string { return u.twoFactorSecret }
func (u *User) UnitID() *uuid.UUID       { return u.unitID }
func (u *User) LastLoginAt() *time.Time  { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }
