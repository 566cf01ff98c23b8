package auth

import (
	"strings"

	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrMissingCredentials = errs.New("email and password are required")
)

// Credentials are not format-checked: an unknown or malformed email is
// indistinguishable from a wrong password.
type Credentials struct {
	email    string
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email := strings.TrimSpace(emailStr)
	if email == "" {
		return Credentials{}, ErrMissingCredentials
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, ErrMissingCredentials
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() string {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}
