package user

import (
	"regexp"
	"strings"

	"laundry-backoffice/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.New("invalid email format")
	ErrInvalidRole     = errs.New("invalid role")
	ErrInvalidName     = errs.New("name is required")
	ErrInvalidPassword = errs.New("password is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is compared exactly as stored; only surrounding whitespace is removed.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// Password holds a raw password only until it is hashed.
type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if s == "" {
		return Password{}, ErrInvalidPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// String keeps raw passwords out of logs and fmt output.
func (p Password) String() string {
	return "********"
}

// Registration is a validated request to create a user.
type Registration struct {
	Name     Name
	Email    Email
	Password Password
	Role     Role
}

func NewRegistration(name, email, password string, role Role) (Registration, error) {
	n, err := NewName(name)
	if err != nil {
		return Registration{}, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return Registration{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return Registration{}, err
	}
	if !role.IsValid() {
		return Registration{}, ErrInvalidRole
	}
	return Registration{Name: n, Email: e, Password: p, Role: role}, nil
}
