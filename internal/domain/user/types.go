package user

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Role codes are persisted as smallint and sent to clients as integers.
//
//	1 = Admin, 2 = Director, 3 = Employee
type Role int16

const (
	RoleAdmin    Role = 1
	RoleDirector Role = 2
	RoleEmployee Role = 3
)

func (r Role) Code() int16 {
	return int16(r)
}

// String returns the scope name carried in the token "groups" claim.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleDirector:
		return "DIRECTOR"
	case RoleEmployee:
		return "EMPLOYEE"
	default:
		return "UNKNOWN"
	}
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDirector, RoleEmployee:
		return true
	default:
		return false
	}
}

// RoleFromCode never falls back to a default role: unknown codes are an error.
func RoleFromCode(code int) (Role, error) {
	role := Role(code)
	if !role.IsValid() {
		return 0, ErrInvalidRole
	}
	return role, nil
}

// ParseRole accepts the decimal code used in query strings ("1", "2", "3").
func ParseRole(s string) (Role, error) {
	code, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidRole
	}
	return RoleFromCode(code)
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(int16(r))
}

func (r *Role) UnmarshalJSON(b []byte) error {
	var code int
	if err := json.Unmarshal(b, &code); err != nil {
		return ErrInvalidRole
	}
	role, err := RoleFromCode(code)
	if err != nil {
		return err
	}
	*r = role
	return nil
}
