package request

import (
	"laundry-backoffice/internal/domain/auth"
	"laundry-backoffice/internal/domain/user"
)

// LoginRequest is deliberately not format-checked: a malformed email fails as 401.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

// RegisterAdminRequest bootstraps an administrator. Role defaults to Admin.
type RegisterAdminRequest struct {
	Name     string     `json:"name" binding:"required"`
	Email    string     `json:"email" binding:"required"`
	Password string     `json:"password" binding:"required"`
	Role     *user.Role `json:"role"`
}

func (r *RegisterAdminRequest) ToDomain() (user.Registration, error) {
	role := user.RoleAdmin
	if r.Role != nil {
		role = *r.Role
	}
	return user.NewRegistration(r.Name, r.Email, r.Password, role)
}
