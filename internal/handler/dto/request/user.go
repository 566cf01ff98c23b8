package request

import (
	"laundry-backoffice/internal/domain/user"
)

// Role codes: 1 = Admin, 2 = Director, 3 = Employee.
type CreateUserRequest struct {
	Name     string    `json:"name" binding:"required"`
	Email    string    `json:"email" binding:"required"`
	Password string    `json:"password" binding:"required"`
	Role     user.Role `json:"role" binding:"required"`
}

func (r *CreateUserRequest) ToDomain() (user.Registration, error) {
	return user.NewRegistration(r.Name, r.Email, r.Password, r.Role)
}
