package response

import (
	"time"

	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// UserResponse encodes role as 1 = Admin, 2 = Director, 3 = Employee.
type UserResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             user.Role  `json:"role"`
	Online           bool       `json:"online"`
	EmailVerified    bool       `json:"emailVerified"`
	TwoFactorEnabled bool       `json:"twoFactorEnabled"`
	UnitID           *uuid.UUID `json:"unitId"`
	LastLoginAt      *time.Time `json:"lastLoginAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromUserView(v *queries.UserView) (UserResponse, error) {
	var res UserResponse
	if err := copier.Copy(&res, v); err != nil {
		return UserResponse{}, err
	}
	return res, nil
}

func FromUserViews(views []*queries.UserView) ([]UserResponse, error) {
	res := make([]UserResponse, 0, len(views))
	for _, v := range views {
		r, err := FromUserView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
