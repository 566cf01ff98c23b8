package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

import (
	"laundry-backoffice/internal/pkg/jwt"
	"laundry-backoffice/internal/usecase/shared"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, err
	}

	id, err := claims.UserID()
	if err != nil {
		return shared.Actor{}, jwt.ErrInvalidToken
	}

	return shared.Actor{
		ID:    id,
		Role:  claims.Role,
		Name:  claims.Name,
		Email: claims.Email,
	}, nil
}
