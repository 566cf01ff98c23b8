package commands

import "laundry-backoffice/internal/pkg/errs"

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrEmailTaken           = errs.New("email already registered")
	ErrValidation           = errs.New("validation failed")
	ErrForbidden            = errs.New("forbidden")
	ErrCompanyNotFound      = errs.New("company not found")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidPasswordToken = errs.New("invalid or expired password token")
)
