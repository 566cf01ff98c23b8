package api

import (
	"net/http"

	"laundry-backoffice/internal/handler/httperr"
	"laundry-backoffice/internal/pkg/errs"
	"laundry-backoffice/internal/usecase/commands"
	"laundry-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest     = "Invalid request"
	msgInvalidCredentials = "Invalid email or password"
	msgEmailTaken         = "Email already registered"
	msgForbidden          = "Insufficient permissions"
	msgCompanyNotFound    = "Company not found"
	msgUserNotFound       = "User not found"
	msgUnitNotFound       = "Unit not found"
	msgUnauthorized       = "Unauthorized"
	msgInternal           = "Internal server error"
	msgInvalidLinkToken   = "Invalid or expired password link"
)

// abortWithUsecaseError maps command and query errors onto the HTTP error taxonomy.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, validationMessage(err))
	case errs.Is(err, commands.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, msgInvalidCredentials)
	case errs.Is(err, commands.ErrEmailTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, msgEmailTaken)
	case errs.Is(err, commands.ErrForbidden), errs.Is(err, queries.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, msgForbidden)
	case errs.Is(err, commands.ErrCompanyNotFound), errs.Is(err, queries.ErrCompanyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgCompanyNotFound)
	case errs.Is(err, commands.ErrInvalidPasswordToken):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidLinkToken)
	case errs.Is(err, commands.ErrUserNotFound), errs.Is(err, queries.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgUserNotFound)
	case errs.Is(err, queries.ErrUnitNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgUnitNotFound)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal)
	}
}

// validationMessage surfaces the domain rule that failed, e.g. "invalid email format".
func validationMessage(err error) string {
	cause := errs.Cause(err)
	if cause == nil || cause.Error() == "" {
		return msgInvalidRequest
	}
	return cause.Error()
}

// render converts a view to its response DTO and writes it, mapping conversion failures to 500.
func render[V any, R any](c *gin.Context, status int, v V, convert func(V) (R, error)) {
	res, err := convert(v)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, res)
}
