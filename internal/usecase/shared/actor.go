package shared

import (
	"laundry-backoffice/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller, as established from a verified token.
type Actor struct {
	ID    uuid.UUID
	Role  user.Role
	Name  string
	Email string
}
