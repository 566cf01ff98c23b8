package company

import (
	"laundry-backoffice/internal/domain/user"

	"github.com/google/uuid"
)

// DirectorCandidate is a requested director id and the role it resolved to.
// Found is false when no user exists with that id.
type DirectorCandidate struct {
	ID    uuid.UUID
	Role  user.Role
	Found bool
}

// FilterDirectors keeps candidates that resolved to a Director and reports
// every other requested id as rejected, in request order.
func FilterDirectors(candidates []DirectorCandidate) (accepted, rejected []uuid.UUID) {
	accepted = make([]uuid.UUID, 0, len(candidates))
	rejected = make([]uuid.UUID, 0)
	for _, c := range candidates {
		if c.Found && c.Role == user.RoleDirector {
			accepted = append(accepted, c.ID)
			continue
		}
		rejected = append(rejected, c.ID)
	}
	return accepted, rejected
}
