package usecase

import (
	"errors"

	"hospital-management-api/internal/domain/entity"
)

// ErrForbidden is returned when the acting account's role does not permit
// the requested operation.
var ErrForbidden = errors.New("operation not permitted for this role")

// requireRole is the single authorization check used by every role-scoped
// operation. The HTTP role middleware gates routes as well; this keeps the
// invariant even if a usecase is called from elsewhere.
func requireRole(actor entity.Actor, role string) error {
	if actor.Role != role {
		return ErrForbidden
	}
	return nil
}
