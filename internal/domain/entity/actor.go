package entity

import "github.com/google/uuid"

// Actor is the authenticated identity behind a request. Handlers build it
// from the verified token claims and pass it explicitly into every
// role-scoped operation, so usecases never read identity from ambient state.
type Actor struct {
	UserID   uuid.UUID
	Username string
	Role     string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsDoctor() bool {
	return a.Role == RoleDoctor
}

func (a Actor) IsPatient() bool {
	return a.Role == RolePatient
}
