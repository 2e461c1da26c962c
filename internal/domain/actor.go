package domain

import "github.com/google/uuid"

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// IsOperator reports whether the actor may run the session.
func (a Actor) IsOperator() bool {
	return a.Role == RoleAdmin || a.Role == RolePresident
}

// IsVoter reports whether the actor may vote and register presence.
func (a Actor) IsVoter() bool {
	return a.Role == RoleCouncilor || a.Role == RolePresident
}
