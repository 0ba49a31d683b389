package entity

import "github.com/google/uuid"

// Principal is the authenticated identity of the current session. The role is
// immutable for the lifetime of the session; a role change requires a new login.
type Principal struct {
	ID          uuid.UUID `json:"id"`          // The unique identifier for the account behind this session.
	DisplayName string    `json:"displayName"` // The name shown in the console header.
	Email       string    `json:"email"`       // The login identifier.
	Role        Role      `json:"role"`        // The single role this session acts under.
}
