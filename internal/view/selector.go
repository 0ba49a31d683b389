// Package view tracks which console screen a session is looking at. Selection
// is a pure assignment drawn from a closed enumeration; the selector never
// performs access checks — it is only reachable behind the access gate.
package view

import (
	"sync"

	"console/internal/domain/entity"
	"console/internal/errors"
)

// Token identifies one console screen.
type Token string

const (
	// Admin console screens.
	AdminDashboard Token = "admin.dashboard"
	AdminStaff     Token = "admin.staff"
	AdminReports   Token = "admin.reports"

	// Staff console screens.
	StaffDashboard    Token = "staff.dashboard"
	StaffOrders       Token = "staff.orders"
	StaffReservations Token = "staff.reservations"
	StaffTables       Token = "staff.tables"

	// Customer console screens.
	CustomerHome         Token = "customer.home"
	CustomerOrders       Token = "customer.orders"
	CustomerReservations Token = "customer.reservations"
)

// ErrUnknownView is returned when a token is not part of the role's subtree.
var ErrUnknownView = errors.New("view token not in role subtree")

// subtrees is the closed enumeration of navigable screens per role. The
// first entry of each subtree is the role's dashboard home.
var subtrees = map[entity.Role][]Token{
	entity.RoleAdmin:    {AdminDashboard, AdminStaff, AdminReports},
	entity.RoleStaff:    {StaffDashboard, StaffOrders, StaffReservations, StaffTables},
	entity.RoleCustomer: {CustomerHome, CustomerOrders, CustomerReservations},
}

// DefaultFor returns the dashboard-home view of a role.
func DefaultFor(role entity.Role) Token {
	if subtree, ok := subtrees[role]; ok {
		return subtree[0]
	}

	return CustomerHome
}

// Navigable reports whether the token belongs to the role's subtree.
func Navigable(role entity.Role, token Token) bool {
	for _, candidate := range subtrees[role] {
		if candidate == token {
			return true
		}
	}

	return false
}

// Selector holds exactly one active view per session. No two views are ever
// simultaneously active for the same session; Select is last write wins.
type Selector struct {
	mu     sync.Mutex
	active map[string]Token
}

// NewSelector is the constructor for Selector.
func NewSelector() *Selector {
	return &Selector{active: make(map[string]Token)}
}

// Active returns the session's current view, falling back to the role's
// dashboard home when nothing has been selected yet.
func (s *Selector) Active(sessionKey string, role entity.Role) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token, ok := s.active[sessionKey]; ok {
		return token
	}

	return DefaultFor(role)
}

// Select makes the given view the session's single active view. Tokens
// outside the role's closed enumeration are rejected.
func (s *Selector) Select(sessionKey string, role entity.Role, token Token) error {
	if !Navigable(role, token) {
		return errors.Wrapf(ErrUnknownView, "%s for role %s", token, role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[sessionKey] = token

	return nil
}

// Reset clears the session's selection, typically on logout.
func (s *Selector) Reset(sessionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, sessionKey)
}
