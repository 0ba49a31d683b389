// Package access decides, for every protected console subtree, whether the
// current session may enter it and where to send it otherwise. The gate is a
// pure function of the required roles and the session state; it performs no
// I/O and cannot fail.
package access

import "console/internal/domain/entity"

// DecisionKind enumerates the four possible gate outcomes.
type DecisionKind string

const (
	// DecisionWait means the session store is still resolving; the caller
	// must hold rendering and not yet commit to challenge or allow.
	DecisionWait DecisionKind = "wait"
	// DecisionChallenge means no principal is present; the caller must
	// present an authentication challenge inline at the current location so
	// the requested deep link survives the challenge.
	DecisionChallenge DecisionKind = "challenge"
	// DecisionRedirect means a principal is present but lacks a required
	// role; the caller must send the session to Decision.Target.
	DecisionRedirect DecisionKind = "redirect"
	// DecisionAllow means the session may render the protected subtree.
	DecisionAllow DecisionKind = "allow"
)

// Decision is the gate's output. Target is set only for DecisionRedirect.
type Decision struct {
	Kind   DecisionKind
	Target string
}

// Wait returns the decision emitted while the session is still resolving.
func Wait() Decision { return Decision{Kind: DecisionWait} }

// Challenge returns the decision emitted for an anonymous session.
func Challenge() Decision { return Decision{Kind: DecisionChallenge} }

// Redirect returns the decision sending an authenticated but unentitled
// session to the given target.
func Redirect(target string) Decision {
	return Decision{Kind: DecisionRedirect, Target: target}
}

// Allow returns the decision admitting the session.
func Allow() Decision { return Decision{Kind: DecisionAllow} }

// RoleHomes is the total lookup table from role to the console path that role
// lands on after an unentitled redirect. Roles absent from the table fall back
// to the application home.
type RoleHomes struct {
	byRole  map[entity.Role]string
	appHome string
}

// NewRoleHomes builds the mapping from per-role targets plus the default
// application home used for any role outside the table.
func NewRoleHomes(adminHome, staffHome, customerHome, appHome string) RoleHomes {
	return RoleHomes{
		byRole: map[entity.Role]string{
			entity.RoleAdmin:    adminHome,
			entity.RoleStaff:    staffHome,
			entity.RoleCustomer: customerHome,
		},
		appHome: appHome,
	}
}

// Home resolves the landing path for a role. The mapping is total and
// deterministic: unknown roles land on the application home.
func (h RoleHomes) Home(role entity.Role) string {
	if target, ok := h.byRole[role]; ok {
		return target
	}

	return h.appHome
}

// Gate evaluates access decisions against a fixed role-home mapping.
type Gate struct {
	homes RoleHomes
}

// NewGate is the constructor for Gate.
func NewGate(homes RoleHomes) *Gate {
	return &Gate{homes: homes}
}

// Authorize applies the three mutually exclusive, exhaustive rules in strict
// order: resolving is checked before principal presence, and presence before
// role membership. The first matching rule decides.
//
// ADMIN is a superset principal only by caller contract: call sites protecting
// staff or customer subtrees must include entity.RoleAdmin in required
// themselves, or admin sessions are redirected to the admin home.
func (g *Gate) Authorize(required entity.Roles, session entity.SessionState) Decision {
	if session.Resolving {
		return Wait()
	}
	if session.Principal == nil {
		return Challenge()
	}
	if !required.Contains(session.Principal.Role) {
		return Redirect(g.homes.Home(session.Principal.Role))
	}

	return Allow()
}

// AuthorizeAuthenticated is the weaker gate variant for subtrees that require
// only "any authenticated session". It applies the Wait and Challenge rules
// and never computes a redirect.
func (g *Gate) AuthorizeAuthenticated(session entity.SessionState) Decision {
	if session.Resolving {
		return Wait()
	}
	if session.Principal == nil {
		return Challenge()
	}

	return Allow()
}

// Homes exposes the gate's role-home mapping for callers that need the
// landing path outside an authorization decision.
func (g *Gate) Homes() RoleHomes {
	return g.homes
}
