package access

import (
	"testing"

	"console/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHomes() RoleHomes {
	return NewRoleHomes("/admin/dashboard", "/staff/dashboard", "/customer/home", "/")
}

func principalWith(role entity.Role) *entity.Principal {
	return &entity.Principal{
		ID:          uuid.New(),
		DisplayName: "Jamie",
		Email:       "jamie@example.com",
		Role:        role,
	}
}

func TestAuthorize_ResolvingAlwaysWaits(t *testing.T) {
	gate := NewGate(testHomes())

	// Resolving wins even when a stale principal is still attached.
	states := []entity.SessionState{
		entity.ResolvingSession(),
		{Resolving: true, Principal: principalWith(entity.RoleAdmin)},
	}

	for _, state := range states {
		decision := gate.Authorize(entity.Roles{entity.RoleAdmin}, state)
		assert.Equal(t, DecisionWait, decision.Kind)
	}
}

func TestAuthorize_AnonymousChallengesInline(t *testing.T) {
	gate := NewGate(testHomes())

	decision := gate.Authorize(entity.Roles{entity.RoleStaff}, entity.AnonymousSession())

	require.Equal(t, DecisionChallenge, decision.Kind)
	assert.Empty(t, decision.Target, "challenge must not carry a redirect target")
}

func TestAuthorize_AllowIffRoleRequired(t *testing.T) {
	gate := NewGate(testHomes())
	allRoles := []entity.Role{entity.RoleAdmin, entity.RoleStaff, entity.RoleCustomer}

	requiredSets := []entity.Roles{
		{entity.RoleAdmin},
		{entity.RoleStaff, entity.RoleAdmin},
		{entity.RoleCustomer, entity.RoleAdmin},
		{entity.RoleCustomer},
	}

	for _, required := range requiredSets {
		for _, role := range allRoles {
			session := entity.AuthenticatedSession(principalWith(role))
			decision := gate.Authorize(required, session)

			if required.Contains(role) {
				assert.Equal(t, DecisionAllow, decision.Kind)
			} else {
				require.Equal(t, DecisionRedirect, decision.Kind)
				assert.Equal(t, gate.Homes().Home(role), decision.Target)
			}
		}
	}
}

func TestAuthorize_StaffOnAdminSubtreeLandsOnStaffHome(t *testing.T) {
	gate := NewGate(testHomes())
	session := entity.AuthenticatedSession(principalWith(entity.RoleStaff))

	decision := gate.Authorize(entity.Roles{entity.RoleAdmin}, session)

	require.Equal(t, DecisionRedirect, decision.Kind)
	// The target is the unentitled session's own home, never the subtree's.
	assert.Equal(t, "/staff/dashboard", decision.Target)
}

func TestAuthorize_AdminRedirectedWhenCallerOmitsAdmin(t *testing.T) {
	gate := NewGate(testHomes())
	session := entity.AuthenticatedSession(principalWith(entity.RoleAdmin))

	// Caller contract: a required set without ADMIN redirects admin sessions.
	decision := gate.Authorize(entity.Roles{entity.RoleStaff}, session)

	require.Equal(t, DecisionRedirect, decision.Kind)
	assert.Equal(t, "/admin/dashboard", decision.Target)
}

func TestRoleHomes_TotalAndDeterministic(t *testing.T) {
	homes := testHomes()

	assert.Equal(t, "/admin/dashboard", homes.Home(entity.RoleAdmin))
	assert.Equal(t, "/staff/dashboard", homes.Home(entity.RoleStaff))
	assert.Equal(t, "/customer/home", homes.Home(entity.RoleCustomer))
	assert.Equal(t, "/", homes.Home(entity.Role("courier")))
	assert.Equal(t, "/", homes.Home(entity.Role("")))
}

func TestAuthorizeAuthenticated_NeverRedirects(t *testing.T) {
	gate := NewGate(testHomes())

	assert.Equal(t, DecisionWait, gate.AuthorizeAuthenticated(entity.ResolvingSession()).Kind)
	assert.Equal(t, DecisionChallenge, gate.AuthorizeAuthenticated(entity.AnonymousSession()).Kind)

	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleStaff, entity.RoleCustomer} {
		decision := gate.AuthorizeAuthenticated(entity.AuthenticatedSession(principalWith(role)))
		assert.Equal(t, DecisionAllow, decision.Kind)
	}
}
