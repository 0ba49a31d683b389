package view

import (
	"testing"

	"console/internal/domain/entity"
	"console/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActive_DefaultsToRoleDashboardHome(t *testing.T) {
	s := NewSelector()

	assert.Equal(t, AdminDashboard, s.Active("sess-1", entity.RoleAdmin))
	assert.Equal(t, StaffDashboard, s.Active("sess-2", entity.RoleStaff))
	assert.Equal(t, CustomerHome, s.Active("sess-3", entity.RoleCustomer))
}

func TestSelect_LastWriteWins(t *testing.T) {
	s := NewSelector()

	require.NoError(t, s.Select("sess-1", entity.RoleStaff, StaffOrders))
	require.NoError(t, s.Select("sess-1", entity.RoleStaff, StaffTables))

	assert.Equal(t, StaffTables, s.Active("sess-1", entity.RoleStaff))
}

func TestSelect_RejectsTokenOutsideRoleSubtree(t *testing.T) {
	s := NewSelector()

	err := s.Select("sess-1", entity.RoleCustomer, AdminDashboard)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownView))
	assert.Equal(t, CustomerHome, s.Active("sess-1", entity.RoleCustomer), "failed select leaves view unchanged")
}

func TestSelect_SessionsAreIndependent(t *testing.T) {
	s := NewSelector()

	require.NoError(t, s.Select("sess-1", entity.RoleStaff, StaffReservations))

	assert.Equal(t, StaffReservations, s.Active("sess-1", entity.RoleStaff))
	assert.Equal(t, StaffDashboard, s.Active("sess-2", entity.RoleStaff))
}

func TestReset_RestoresDefault(t *testing.T) {
	s := NewSelector()

	require.NoError(t, s.Select("sess-1", entity.RoleAdmin, AdminReports))
	s.Reset("sess-1")

	assert.Equal(t, AdminDashboard, s.Active("sess-1", entity.RoleAdmin))
}
