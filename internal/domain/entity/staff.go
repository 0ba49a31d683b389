package entity

import "github.com/google/uuid"

// OnDutyStatus represents whether a staff member is currently on shift.
type OnDutyStatus string

const (
	// DutyActive indicates the staff member is on duty.
	DutyActive OnDutyStatus = "active"
	// DutyInactive indicates the staff member is off duty.
	DutyInactive OnDutyStatus = "inactive"
)

// String returns the string representation of the OnDutyStatus.
func (s OnDutyStatus) String() string {
	return string(s)
}

// StaffMember is a roster entry shown on the admin console. The roster is
// read-only in this service; the transition engine never mutates it.
type StaffMember struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	RoleLabel string       `json:"roleLabel"`
	OnDuty    OnDutyStatus `json:"onDuty"`
	Shift     string       `json:"shift"`
}
