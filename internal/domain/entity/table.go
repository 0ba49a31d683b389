package entity

// TableStatus represents the floor state of a dining table. All three values
// are freely interchangeable; there is no terminal state.
type TableStatus string

const (
	// TableAvailable indicates the table is free to seat guests.
	TableAvailable TableStatus = "available"
	// TableOccupied indicates guests are currently seated.
	TableOccupied TableStatus = "occupied"
	// TableReserved indicates the table is held for a reservation.
	TableReserved TableStatus = "reserved"
)

// String returns the string representation of the TableStatus.
func (s TableStatus) String() string {
	return string(s)
}

// IsValid checks if the TableStatus is a valid value.
func (s TableStatus) IsValid() bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved:
		return true
	default:
		return false
	}
}

// Table is a dining table on the floor plan. The ID is stable across the
// process lifetime; status is the only mutable field.
type Table struct {
	ID        int         `json:"id"`
	SeatCount int         `json:"seatCount"`
	Status    TableStatus `json:"status"`
}

// WithStatus returns a copy of the table with the status replaced.
func (t Table) WithStatus(status TableStatus) Table {
	t.Status = status

	return t
}
