package entity

// Snapshot is the complete, consistent state of all console collections at a
// point in time. The entity store is constructed from one and hands one to
// every subscriber after each mutation; records reachable through a snapshot
// are never mutated in place.
type Snapshot struct {
	Orders       []*Order
	Reservations []*Reservation
	Tables       []*Table
	Roster       []*StaffMember
}
