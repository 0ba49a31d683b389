package entity

// ReservationStatus represents the confirmation state of a reservation.
type ReservationStatus string

const (
	// ReservationPending indicates the reservation awaits a staff decision.
	ReservationPending ReservationStatus = "pending"
	// ReservationConfirmed indicates staff accepted the reservation.
	ReservationConfirmed ReservationStatus = "confirmed"
	// ReservationRejected indicates staff declined the reservation.
	ReservationRejected ReservationStatus = "rejected"
)

// String returns the string representation of the ReservationStatus.
func (s ReservationStatus) String() string {
	return string(s)
}

// IsValid checks if the ReservationStatus is a valid value.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status is one of the two decided states.
// Terminal states can still be reset back to pending by staff.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationConfirmed || s == ReservationRejected
}

// Reservation is a table booking request. New reservations always start
// pending; only the status field is mutated afterwards.
type Reservation struct {
	ID              string            `json:"id"`
	CustomerName    string            `json:"customerName"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	PartySize       int               `json:"partySize"`
	Status          ReservationStatus `json:"status"`
	SpecialRequests string            `json:"specialRequests,omitempty"`
}

// WithStatus returns a copy of the reservation with the status replaced.
func (r Reservation) WithStatus(status ReservationStatus) Reservation {
	r.Status = status

	return r
}
