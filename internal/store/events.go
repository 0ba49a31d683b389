package store

import "fmt"

// EntityKind labels the collection a transition touched. The value doubles as
// the user-facing entity label in notification messages.
type EntityKind string

const (
	// KindOrder labels order transitions.
	KindOrder EntityKind = "Order"
	// KindReservation labels reservation transitions.
	KindReservation EntityKind = "Reservation"
	// KindTable labels table transitions.
	KindTable EntityKind = "Table"
)

// Event describes one successful status transition. Exactly one event is
// emitted per successful transition and none on failure.
type Event struct {
	Kind   EntityKind
	ID     string
	Status string
}

// Message renders the user-facing notification for this transition,
// e.g. "Table 4 status updated to available".
func (e Event) Message() string {
	return fmt.Sprintf("%s %s status updated to %s", e.Kind, e.ID, e.Status)
}
