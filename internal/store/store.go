// Package store holds the console's status-bearing collections and applies
// staff-initiated status transitions to them. The store is the exclusive
// owner of all four collections; every mutation replaces exactly one record
// immutably and leaves every other record referentially identical, so
// subscribers always observe complete, consistent snapshots.
package store

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
	"console/internal/errors"
)

var (
	// ErrNotFound is returned when a transition targets an id that does not
	// exist in the collection. The collection is left unchanged and no
	// notification is emitted.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidStatus is returned when the requested status is outside the
	// entity's enumerated set. Within the set, any status may follow any
	// other; the console deliberately allows manual override.
	ErrInvalidStatus = errors.New("status not in enumerated set")
)

// Observer receives one event per successful transition, synchronously,
// after the new snapshot is in place.
type Observer func(Event)

// Subscriber receives the complete snapshot after each mutation.
type Subscriber func(*entity.Snapshot)

// Store is the authoritative in-process mapping of console entities. It is
// owned by the console session that created it; a single mutex serializes
// the goroutines of the HTTP delivery driving it.
type Store struct {
	mu           sync.Mutex
	orders       map[string]*entity.Order
	reservations map[string]*entity.Reservation
	tables       map[int]*entity.Table
	roster       []*entity.StaffMember
	observers    []Observer
	subscribers  []Subscriber
}

// New constructs a store seeded from the given snapshot. The snapshot's
// records are adopted as-is; callers must not retain mutable references.
func New(snapshot *entity.Snapshot) *Store {
	s := &Store{
		orders:       make(map[string]*entity.Order, len(snapshot.Orders)),
		reservations: make(map[string]*entity.Reservation, len(snapshot.Reservations)),
		tables:       make(map[int]*entity.Table, len(snapshot.Tables)),
		roster:       snapshot.Roster,
	}
	for _, order := range snapshot.Orders {
		s.orders[order.ID] = order
	}
	for _, reservation := range snapshot.Reservations {
		s.reservations[reservation.ID] = reservation
	}
	for _, table := range snapshot.Tables {
		s.tables[table.ID] = table
	}

	return s
}

// NewFromRepository loads the initial snapshot from the injected repository
// and seeds a store with it. Transition logic does not depend on which
// implementation supplied the snapshot.
func NewFromRepository(ctx context.Context, repo repository.SnapshotRepository) (*Store, error) {
	snapshot, err := repo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load initial snapshot")
	}

	return New(snapshot), nil
}

// Observe registers an observer for transition events.
func (s *Store) Observe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Subscribe registers a subscriber for post-mutation snapshots.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// TransitionOrder sets the status of one order. Any enumerated status may
// follow any other.
func (s *Store) TransitionOrder(id string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.Wrapf(ErrInvalidStatus, "order status %q", status)
	}

	s.mu.Lock()
	next, updated, ok := replaceOne(s.orders, id, func(o entity.Order) entity.Order {
		return o.WithStatus(status)
	})
	if !ok {
		s.mu.Unlock()

		return nil, errors.Wrapf(ErrNotFound, "order %s", id)
	}
	s.orders = next
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(Event{Kind: KindOrder, ID: id, Status: status.String()}, snapshot)

	return updated, nil
}

// TransitionReservation sets the status of one reservation. Moving a terminal
// reservation back to pending is the explicit reset affordance.
func (s *Store) TransitionReservation(id string, status entity.ReservationStatus) (*entity.Reservation, error) {
	if !status.IsValid() {
		return nil, errors.Wrapf(ErrInvalidStatus, "reservation status %q", status)
	}

	s.mu.Lock()
	next, updated, ok := replaceOne(s.reservations, id, func(r entity.Reservation) entity.Reservation {
		return r.WithStatus(status)
	})
	if !ok {
		s.mu.Unlock()

		return nil, errors.Wrapf(ErrNotFound, "reservation %s", id)
	}
	s.reservations = next
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(Event{Kind: KindReservation, ID: id, Status: status.String()}, snapshot)

	return updated, nil
}

// TransitionTable sets the status of one table. All three values are freely
// interchangeable.
func (s *Store) TransitionTable(id int, status entity.TableStatus) (*entity.Table, error) {
	if !status.IsValid() {
		return nil, errors.Wrapf(ErrInvalidStatus, "table status %q", status)
	}

	s.mu.Lock()
	next, updated, ok := replaceOne(s.tables, id, func(t entity.Table) entity.Table {
		return t.WithStatus(status)
	})
	if !ok {
		s.mu.Unlock()

		return nil, errors.Wrapf(ErrNotFound, "table %d", id)
	}
	s.tables = next
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(Event{Kind: KindTable, ID: strconv.Itoa(id), Status: status.String()}, snapshot)

	return updated, nil
}

// Orders returns the order collection sorted by placement time, oldest first.
func (s *Store) Orders() []*entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return sortedOrders(s.orders)
}

// Reservations returns the reservation collection sorted by id.
func (s *Store) Reservations() []*entity.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return sortedReservations(s.reservations)
}

// Tables returns the table collection sorted by id.
func (s *Store) Tables() []*entity.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	return sortedTables(s.tables)
}

// Roster returns the read-only staff roster.
func (s *Store) Roster() []*entity.StaffMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster := make([]*entity.StaffMember, len(s.roster))
	copy(roster, s.roster)

	return roster
}

// Order returns one order by id.
func (s *Store) Order(id string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "order %s", id)
	}

	return order, nil
}

// Reservation returns one reservation by id.
func (s *Store) Reservation(id string) (*entity.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.reservations[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "reservation %s", id)
	}

	return reservation, nil
}

// Table returns one table by id.
func (s *Store) Table(id int) (*entity.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "table %d", id)
	}

	return table, nil
}

// Snapshot returns the complete current state of all four collections.
func (s *Store) Snapshot() *entity.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() *entity.Snapshot {
	roster := make([]*entity.StaffMember, len(s.roster))
	copy(roster, s.roster)

	return &entity.Snapshot{
		Orders:       sortedOrders(s.orders),
		Reservations: sortedReservations(s.reservations),
		Tables:       sortedTables(s.tables),
		Roster:       roster,
	}
}

func (s *Store) publish(event Event, snapshot *entity.Snapshot) {
	s.mu.Lock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	subscribers := make([]Subscriber, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, observe := range observers {
		observe(event)
	}
	for _, subscribe := range subscribers {
		subscribe(snapshot)
	}
}

// replaceOne builds a new collection with exactly the target record replaced.
// Every other entry keeps its original pointer, so subscribers can cheaply
// detect "no other change".
func replaceOne[K comparable, T any](coll map[K]*T, id K, update func(T) T) (map[K]*T, *T, bool) {
	current, ok := coll[id]
	if !ok {
		return coll, nil, false
	}

	next := make(map[K]*T, len(coll))
	for k, v := range coll {
		next[k] = v
	}
	updated := update(*current)
	next[id] = &updated

	return next, &updated, true
}

func sortedOrders(coll map[string]*entity.Order) []*entity.Order {
	orders := make([]*entity.Order, 0, len(coll))
	for _, order := range coll {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].PlacedAt.Equal(orders[j].PlacedAt) {
			return orders[i].ID < orders[j].ID
		}

		return orders[i].PlacedAt.Before(orders[j].PlacedAt)
	})

	return orders
}

func sortedReservations(coll map[string]*entity.Reservation) []*entity.Reservation {
	reservations := make([]*entity.Reservation, 0, len(coll))
	for _, reservation := range coll {
		reservations = append(reservations, reservation)
	}
	sort.Slice(reservations, func(i, j int) bool {
		return reservations[i].ID < reservations[j].ID
	})

	return reservations
}

func sortedTables(coll map[int]*entity.Table) []*entity.Table {
	tables := make([]*entity.Table, 0, len(coll))
	for _, table := range coll {
		tables = append(tables, table)
	}
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].ID < tables[j].ID
	})

	return tables
}
