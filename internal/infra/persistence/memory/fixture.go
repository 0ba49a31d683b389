package memory

import (
	"time"

	"console/internal/domain/entity"

	"github.com/google/uuid"
)

// DefaultSnapshot returns the demo dataset the console boots with when no
// database is configured. Every call builds fresh records so callers can
// mutate their copy freely.
func DefaultSnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Orders: []*entity.Order{
			{
				ID:           "ORD-1001",
				CustomerName: "Dana Reyes",
				Items: []entity.LineItem{
					{Name: "Margherita Pizza", Quantity: 1, UnitPrice: 14.50},
					{Name: "Garlic Bread", Quantity: 2, UnitPrice: 4.25},
				},
				Status:   entity.OrderPreparing,
				PlacedAt: time.Date(2026, time.August, 29, 11, 42, 0, 0, time.UTC),
			},
			{
				ID:           "ORD-1002",
				CustomerName: "Sam Okafor",
				Items: []entity.LineItem{
					{Name: "Pad Thai", Quantity: 1, UnitPrice: 12.00},
					{Name: "Iced Tea", Quantity: 1, UnitPrice: 3.00},
				},
				Status:   entity.OrderReady,
				PlacedAt: time.Date(2026, time.August, 29, 12, 5, 0, 0, time.UTC),
			},
			{
				ID:           "ORD-1003",
				CustomerName: "Priya Nair",
				Items: []entity.LineItem{
					{Name: "Caesar Salad", Quantity: 1, UnitPrice: 9.75},
				},
				Status:   entity.OrderOnTheWay,
				PlacedAt: time.Date(2026, time.August, 29, 12, 18, 0, 0, time.UTC),
			},
		},
		Reservations: []*entity.Reservation{
			{
				ID:           "RSV-201",
				CustomerName: "Alex Fontaine",
				Date:         "2026-08-30",
				Time:         "19:00",
				PartySize:    4,
				Status:       entity.ReservationPending,
			},
			{
				ID:              "RSV-202",
				CustomerName:    "Morgan Liu",
				Date:            "2026-08-30",
				Time:            "20:30",
				PartySize:       2,
				Status:          entity.ReservationConfirmed,
				SpecialRequests: "window seat",
			},
			{
				ID:           "RSV-203",
				CustomerName: "Jordan Baptiste",
				Date:         "2026-08-31",
				Time:         "18:00",
				PartySize:    6,
				Status:       entity.ReservationPending,
			},
		},
		Tables: []*entity.Table{
			{ID: 1, SeatCount: 2, Status: entity.TableAvailable},
			{ID: 2, SeatCount: 2, Status: entity.TableOccupied},
			{ID: 3, SeatCount: 4, Status: entity.TableAvailable},
			{ID: 4, SeatCount: 4, Status: entity.TableReserved},
			{ID: 5, SeatCount: 8, Status: entity.TableAvailable},
		},
		Roster: []*entity.StaffMember{
			{
				ID:        uuid.New(),
				Name:      "Casey Whitfield",
				Email:     "casey@console.local",
				RoleLabel: "Shift Lead",
				OnDuty:    entity.DutyActive,
				Shift:     "open",
			},
			{
				ID:        uuid.New(),
				Name:      "Robin Tanaka",
				Email:     "robin@console.local",
				RoleLabel: "Server",
				OnDuty:    entity.DutyActive,
				Shift:     "open",
			},
			{
				ID:        uuid.New(),
				Name:      "Quinn Adebayo",
				Email:     "quinn@console.local",
				RoleLabel: "Server",
				OnDuty:    entity.DutyInactive,
				Shift:     "close",
			},
		},
	}
}
