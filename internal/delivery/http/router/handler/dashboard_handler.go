package handler

import (
	"net/http"

	"console/internal/delivery/http/response"
	"console/internal/domain/entity"
	"console/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler aggregates collection summaries for the admin dashboard.
type DashboardHandler struct {
	orders       usecase.OrderUsecase
	reservations usecase.ReservationUsecase
	tables       usecase.TableUsecase
	roster       usecase.RosterUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(
	orders usecase.OrderUsecase,
	reservations usecase.ReservationUsecase,
	tables usecase.TableUsecase,
	roster usecase.RosterUsecase,
) *DashboardHandler {
	return &DashboardHandler{
		orders:       orders,
		reservations: reservations,
		tables:       tables,
		roster:       roster,
	}
}

type dashboardSummary struct {
	OrdersByStatus       map[string]int `json:"ordersByStatus"`
	PendingReservations  int            `json:"pendingReservations"`
	TablesByStatus       map[string]int `json:"tablesByStatus"`
	StaffOnDuty          int            `json:"staffOnDuty"`
	TotalOrders          int            `json:"totalOrders"`
	TotalReservations    int            `json:"totalReservations"`
	TotalTables          int            `json:"totalTables"`
	TotalStaff           int            `json:"totalStaff"`
}

// Summary returns headline counts across all four collections.
func (h *DashboardHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orders.ListOrders(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	reservations, err := h.reservations.ListReservations(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	tables, err := h.tables.ListTables(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	roster, err := h.roster.ListRoster(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	summary := dashboardSummary{
		OrdersByStatus:    make(map[string]int),
		TablesByStatus:    make(map[string]int),
		TotalOrders:       len(orders),
		TotalReservations: len(reservations),
		TotalTables:       len(tables),
		TotalStaff:        len(roster),
	}
	for _, order := range orders {
		summary.OrdersByStatus[order.Status.String()]++
	}
	for _, reservation := range reservations {
		if reservation.Status == entity.ReservationPending {
			summary.PendingReservations++
		}
	}
	for _, table := range tables {
		summary.TablesByStatus[table.Status.String()]++
	}
	for _, member := range roster {
		if member.OnDuty == entity.DutyActive {
			summary.StaffOnDuty++
		}
	}

	return response.Success(c, http.StatusOK, summary, "Dashboard summary retrieved successfully")
}
