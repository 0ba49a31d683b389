package usecase

import (
	"context"

	"console/internal/domain/entity"
)

// ReservationUsecase exposes the reservation collection to the console screens.
type ReservationUsecase interface {
	// ListReservations returns all reservations ordered by id.
	ListReservations(ctx context.Context) ([]*entity.Reservation, error)

	// UpdateReservationStatus applies a staff-initiated status transition.
	UpdateReservationStatus(ctx context.Context, id string, status string) (*entity.Reservation, error)

	// ResetReservation moves a reservation back to pending. This is the
	// explicit affordance for undoing a confirmed or rejected decision.
	ResetReservation(ctx context.Context, id string) (*entity.Reservation, error)
}
