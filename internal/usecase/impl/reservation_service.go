package impl

import (
	"context"
	"log/slog"

	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/store"
	"console/internal/usecase"
)

type reservationService struct {
	logger *slog.Logger
	store  *store.Store
}

// NewReservationService creates the reservation service instance.
func NewReservationService(logger *slog.Logger, st *store.Store) usecase.ReservationUsecase {
	return &reservationService{logger: logger, store: st}
}

// ListReservations returns all reservations ordered by id.
func (s *reservationService) ListReservations(ctx context.Context) ([]*entity.Reservation, error) {
	return s.store.Reservations(), nil
}

// UpdateReservationStatus applies a staff-initiated status transition.
func (s *reservationService) UpdateReservationStatus(ctx context.Context, id string, status string) (*entity.Reservation, error) {
	updated, err := s.store.TransitionReservation(id, entity.ReservationStatus(status))
	if err != nil {
		return nil, mapStoreError(err, domainerrors.ErrReservationNotFound)
	}

	s.logger.Info("reservation status updated",
		slog.String("reservation", id),
		slog.String("status", status),
	)

	return updated, nil
}

// ResetReservation moves a reservation back to pending, the explicit undo for
// a confirmed or rejected decision.
func (s *reservationService) ResetReservation(ctx context.Context, id string) (*entity.Reservation, error) {
	return s.UpdateReservationStatus(ctx, id, entity.ReservationPending.String())
}
