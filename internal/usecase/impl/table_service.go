package impl

import (
	"context"
	"log/slog"
	"strconv"

	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/service"
	"console/internal/errors"
	"console/internal/store"
	"console/internal/usecase"
)

type tableService struct {
	logger *slog.Logger
	store  *store.Store
	qr     service.QRCodeService
}

// NewTableService creates the table service instance.
func NewTableService(logger *slog.Logger, st *store.Store, qr service.QRCodeService) usecase.TableUsecase {
	return &tableService{logger: logger, store: st, qr: qr}
}

// ListTables returns all tables ordered by id.
func (s *tableService) ListTables(ctx context.Context) ([]*entity.Table, error) {
	return s.store.Tables(), nil
}

// UpdateTableStatus applies a staff-initiated status transition.
func (s *tableService) UpdateTableStatus(ctx context.Context, id int, status string) (*entity.Table, error) {
	updated, err := s.store.TransitionTable(id, entity.TableStatus(status))
	if err != nil {
		return nil, mapStoreError(err, domainerrors.ErrTableNotFound)
	}

	s.logger.Info("table status updated",
		slog.String("table", strconv.Itoa(id)),
		slog.String("status", status),
	)

	return updated, nil
}

// TableQR renders the check-in QR code for an existing table.
func (s *tableService) TableQR(ctx context.Context, id int) ([]byte, error) {
	if _, err := s.store.Table(id); err != nil {
		return nil, mapStoreError(err, domainerrors.ErrTableNotFound)
	}

	png, err := s.qr.GenerateTableQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate table QR code")
	}

	return png, nil
}
