package usecase

import (
	"context"

	"console/internal/domain/entity"
)

// TableUsecase exposes the floor plan to the console screens.
type TableUsecase interface {
	// ListTables returns all tables ordered by id.
	ListTables(ctx context.Context) ([]*entity.Table, error)

	// UpdateTableStatus applies a staff-initiated status transition.
	UpdateTableStatus(ctx context.Context, id int, status string) (*entity.Table, error)

	// TableQR renders the PNG check-in QR code for a table.
	TableQR(ctx context.Context, id int) ([]byte, error)
}
