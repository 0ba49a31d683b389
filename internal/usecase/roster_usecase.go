package usecase

import (
	"context"

	"console/internal/domain/entity"
)

// RosterUsecase exposes the read-only staff roster.
type RosterUsecase interface {
	// ListRoster returns the staff roster for the admin console.
	ListRoster(ctx context.Context) ([]*entity.StaffMember, error)
}
