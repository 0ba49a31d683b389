package impl

import (
	"context"

	"console/internal/domain/entity"
	"console/internal/store"
	"console/internal/usecase"
)

type rosterService struct {
	store *store.Store
}

// NewRosterService creates the roster service instance.
func NewRosterService(st *store.Store) usecase.RosterUsecase {
	return &rosterService{store: st}
}

// ListRoster returns the read-only staff roster.
func (s *rosterService) ListRoster(ctx context.Context) ([]*entity.StaffMember, error) {
	return s.store.Roster(), nil
}
