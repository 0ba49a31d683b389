// Package memory provides fixture-backed repositories used when no database
// is configured. They satisfy the same interfaces as the PostgreSQL
// implementations so the rest of the service cannot tell them apart.
package memory

import (
	"context"
	"sync"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
)

type snapshotRepository struct {
	mu       sync.Mutex
	snapshot *entity.Snapshot
}

// NewSnapshotRepository creates a snapshot repository seeded with the given
// snapshot. A nil seed falls back to the demo fixture.
func NewSnapshotRepository(seed *entity.Snapshot) repository.SnapshotRepository {
	if seed == nil {
		seed = DefaultSnapshot()
	}

	return &snapshotRepository{snapshot: seed}
}

// Load returns the most recently saved snapshot.
func (r *snapshotRepository) Load(_ context.Context) (*entity.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshot, nil
}

// Save replaces the held snapshot wholesale.
func (r *snapshotRepository) Save(_ context.Context, snapshot *entity.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot = snapshot

	return nil
}
