// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"console/internal/domain/entity"
)

// SnapshotRepository supplies the entity store with its initial collections
// and optionally persists them back. The transition engine never depends on
// which implementation provided the snapshot; swapping the in-memory fixture
// for the Postgres loader must not touch transition logic.
type SnapshotRepository interface {
	// Load returns the complete console state: orders, reservations, tables
	// and the staff roster.
	Load(ctx context.Context) (*entity.Snapshot, error)

	// Save persists the given snapshot. Implementations that have no durable
	// backing may treat this as a no-op.
	Save(ctx context.Context, snapshot *entity.Snapshot) error
}
