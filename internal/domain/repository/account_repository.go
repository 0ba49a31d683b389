package repository

import (
	"context"

	"console/internal/domain/entity"
	"console/internal/errors"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when no account
// matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for login account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByID retrieves a single account by its principal ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}
