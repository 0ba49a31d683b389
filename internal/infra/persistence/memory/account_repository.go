package memory

import (
	"context"
	"strings"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
	"console/internal/domain/service"
	"console/internal/errors"

	"github.com/google/uuid"
)

// SeedAccount describes one login account to preload. Passwords arrive in
// plaintext from configuration and are hashed once at construction.
type SeedAccount struct {
	Email       string
	DisplayName string
	Role        string
	Password    string
}

type accountRepository struct {
	byEmail map[string]*entity.Account
	byID    map[uuid.UUID]*entity.Account
}

// NewAccountRepository creates an account repository holding the given seed
// accounts. It fails when a seed carries an unknown role or a password that
// cannot be hashed.
func NewAccountRepository(seeds []SeedAccount, hasher service.PasswordHasher) (repository.AccountRepository, error) {
	repo := &accountRepository{
		byEmail: make(map[string]*entity.Account, len(seeds)),
		byID:    make(map[uuid.UUID]*entity.Account, len(seeds)),
	}

	for _, seed := range seeds {
		role := entity.Role(seed.Role)
		if !role.IsValid() {
			return nil, errors.Errorf("seed account %s has unknown role %q", seed.Email, seed.Role)
		}

		hash, err := hasher.Hash(seed.Password)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to hash password for seed account %s", seed.Email)
		}

		account := &entity.Account{
			Principal: entity.Principal{
				ID:          uuid.New(),
				DisplayName: seed.DisplayName,
				Email:       seed.Email,
				Role:        role,
			},
			PasswordHash: hash,
		}
		repo.byEmail[strings.ToLower(seed.Email)] = account
		repo.byID[account.ID] = account
	}

	return repo, nil
}

// FindByEmail retrieves a single account by its email address.
func (r *accountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	account, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return account, nil
}

// FindByID retrieves a single account by its principal ID.
func (r *accountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	account, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return account, nil
}
