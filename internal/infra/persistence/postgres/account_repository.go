package postgres

import (
	"context"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
	"console/internal/errors"
	"console/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository backed by PostgreSQL.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByEmail retrieves a single account by its email address.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountModel model.AccountModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&accountModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountEntity(&accountModel), nil
}

// FindByID retrieves a single account by its principal ID.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&accountModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountEntity(&accountModel), nil
}

func toAccountEntity(accountModel *model.AccountModel) *entity.Account {
	return &entity.Account{
		Principal: entity.Principal{
			ID:          accountModel.ID,
			DisplayName: accountModel.DisplayName,
			Email:       accountModel.Email,
			Role:        entity.Role(accountModel.Role),
		},
		PasswordHash: accountModel.PasswordHash,
	}
}
