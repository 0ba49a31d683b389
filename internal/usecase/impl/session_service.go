// Package impl contains the concrete application services behind the usecase
// interfaces.
package impl

import (
	"context"
	"log/slog"

	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/repository"
	"console/internal/domain/service"
	"console/internal/errors"
	"console/internal/usecase"
	"console/internal/view"
)

type sessionService struct {
	logger   *slog.Logger
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	selector *view.Selector
}

// NewSessionService creates the session service instance.
func NewSessionService(
	logger *slog.Logger,
	accounts repository.AccountRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	selector *view.Selector,
) usecase.SessionUsecase {
	return &sessionService{
		logger:   logger,
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		selector: selector,
	}
}

// Login verifies credentials and issues a token pair. Unknown accounts and
// wrong passwords are deliberately indistinguishable to the caller.
func (s *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := s.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !s.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	principal := &account.Principal
	accessToken, refreshToken, err := s.tokens.GenerateTokens(principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	s.logger.Info("session opened",
		slog.String("principal", principal.ID.String()),
		slog.String("role", principal.Role.String()),
	)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Principal:    principal,
	}, nil
}

// Refresh exchanges a refresh token for a new pair, re-reading the account so
// revoked principals stop refreshing.
func (s *sessionService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.LoginOutput, error) {
	claims, err := s.tokens.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	account, err := s.accounts.FindByID(ctx, claims.PrincipalID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	principal := &account.Principal
	accessToken, refreshToken, err := s.tokens.GenerateTokens(principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Principal:    principal,
	}, nil
}

// Logout clears the principal's view selection. Token invalidation is the
// client's job in this stateless scheme.
func (s *sessionService) Logout(ctx context.Context, principal *entity.Principal) error {
	if principal == nil {
		return nil
	}

	s.selector.Reset(principal.ID.String())
	s.logger.Info("session closed", slog.String("principal", principal.ID.String()))

	return nil
}

// Resolve builds the tri-state session snapshot for the access gate. Any
// resolution failure collapses into the anonymous state.
func (s *sessionService) Resolve(ctx context.Context, accessToken string) entity.SessionState {
	if accessToken == "" {
		return entity.AnonymousSession()
	}

	claims, err := s.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		return entity.AnonymousSession()
	}

	return entity.AuthenticatedSession(claims.Principal())
}
