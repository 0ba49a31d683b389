package impl

import (
	"context"
	"testing"

	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/repository"
	"console/internal/usecase"
	"console/internal/view"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount() *entity.Account {
	return &entity.Account{
		Principal: entity.Principal{
			ID:          uuid.New(),
			DisplayName: "Ana Staff",
			Email:       "ana@example.com",
			Role:        entity.RoleStaff,
		},
		PasswordHash: "hashed-secret",
	}
}

func createTestSessionService() (usecase.SessionUsecase, *mockAccountRepository, *stubTokenService) {
	accounts := &mockAccountRepository{}
	tokens := &stubTokenService{}
	hasher := &stubHasher{password: "correct-horse", hash: "hashed-secret"}

	svc := NewSessionService(discardLogger(), accounts, hasher, tokens, view.NewSelector())

	return svc, accounts, tokens
}

func TestSessionService_Login_Success(t *testing.T) {
	svc, accounts, _ := createTestSessionService()
	ctx := context.Background()
	account := testAccount()

	accounts.On("FindByEmail", ctx, "ana@example.com").Return(account, nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "correct-horse"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, entity.RoleStaff, output.Principal.Role)
	accounts.AssertExpectations(t)
}

func TestSessionService_Login_UnknownAccount(t *testing.T) {
	svc, accounts, _ := createTestSessionService()
	ctx := context.Background()

	accounts.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	svc, accounts, _ := createTestSessionService()
	ctx := context.Background()

	accounts.On("FindByEmail", ctx, "ana@example.com").Return(testAccount(), nil)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})

	// Indistinguishable from an unknown account.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Refresh_Success(t *testing.T) {
	svc, accounts, _ := createTestSessionService()
	ctx := context.Background()
	account := testAccount()

	accounts.On("FindByEmail", ctx, "ana@example.com").Return(account, nil)
	login, err := svc.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	accounts.On("FindByID", ctx, account.ID).Return(account, nil)
	refreshed, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: login.RefreshToken})

	require.NoError(t, err)
	assert.Equal(t, account.ID, refreshed.Principal.ID)
}

func TestSessionService_Refresh_InvalidToken(t *testing.T) {
	svc, _, _ := createTestSessionService()

	_, err := svc.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "garbage"})

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestSessionService_Refresh_RevokedAccount(t *testing.T) {
	svc, accounts, _ := createTestSessionService()
	ctx := context.Background()
	account := testAccount()

	accounts.On("FindByEmail", ctx, "ana@example.com").Return(account, nil)
	login, err := svc.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	accounts.On("FindByID", ctx, account.ID).Return(nil, repository.ErrAccountNotFound)
	_, err = svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: login.RefreshToken})

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestSessionService_Resolve_TriState(t *testing.T) {
	svc, accounts, _ := createTestSessionService()
	ctx := context.Background()
	account := testAccount()

	// Missing token resolves to the anonymous state.
	state := svc.Resolve(ctx, "")
	assert.False(t, state.Resolving)
	assert.Nil(t, state.Principal)

	// An invalid token is indistinguishable from "never logged in".
	state = svc.Resolve(ctx, "forged")
	assert.Nil(t, state.Principal)

	accounts.On("FindByEmail", ctx, "ana@example.com").Return(account, nil)
	login, err := svc.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	state = svc.Resolve(ctx, login.AccessToken)
	require.NotNil(t, state.Principal)
	assert.True(t, state.Authenticated())
	assert.Equal(t, account.ID, state.Principal.ID)
	assert.Equal(t, entity.RoleStaff, state.Principal.Role)
}
