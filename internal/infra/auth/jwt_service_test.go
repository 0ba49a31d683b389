package auth

import (
	"testing"

	"console/config"
	"console/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func testPrincipal() *entity.Principal {
	return &entity.Principal{
		ID:          uuid.New(),
		DisplayName: "Ana Staff",
		Email:       "ana@example.com",
		Role:        entity.RoleStaff,
	}
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := testJWTService(t)
	principal := testPrincipal()

	access, _, err := svc.GenerateTokens(principal)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, principal.ID, claims.PrincipalID)
	assert.Equal(t, principal.Email, claims.Email)
	assert.Equal(t, entity.RoleStaff, claims.Role)
	assert.Equal(t, "access", claims.TokenType)

	rebuilt := claims.Principal()
	assert.Equal(t, principal.DisplayName, rebuilt.DisplayName)
}

func TestJWTService_RefreshTokenRejectedAsAccess(t *testing.T) {
	svc := testJWTService(t)

	_, refresh, err := svc.GenerateTokens(testPrincipal())
	require.NoError(t, err)

	// Signed with a different secret and carrying the wrong type.
	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)

	claims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestJWTService_TamperedTokenRejected(t *testing.T) {
	svc := testJWTService(t)

	access, _, err := svc.GenerateTokens(testPrincipal())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access + "x")
	assert.Error(t, err)
}
