package service

import (
	"time"

	"console/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the validated content of a session token.
type Claims struct {
	PrincipalID uuid.UUID
	DisplayName string
	Email       string
	Role        entity.Role
	TokenType   string // "access" or "refresh"
}

// Principal rebuilds the session principal carried by the claims.
func (c *Claims) Principal() *entity.Principal {
	return &entity.Principal{
		ID:          c.PrincipalID,
		DisplayName: c.DisplayName,
		Email:       c.Email,
		Role:        c.Role,
	}
}

// TokenService defines the interface for generating and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a principal.
	GenerateTokens(principal *entity.Principal) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks the validity of an access token string.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks the validity of a refresh token string.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
