// Package usecase defines the application-layer interfaces and their
// input/output DTOs. Delivery depends on these interfaces, never on the
// concrete services in impl.
package usecase

import (
	"context"

	"console/internal/domain/entity"
)

// LoginInput carries the credentials for a password login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued token pair and the resolved principal.
type LoginOutput struct {
	AccessToken  string            `json:"accessToken"`
	RefreshToken string            `json:"refreshToken"`
	Principal    *entity.Principal `json:"principal"`
}

// RefreshInput carries a refresh token to exchange for a new pair.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// SessionUsecase is the session store collaborator at this service's
// boundary: it issues tokens and resolves a bearer token into the tri-state
// SessionState the access gate consumes.
type SessionUsecase interface {
	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, input *RefreshInput) (*LoginOutput, error)

	// Logout discards session-scoped state for the principal.
	Logout(ctx context.Context, principal *entity.Principal) error

	// Resolve turns a bearer token into a session state. It never fails:
	// a missing, invalid or expired token resolves to the anonymous state,
	// indistinguishable from "never logged in".
	Resolve(ctx context.Context, accessToken string) entity.SessionState
}
