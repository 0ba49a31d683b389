package usecase

import (
	"context"

	"console/internal/domain/entity"
	"console/internal/view"
)

// SelectViewInput carries the view token to activate.
type SelectViewInput struct {
	View string `json:"view" validate:"required"`
}

// ViewUsecase tracks the single active console screen per session.
type ViewUsecase interface {
	// ActiveView returns the principal's current view, defaulting to the
	// role's dashboard home.
	ActiveView(ctx context.Context, principal *entity.Principal) (view.Token, error)

	// SelectView makes the given view active. Last write wins.
	SelectView(ctx context.Context, principal *entity.Principal, token string) (view.Token, error)
}
