package impl

import (
	"context"

	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/errors"
	"console/internal/usecase"
	"console/internal/view"
)

type viewService struct {
	selector *view.Selector
}

// NewViewService creates the view selection service instance.
func NewViewService(selector *view.Selector) usecase.ViewUsecase {
	return &viewService{selector: selector}
}

// ActiveView returns the principal's current view.
func (s *viewService) ActiveView(ctx context.Context, principal *entity.Principal) (view.Token, error) {
	return s.selector.Active(principal.ID.String(), principal.Role), nil
}

// SelectView activates the given view for the principal's session.
func (s *viewService) SelectView(ctx context.Context, principal *entity.Principal, token string) (view.Token, error) {
	selected := view.Token(token)
	if err := s.selector.Select(principal.ID.String(), principal.Role, selected); err != nil {
		if errors.Is(err, view.ErrUnknownView) {
			return "", domainerrors.ErrUnknownView.WithDetails(err.Error())
		}

		return "", errors.WithStack(err)
	}

	return selected, nil
}
