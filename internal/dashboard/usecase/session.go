package usecase

import (
	"context"

	"comment-srv/internal/dashboard"
	"comment-srv/internal/model"
)

func (uc *implUseCase) GetSession(ctx context.Context, sc model.Scope) (dashboard.Session, error) {
	s, err := uc.load(ctx, sc)
	if err != nil {
		return dashboard.Session{}, err
	}
	s.ComposerOpen = uc.composerOpen(ctx, sc)
	return s, nil
}

func (uc *implUseCase) UpdateFilters(ctx context.Context, sc model.Scope, patch dashboard.CriteriaPatch) (dashboard.Session, error) {
	s, err := uc.load(ctx, sc)
	if err != nil {
		return dashboard.Session{}, err
	}
	return uc.withCriteria(ctx, sc, s, dashboard.MergeCriteria(s.Criteria, patch))
}

func (uc *implUseCase) ToggleFilter(ctx context.Context, sc model.Scope, input dashboard.FilterInput) (dashboard.Session, error) {
	s, err := uc.load(ctx, sc)
	if err != nil {
		return dashboard.Session{}, err
	}
	criteria, err := dashboard.ToggleCriteriaValue(s.Criteria, input.Dimension, input.Value)
	if err != nil {
		return dashboard.Session{}, err
	}
	return uc.withCriteria(ctx, sc, s, criteria)
}

func (uc *implUseCase) ClearFilter(ctx context.Context, sc model.Scope, input dashboard.FilterInput) (dashboard.Session, error) {
	s, err := uc.load(ctx, sc)
	if err != nil {
		return dashboard.Session{}, err
	}
	criteria, err := dashboard.RemoveCriteriaValue(s.Criteria, input.Dimension, input.Value)
	if err != nil {
		return dashboard.Session{}, err
	}
	return uc.withCriteria(ctx, sc, s, criteria)
}

func (uc *implUseCase) ClearAllFilters(ctx context.Context, sc model.Scope) (dashboard.Session, error) {
	s, err := uc.load(ctx, sc)
	if err != nil {
		return dashboard.Session{}, err
	}
	return uc.withCriteria(ctx, sc, s, dashboard.ResetCriteria())
}
