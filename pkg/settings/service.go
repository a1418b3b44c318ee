package settings

import (
	"context"
)

// Provider is the read-only view other packages depend on.
type Provider interface {
	Load(ctx context.Context) (Settings, error)
}

type Service interface {
	Provider
	Raw(ctx context.Context) (map[string]string, error)
	SetMonthlyBudget(ctx context.Context, amount float64) error
	SetCategoryLimit(ctx context.Context, category string, amount float64) error
	MarkUnwanted(ctx context.Context, category string, unwanted bool) error
	SetBlockMode(ctx context.Context, enabled bool) error
}

type ServiceImpl struct {
	repo Repository
}

func NewSettingsService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Load(ctx context.Context) (Settings, error) {
	return s.repo.Load(ctx)
}

func (s *ServiceImpl) Raw(ctx context.Context) (map[string]string, error) {
	return s.repo.Raw(ctx)
}

func (s *ServiceImpl) SetMonthlyBudget(ctx context.Context, amount float64) error {
	return s.repo.SetMonthlyBudget(ctx, amount)
}

func (s *ServiceImpl) SetCategoryLimit(ctx context.Context, category string, amount float64) error {
	return s.repo.SetCategoryLimit(ctx, category, amount)
}

func (s *ServiceImpl) MarkUnwanted(ctx context.Context, category string, unwanted bool) error {
	return s.repo.SetUnwanted(ctx, category, unwanted)
}

func (s *ServiceImpl) SetBlockMode(ctx context.Context, enabled bool) error {
	return s.repo.SetBlockMode(ctx, enabled)
}
