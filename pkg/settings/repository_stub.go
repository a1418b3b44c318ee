package settings

import (
	"context"
	"strconv"
)

// RepositoryStub keeps settings in memory for service-level tests.
type RepositoryStub struct {
	values map[string]string
}

func NewStubSettingsRepo() *RepositoryStub {
	return &RepositoryStub{values: map[string]string{}}
}

func (s *RepositoryStub) Load(ctx context.Context) (Settings, error) {
	settings := Settings{
		CategoryLimits:     map[string]float64{},
		UnwantedCategories: map[string]bool{},
	}
	for key, value := range s.values {
		switch {
		case key == keyMonthlyBudget:
			settings.MonthlyBudget, _ = strconv.ParseFloat(value, 64)
		case key == keyBlockMode:
			settings.BlockModeEnabled = value == "1"
		case len(key) > len(prefixLimit) && key[:len(prefixLimit)] == prefixLimit:
			limit, _ := strconv.ParseFloat(value, 64)
			settings.CategoryLimits[key[len(prefixLimit):]] = limit
		case len(key) > len(prefixUnwanted) && key[:len(prefixUnwanted)] == prefixUnwanted:
			if value == "1" {
				settings.UnwantedCategories[key[len(prefixUnwanted):]] = true
			}
		}
	}
	return settings, nil
}

func (s *RepositoryStub) Raw(ctx context.Context) (map[string]string, error) {
	raw := make(map[string]string, len(s.values))
	for k, v := range s.values {
		raw[k] = v
	}
	return raw, nil
}

func (s *RepositoryStub) SetMonthlyBudget(ctx context.Context, amount float64) error {
	s.values[keyMonthlyBudget] = strconv.FormatFloat(amount, 'f', -1, 64)
	return nil
}

func (s *RepositoryStub) SetCategoryLimit(ctx context.Context, category string, amount float64) error {
	s.values[prefixLimit+category] = strconv.FormatFloat(amount, 'f', -1, 64)
	return nil
}

func (s *RepositoryStub) SetUnwanted(ctx context.Context, category string, unwanted bool) error {
	s.values[prefixUnwanted+category] = boolValue(unwanted)
	return nil
}

func (s *RepositoryStub) SetBlockMode(ctx context.Context, enabled bool) error {
	s.values[keyBlockMode] = boolValue(enabled)
	return nil
}

func (s *RepositoryStub) Cleanup() {
	s.values = map[string]string{}
}
