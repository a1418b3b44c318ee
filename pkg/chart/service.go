package chart

import (
	"context"

	"github.com/chandra2117/expense/internal/utils"
	"github.com/chandra2117/expense/pkg/expense"
)

// CategoryBreakdown holds parallel label/value slices for a per-category
// chart of the current month.
type CategoryBreakdown struct {
	Labels []string
	Values []float64
}

// MonthlyTrend holds parallel month/total slices in ascending month order.
type MonthlyTrend struct {
	Months []string
	Totals []float64
}

const trendMonths = 6

type Service interface {
	CategoryBreakdown(ctx context.Context) (CategoryBreakdown, error)
	MonthlyTrend(ctx context.Context) (MonthlyTrend, error)
}

type ServiceImpl struct {
	expenses expense.Repository
	clock    utils.Clock
}

func NewChartService(expenses expense.Repository, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{expenses: expenses, clock: clock}
}

func (s *ServiceImpl) CategoryBreakdown(ctx context.Context) (CategoryBreakdown, error) {
	now := s.clock.Now()
	sums, err := s.expenses.CategorySumsForMonth(ctx, now.Year(), int(now.Month()))
	if err != nil {
		return CategoryBreakdown{}, err
	}

	breakdown := CategoryBreakdown{
		Labels: make([]string, 0, len(sums)),
		Values: make([]float64, 0, len(sums)),
	}
	for _, sum := range sums {
		breakdown.Labels = append(breakdown.Labels, sum.Category)
		breakdown.Values = append(breakdown.Values, sum.Total)
	}
	return breakdown, nil
}

func (s *ServiceImpl) MonthlyTrend(ctx context.Context) (MonthlyTrend, error) {
	totals, err := s.expenses.MonthlyTotals(ctx, trendMonths)
	if err != nil {
		return MonthlyTrend{}, err
	}

	trend := MonthlyTrend{
		Months: make([]string, 0, len(totals)),
		Totals: make([]float64, 0, len(totals)),
	}
	// Repository returns the most recent bucket first; charts read left to
	// right, oldest first.
	for i := len(totals) - 1; i >= 0; i-- {
		trend.Months = append(trend.Months, totals[i].Month)
		trend.Totals = append(trend.Totals, totals[i].Total)
	}
	return trend, nil
}
