package advisor

import (
	"context"
	"fmt"

	"github.com/chandra2117/expense/internal/utils"
	"github.com/chandra2117/expense/pkg/expense"
	"github.com/chandra2117/expense/pkg/settings"
)

// Projection is the month-end estimate for one month, extrapolated from the
// spend so far at the current day.
type Projection struct {
	Year      int
	Month     int
	Spent     float64
	Projected float64
	Budget    float64
}

const maxCutSuggestions = 5

type Service interface {
	// ProjectedMonthEndSpend extrapolates the month total linearly from the
	// average daily spend. For a past or future month the projection equals
	// the actual spend, since no partial day information applies.
	ProjectedMonthEndSpend(ctx context.Context, year, month int) (Projection, error)
	// Recommendations returns advisory strings for the given month. Order is
	// fixed: budget verdict first, then top spending categories in descending
	// spend, then one line per unwanted category with spend, in category name
	// order.
	Recommendations(ctx context.Context, year, month int) ([]string, error)
}

type ServiceImpl struct {
	expenses expense.Repository
	settings settings.Provider
	clock    utils.Clock
}

func NewAdvisorService(expenses expense.Repository, settingsProvider settings.Provider, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		expenses: expenses,
		settings: settingsProvider,
		clock:    clock,
	}
}

func (s *ServiceImpl) ProjectedMonthEndSpend(ctx context.Context, year, month int) (Projection, error) {
	current, err := s.settings.Load(ctx)
	if err != nil {
		return Projection{}, err
	}

	spent, err := s.expenses.TotalForMonth(ctx, year, month)
	if err != nil {
		return Projection{}, err
	}

	days := daysInMonth(year, month)
	day := days
	now := s.clock.Now()
	if now.Year() == year && int(now.Month()) == month {
		day = now.Day()
	}

	projected := spent
	if day > 0 {
		projected = spent / float64(day) * float64(days)
	}

	return Projection{
		Year:      year,
		Month:     month,
		Spent:     spent,
		Projected: projected,
		Budget:    current.MonthlyBudget,
	}, nil
}

func (s *ServiceImpl) Recommendations(ctx context.Context, year, month int) ([]string, error) {
	projection, err := s.ProjectedMonthEndSpend(ctx, year, month)
	if err != nil {
		return nil, err
	}

	var advice []string

	if projection.Budget > 0 && projection.Projected > projection.Budget {
		overshoot := projection.Projected - projection.Budget
		advice = append(advice, fmt.Sprintf(
			"Projected overshoot: %.0f. Try to cut this month by %.0f.", overshoot, overshoot))

		top, err := s.expenses.TopCategoriesForMonth(ctx, year, month, maxCutSuggestions)
		if err != nil {
			return nil, err
		}
		for _, sum := range top {
			advice = append(advice, fmt.Sprintf(
				"Top: %s spent %.0f this month. Consider cutting 20-40%% here.", sum.Category, sum.Total))
		}
	} else {
		// Overshoot is zero whenever no budget is configured, so the
		// on-track verdict applies there too.
		advice = append(advice, "You're on track: projected spending is within budget. Consider adding to savings.")
	}

	current, err := s.settings.Load(ctx)
	if err != nil {
		return nil, err
	}
	sums, err := s.expenses.CategorySumsForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	for _, sum := range sums {
		if current.IsUnwanted(sum.Category) {
			advice = append(advice, fmt.Sprintf(
				"Unwanted category %s already has %.0f this month. Avoid further purchases in this category.",
				sum.Category, sum.Total))
		}
	}

	return advice, nil
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	}
}
