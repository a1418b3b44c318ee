package expense

import (
	"context"
	"sort"
	"strings"
)

// RepositoryStub keeps the ledger in memory for service-level tests. It
// mirrors the real store's id behavior, including the restart from 1 once
// the ledger is emptied.
type RepositoryStub struct {
	expenses []Expense
	nextID   int
}

func NewStubExpenseRepo() *RepositoryStub {
	return &RepositoryStub{nextID: 1}
}

func (s *RepositoryStub) Store(ctx context.Context, expense Expense) (int, error) {
	expense.ID = s.nextID
	s.nextID++
	s.expenses = append(s.expenses, expense)
	return expense.ID, nil
}

func (s *RepositoryStub) Delete(ctx context.Context, id int) error {
	for i, e := range s.expenses {
		if e.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			break
		}
	}
	if len(s.expenses) == 0 {
		s.nextID = 1
	}
	return nil
}

func (s *RepositoryStub) Find(ctx context.Context, filter Filter) ([]Expense, error) {
	var result []Expense
	for _, e := range s.expenses {
		if filter.FromDate != "" && e.Date < filter.FromDate {
			continue
		}
		if filter.ToDate != "" && e.Date > filter.ToDate {
			continue
		}
		if filter.Category != "" && filter.Category != "All" && e.Category != filter.Category {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (s *RepositoryStub) TotalForMonth(ctx context.Context, year, month int) (float64, error) {
	var total float64
	for _, e := range s.expenses {
		if strings.HasPrefix(e.Date, monthKey(year, month)) {
			total += e.Amount
		}
	}
	return total, nil
}

func (s *RepositoryStub) TotalForMonthAndCategory(ctx context.Context, year, month int, category string) (float64, error) {
	var total float64
	for _, e := range s.expenses {
		if e.Category == category && strings.HasPrefix(e.Date, monthKey(year, month)) {
			total += e.Amount
		}
	}
	return total, nil
}

func (s *RepositoryStub) TopCategoriesForMonth(ctx context.Context, year, month, limit int) ([]CategorySum, error) {
	sums, err := s.CategorySumsForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	sort.Slice(sums, func(i, j int) bool {
		if sums[i].Total != sums[j].Total {
			return sums[i].Total > sums[j].Total
		}
		return sums[i].Category < sums[j].Category
	})
	if len(sums) > limit {
		sums = sums[:limit]
	}
	return sums, nil
}

func (s *RepositoryStub) CategorySumsForMonth(ctx context.Context, year, month int) ([]CategorySum, error) {
	byCategory := map[string]float64{}
	for _, e := range s.expenses {
		if strings.HasPrefix(e.Date, monthKey(year, month)) {
			byCategory[e.Category] += e.Amount
		}
	}
	var sums []CategorySum
	for category, total := range byCategory {
		sums = append(sums, CategorySum{Category: category, Total: total})
	}
	sort.Slice(sums, func(i, j int) bool { return sums[i].Category < sums[j].Category })
	return sums, nil
}

func (s *RepositoryStub) MonthlyTotals(ctx context.Context, months int) ([]MonthTotal, error) {
	byMonth := map[string]float64{}
	for _, e := range s.expenses {
		if len(e.Date) >= 7 {
			byMonth[e.Date[:7]] += e.Amount
		}
	}
	var totals []MonthTotal
	for month, total := range byMonth {
		totals = append(totals, MonthTotal{Month: month, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Month > totals[j].Month })
	if len(totals) > months {
		totals = totals[:months]
	}
	return totals, nil
}

func (s *RepositoryStub) Cleanup() {
	s.expenses = nil
	s.nextID = 1
}
