package expense

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandra2117/expense/internal/test_utils"
)

func seed(t *testing.T, repo *RepositoryImpl, expenses ...Expense) {
	t.Helper()
	for _, e := range expenses {
		_, err := repo.Store(context.Background(), e)
		require.NoError(t, err)
	}
}

func TestRepositoryStoreAndFind(t *testing.T) {
	ctx := context.Background()

	t.Run("should assign sequential ids starting at 1", func(t *testing.T) {
		repo := NewExpenseRepo(test_utils.SetupTestDB(t))

		// when
		first, err := repo.Store(ctx, Expense{Amount: 10, Category: "Food", Date: "2025-03-01"})
		require.NoError(t, err)
		second, err := repo.Store(ctx, Expense{Amount: 20, Category: "Rent", Date: "2025-03-02"})
		require.NoError(t, err)

		// then
		assert.Equal(t, 1, first)
		assert.Equal(t, 2, second)
	})

	t.Run("should round-trip all fields including an empty description", func(t *testing.T) {
		repo := NewExpenseRepo(test_utils.SetupTestDB(t))
		seed(t, repo,
			Expense{Amount: 12.5, Category: "Food", Description: "lunch", Date: "2025-03-01"},
			Expense{Amount: 7, Category: "Transport", Date: "2025-03-02"},
		)

		// when
		expenses, err := repo.Find(ctx, Filter{})

		// then
		require.NoError(t, err)
		require.Len(t, expenses, 2)
		assert.Equal(t, Expense{ID: 1, Amount: 12.5, Category: "Food", Description: "lunch", Date: "2025-03-01"}, expenses[0])
		assert.Equal(t, "", expenses[1].Description)
	})

	t.Run("should apply date bounds inclusively", func(t *testing.T) {
		repo := NewExpenseRepo(test_utils.SetupTestDB(t))
		seed(t, repo,
			Expense{Amount: 1, Category: "Food", Date: "2025-03-01"},
			Expense{Amount: 2, Category: "Food", Date: "2025-03-15"},
			Expense{Amount: 3, Category: "Food", Date: "2025-03-31"},
			Expense{Amount: 4, Category: "Food", Date: "2025-04-01"},
		)

		// when
		expenses, err := repo.Find(ctx, Filter{FromDate: "2025-03-15", ToDate: "2025-03-31"})

		// then
		require.NoError(t, err)
		require.Len(t, expenses, 2)
		assert.Equal(t, 2.0, expenses[0].Amount)
		assert.Equal(t, 3.0, expenses[1].Amount)
	})
}

func TestRepositoryDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("should keep the sequence while records remain", func(t *testing.T) {
		repo := NewExpenseRepo(test_utils.SetupTestDB(t))
		seed(t, repo,
			Expense{Amount: 10, Category: "Food", Date: "2025-03-01"},
			Expense{Amount: 20, Category: "Food", Date: "2025-03-02"},
		)

		// when
		require.NoError(t, repo.Delete(ctx, 1))
		next, err := repo.Store(ctx, Expense{Amount: 30, Category: "Food", Date: "2025-03-03"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 3, next)
	})

	t.Run("should restart the sequence once the table is empty", func(t *testing.T) {
		repo := NewExpenseRepo(test_utils.SetupTestDB(t))
		seed(t, repo,
			Expense{Amount: 10, Category: "Food", Date: "2025-03-01"},
			Expense{Amount: 20, Category: "Food", Date: "2025-03-02"},
		)

		// when
		require.NoError(t, repo.Delete(ctx, 1))
		require.NoError(t, repo.Delete(ctx, 2))
		next, err := repo.Store(ctx, Expense{Amount: 30, Category: "Food", Date: "2025-03-03"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, next)
	})

	t.Run("should not fail for an unknown id", func(t *testing.T) {
		repo := NewExpenseRepo(test_utils.SetupTestDB(t))
		seed(t, repo, Expense{Amount: 10, Category: "Food", Date: "2025-03-01"})

		// when / then
		assert.NoError(t, repo.Delete(ctx, 99))
	})
}

func TestRepositoryAggregates(t *testing.T) {
	ctx := context.Background()

	t.Run("should sum a month across categories", func(t *testing.T) {
		repo := NewExpenseRepo(test_utils.SetupTestDB(t))
		seed(t, repo,
			Expense{Amount: 100, Category: "Food", Date: "2025-03-01"},
			Expense{Amount: 200, Category: "Rent", Date: "2025-03-15"},
			Expense{Amount: 50, Category: "Food", Date: "2025-04-01"},
		)

		// when
		total, err := repo.TotalForMonth(ctx, 2025, 3)

		// then
		require.NoError(t, err)
		assert.Equal(t, 300.0, total)
	})

	t.Run("should return zero for an empty month", func(t *testing.T) {
		repo := NewExpenseRepo(test_utils.SetupTestDB(t))

		// when
		total, err := repo.TotalForMonth(ctx, 2025, 3)

		// then
		require.NoError(t, err)
		assert.Equal(t, 0.0, total)
	})

	t.Run("should sum a month for one category", func(t *testing.T) {
		repo := NewExpenseRepo(test_utils.SetupTestDB(t))
		seed(t, repo,
			Expense{Amount: 100, Category: "Food", Date: "2025-03-01"},
			Expense{Amount: 40, Category: "Food", Date: "2025-03-20"},
			Expense{Amount: 200, Category: "Rent", Date: "2025-03-15"},
		)

		// when
		total, err := repo.TotalForMonthAndCategory(ctx, 2025, 3, "Food")

		// then
		require.NoError(t, err)
		assert.Equal(t, 140.0, total)
	})

	t.Run("should rank top categories by total with name tiebreak", func(t *testing.T) {
		repo := NewExpenseRepo(test_utils.SetupTestDB(t))
		seed(t, repo,
			Expense{Amount: 50, Category: "Transport", Date: "2025-03-01"},
			Expense{Amount: 200, Category: "Rent", Date: "2025-03-02"},
			Expense{Amount: 50, Category: "Food", Date: "2025-03-03"},
		)

		// when
		top, err := repo.TopCategoriesForMonth(ctx, 2025, 3, 2)

		// then
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, CategorySum{Category: "Rent", Total: 200}, top[0])
		assert.Equal(t, CategorySum{Category: "Food", Total: 50}, top[1])
	})

	t.Run("should list category sums in name order", func(t *testing.T) {
		repo := NewExpenseRepo(test_utils.SetupTestDB(t))
		seed(t, repo,
			Expense{Amount: 50, Category: "Transport", Date: "2025-03-01"},
			Expense{Amount: 200, Category: "Rent", Date: "2025-03-02"},
			Expense{Amount: 30, Category: "Food", Date: "2025-03-03"},
		)

		// when
		sums, err := repo.CategorySumsForMonth(ctx, 2025, 3)

		// then
		require.NoError(t, err)
		require.Len(t, sums, 3)
		assert.Equal(t, "Food", sums[0].Category)
		assert.Equal(t, "Rent", sums[1].Category)
		assert.Equal(t, "Transport", sums[2].Category)
	})

	t.Run("should return the most recent monthly buckets first", func(t *testing.T) {
		repo := NewExpenseRepo(test_utils.SetupTestDB(t))
		seed(t, repo,
			Expense{Amount: 10, Category: "Food", Date: "2025-01-15"},
			Expense{Amount: 20, Category: "Food", Date: "2025-02-15"},
			Expense{Amount: 30, Category: "Food", Date: "2025-03-15"},
		)

		// when
		totals, err := repo.MonthlyTotals(ctx, 2)

		// then
		require.NoError(t, err)
		require.Len(t, totals, 2)
		assert.Equal(t, MonthTotal{Month: "2025-03", Total: 30}, totals[0])
		assert.Equal(t, MonthTotal{Month: "2025-02", Total: 20}, totals[1])
	})
}
