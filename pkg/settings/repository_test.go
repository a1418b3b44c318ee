package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandra2117/expense/internal/test_utils"
)

func TestRepositoryLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("should return zero-value settings for an empty store", func(t *testing.T) {
		repo := NewSettingsRepo(test_utils.SetupTestDB(t))

		// when
		loaded, err := repo.Load(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, 0.0, loaded.MonthlyBudget)
		assert.False(t, loaded.BlockModeEnabled)
		assert.Empty(t, loaded.CategoryLimits)
		assert.Empty(t, loaded.UnwantedCategories)
	})

	t.Run("should assemble typed settings from stored keys", func(t *testing.T) {
		repo := NewSettingsRepo(test_utils.SetupTestDB(t))

		// given
		require.NoError(t, repo.SetMonthlyBudget(ctx, 1500))
		require.NoError(t, repo.SetCategoryLimit(ctx, "Food", 300))
		require.NoError(t, repo.SetCategoryLimit(ctx, "Transport", 120.5))
		require.NoError(t, repo.SetUnwanted(ctx, "Cigarettes", true))
		require.NoError(t, repo.SetBlockMode(ctx, true))

		// when
		loaded, err := repo.Load(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1500.0, loaded.MonthlyBudget)
		assert.True(t, loaded.BlockModeEnabled)
		limit, ok := loaded.CategoryLimit("Food")
		assert.True(t, ok)
		assert.Equal(t, 300.0, limit)
		limit, ok = loaded.CategoryLimit("Transport")
		assert.True(t, ok)
		assert.Equal(t, 120.5, limit)
		assert.True(t, loaded.IsUnwanted("Cigarettes"))
		assert.False(t, loaded.IsUnwanted("Food"))
	})

	t.Run("should drop an unwanted flag that was cleared", func(t *testing.T) {
		repo := NewSettingsRepo(test_utils.SetupTestDB(t))

		// given
		require.NoError(t, repo.SetUnwanted(ctx, "Cigarettes", true))
		require.NoError(t, repo.SetUnwanted(ctx, "Cigarettes", false))

		// when
		loaded, err := repo.Load(ctx)

		// then
		require.NoError(t, err)
		assert.False(t, loaded.IsUnwanted("Cigarettes"))
	})
}

func TestRepositoryUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("should overwrite an existing value for the same key", func(t *testing.T) {
		repo := NewSettingsRepo(test_utils.SetupTestDB(t))

		// given
		require.NoError(t, repo.SetMonthlyBudget(ctx, 1000))
		require.NoError(t, repo.SetMonthlyBudget(ctx, 2000))

		// when
		loaded, err := repo.Load(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, 2000.0, loaded.MonthlyBudget)
	})

	t.Run("should keep limits for different categories independent", func(t *testing.T) {
		repo := NewSettingsRepo(test_utils.SetupTestDB(t))

		// given
		require.NoError(t, repo.SetCategoryLimit(ctx, "Food", 300))
		require.NoError(t, repo.SetCategoryLimit(ctx, "Food", 250))
		require.NoError(t, repo.SetCategoryLimit(ctx, "Rent", 900))

		// when
		loaded, err := repo.Load(ctx)

		// then
		require.NoError(t, err)
		limit, _ := loaded.CategoryLimit("Food")
		assert.Equal(t, 250.0, limit)
		limit, _ = loaded.CategoryLimit("Rent")
		assert.Equal(t, 900.0, limit)
	})
}

func TestRepositoryRaw(t *testing.T) {
	ctx := context.Background()

	t.Run("should expose the persisted key/value pairs", func(t *testing.T) {
		repo := NewSettingsRepo(test_utils.SetupTestDB(t))

		// given
		require.NoError(t, repo.SetMonthlyBudget(ctx, 1500))
		require.NoError(t, repo.SetBlockMode(ctx, true))
		require.NoError(t, repo.SetUnwanted(ctx, "Cigarettes", true))

		// when
		raw, err := repo.Raw(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"monthly_budget":      "1500",
			"block_mode":          "1",
			"unwanted_Cigarettes": "1",
		}, raw)
	})
}
