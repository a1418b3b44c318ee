package settings

// Settings is the typed view of the key/value settings table, loaded and
// saved as a unit. Category names are matched by exact string equality; a
// limit may exist for a category with no expenses and vice versa.
type Settings struct {
	MonthlyBudget      float64
	CategoryLimits     map[string]float64
	UnwantedCategories map[string]bool
	BlockModeEnabled   bool
}

// Persisted key shape.
const (
	keyMonthlyBudget = "monthly_budget"
	keyBlockMode     = "block_mode"
	prefixLimit      = "limit_"
	prefixUnwanted   = "unwanted_"
)

// CategoryLimit returns the configured ceiling for a category, if any.
func (s Settings) CategoryLimit(category string) (float64, bool) {
	limit, ok := s.CategoryLimits[category]
	return limit, ok
}

// IsUnwanted reports whether the category carries an unwanted flag.
func (s Settings) IsUnwanted(category string) bool {
	return s.UnwantedCategories[category]
}
