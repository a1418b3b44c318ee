package expense

// Expense is one spending event. Records are immutable once created; the
// only mutation the ledger supports is an id-based delete.
type Expense struct {
	ID       int
	Amount   float64
	Category string
	// Description is free-form and optional.
	Description string
	// Date is an ISO-8601 calendar date (YYYY-MM-DD). Lexical order on this
	// format is chronological order, which the range filters rely on.
	Date string
}

// Filter narrows a ledger listing. Zero values mean "no constraint";
// Category "All" is equivalent to empty. Date bounds are inclusive.
type Filter struct {
	FromDate string
	ToDate   string
	Category string
}

// CategorySum is a per-category aggregate for one month.
type CategorySum struct {
	Category string
	Total    float64
}

// MonthTotal is the aggregate spend for one YYYY-MM bucket.
type MonthTotal struct {
	Month string
	Total float64
}
