package expense

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// Store persists a new expense and returns its assigned id.
	Store(ctx context.Context, expense Expense) (int, error)
	// Delete removes the record with the given id. Deleting the last
	// remaining expense resets the id sequence so the next insert gets id 1.
	Delete(ctx context.Context, id int) error
	Find(ctx context.Context, filter Filter) ([]Expense, error)
	TotalForMonth(ctx context.Context, year, month int) (float64, error)
	TotalForMonthAndCategory(ctx context.Context, year, month int, category string) (float64, error)
	// TopCategoriesForMonth returns per-category sums ordered by descending
	// total; ties break on category name so the order is deterministic.
	TopCategoriesForMonth(ctx context.Context, year, month, limit int) ([]CategorySum, error)
	CategorySumsForMonth(ctx context.Context, year, month int) ([]CategorySum, error)
	// MonthlyTotals returns up to months buckets, most recent first.
	MonthlyTotals(ctx context.Context, months int) ([]MonthTotal, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewExpenseRepo(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r RepositoryImpl) Store(ctx context.Context, expense Expense) (int, error) {
	query := `INSERT INTO expenses (amount, category, description, date) VALUES (?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		expense.Amount,
		expense.Category,
		expense.Description,
		expense.Date,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return 0, err
	}

	return int(lastInsertID), nil
}

func (r RepositoryImpl) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id); err != nil {
		err := fmt.Errorf("could not delete expense %d: %w", id, err)
		log.Error(err)
		return err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM expenses").Scan(&count); err != nil {
		err := fmt.Errorf("could not count expenses: %w", err)
		log.Error(err)
		return err
	}
	if count == 0 {
		// Restart AUTOINCREMENT so an emptied ledger starts over from id 1.
		if _, err := r.db.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = 'expenses'"); err != nil {
			err := fmt.Errorf("could not reset expense id sequence: %w", err)
			log.Error(err)
			return err
		}
		log.Debug("ledger emptied, expense id sequence reset")
	}

	return nil
}

func (r RepositoryImpl) Find(ctx context.Context, filter Filter) ([]Expense, error) {
	query := "SELECT id, amount, category, description, date FROM expenses WHERE 1=1"
	var params []any

	if filter.FromDate != "" {
		query += " AND date >= ?"
		params = append(params, filter.FromDate)
	}
	if filter.ToDate != "" {
		query += " AND date <= ?"
		params = append(params, filter.ToDate)
	}
	if filter.Category != "" && filter.Category != "All" {
		query += " AND category = ?"
		params = append(params, filter.Category)
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var expense Expense
		var description sql.NullString
		if err := rows.Scan(
			&expense.ID,
			&expense.Amount,
			&expense.Category,
			&description,
			&expense.Date,
		); err != nil {
			err := fmt.Errorf("could not scan expense: %w", err)
			log.Error(err)
			return nil, err
		}
		expense.Description = description.String
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return expenses, nil
}

func (r RepositoryImpl) TotalForMonth(ctx context.Context, year, month int) (float64, error) {
	query := `SELECT SUM(amount) FROM expenses WHERE strftime('%Y-%m', date) = ?`
	return r.sumQuery(ctx, query, monthKey(year, month))
}

func (r RepositoryImpl) TotalForMonthAndCategory(ctx context.Context, year, month int, category string) (float64, error) {
	query := `SELECT SUM(amount) FROM expenses WHERE strftime('%Y-%m', date) = ? AND category = ?`
	return r.sumQuery(ctx, query, monthKey(year, month), category)
}

func (r RepositoryImpl) TopCategoriesForMonth(ctx context.Context, year, month, limit int) ([]CategorySum, error) {
	query := `SELECT category, SUM(amount) FROM expenses
	          WHERE strftime('%Y-%m', date) = ?
	          GROUP BY category ORDER BY SUM(amount) DESC, category LIMIT ?`
	return r.categorySumQuery(ctx, query, monthKey(year, month), limit)
}

func (r RepositoryImpl) CategorySumsForMonth(ctx context.Context, year, month int) ([]CategorySum, error) {
	query := `SELECT category, SUM(amount) FROM expenses
	          WHERE strftime('%Y-%m', date) = ?
	          GROUP BY category ORDER BY category`
	return r.categorySumQuery(ctx, query, monthKey(year, month))
}

func (r RepositoryImpl) MonthlyTotals(ctx context.Context, months int) ([]MonthTotal, error) {
	query := `SELECT strftime('%Y-%m', date) AS month, SUM(amount) FROM expenses
	          GROUP BY month ORDER BY month DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, months)
	if err != nil {
		err := fmt.Errorf("could not query monthly totals: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var totals []MonthTotal
	for rows.Next() {
		var total MonthTotal
		if err := rows.Scan(&total.Month, &total.Total); err != nil {
			err := fmt.Errorf("could not scan monthly total: %w", err)
			log.Error(err)
			return nil, err
		}
		totals = append(totals, total)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return totals, nil
}

func (r RepositoryImpl) sumQuery(ctx context.Context, query string, params ...any) (float64, error) {
	var total sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, query, params...).Scan(&total); err != nil {
		err := fmt.Errorf("could not sum expenses: %w", err)
		log.Error(err)
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Float64, nil
}

func (r RepositoryImpl) categorySumQuery(ctx context.Context, query string, params ...any) ([]CategorySum, error) {
	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		err := fmt.Errorf("could not query category sums: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var sums []CategorySum
	for rows.Next() {
		var sum CategorySum
		if err := rows.Scan(&sum.Category, &sum.Total); err != nil {
			err := fmt.Errorf("could not scan category sum: %w", err)
			log.Error(err)
			return nil, err
		}
		sums = append(sums, sum)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return sums, nil
}

func monthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
