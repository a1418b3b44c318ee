package settings

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// Load reads the whole settings table into a typed Settings record.
	Load(ctx context.Context) (Settings, error)
	// Raw returns the untyped key -> value mapping as stored.
	Raw(ctx context.Context) (map[string]string, error)
	SetMonthlyBudget(ctx context.Context, amount float64) error
	SetCategoryLimit(ctx context.Context, category string, amount float64) error
	SetUnwanted(ctx context.Context, category string, unwanted bool) error
	SetBlockMode(ctx context.Context, enabled bool) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r RepositoryImpl) Load(ctx context.Context) (Settings, error) {
	settings := Settings{
		CategoryLimits:     map[string]float64{},
		UnwantedCategories: map[string]bool{},
	}

	rows, err := r.db.QueryContext(ctx, "SELECT key, value FROM settings ORDER BY key")
	if err != nil {
		err := fmt.Errorf("could not query settings: %w", err)
		log.Error(err)
		return Settings{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			err := fmt.Errorf("could not scan setting: %w", err)
			log.Error(err)
			return Settings{}, err
		}

		switch {
		case key == keyMonthlyBudget:
			budget, err := strconv.ParseFloat(value.String, 64)
			if err != nil {
				log.Warnf("ignoring malformed monthly budget value %q", value.String)
				continue
			}
			settings.MonthlyBudget = budget
		case key == keyBlockMode:
			settings.BlockModeEnabled = value.String == "1"
		case strings.HasPrefix(key, prefixLimit):
			limit, err := strconv.ParseFloat(value.String, 64)
			if err != nil {
				log.Warnf("ignoring malformed limit value %q for key %s", value.String, key)
				continue
			}
			settings.CategoryLimits[strings.TrimPrefix(key, prefixLimit)] = limit
		case strings.HasPrefix(key, prefixUnwanted):
			if value.String == "1" {
				settings.UnwantedCategories[strings.TrimPrefix(key, prefixUnwanted)] = true
			}
		}
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over settings rows: %w", err)
		log.Error(err)
		return Settings{}, err
	}

	return settings, nil
}

func (r RepositoryImpl) Raw(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT key, value FROM settings ORDER BY key")
	if err != nil {
		err := fmt.Errorf("could not query settings: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	raw := map[string]string{}
	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			err := fmt.Errorf("could not scan setting: %w", err)
			log.Error(err)
			return nil, err
		}
		raw[key] = value.String
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over settings rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return raw, nil
}

func (r RepositoryImpl) SetMonthlyBudget(ctx context.Context, amount float64) error {
	return r.upsert(ctx, keyMonthlyBudget, strconv.FormatFloat(amount, 'f', -1, 64))
}

func (r RepositoryImpl) SetCategoryLimit(ctx context.Context, category string, amount float64) error {
	return r.upsert(ctx, prefixLimit+category, strconv.FormatFloat(amount, 'f', -1, 64))
}

func (r RepositoryImpl) SetUnwanted(ctx context.Context, category string, unwanted bool) error {
	return r.upsert(ctx, prefixUnwanted+category, boolValue(unwanted))
}

func (r RepositoryImpl) SetBlockMode(ctx context.Context, enabled bool) error {
	return r.upsert(ctx, keyBlockMode, boolValue(enabled))
}

// upsert writes a single setting with last-write-wins semantics.
func (r RepositoryImpl) upsert(ctx context.Context, key, value string) error {
	query := `INSERT INTO settings (key, value) VALUES (?, ?)
	          ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		err := fmt.Errorf("could not upsert setting %s: %w", key, err)
		log.Error(err)
		return err
	}
	return nil
}

func boolValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
