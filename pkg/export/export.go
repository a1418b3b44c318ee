package export

import (
	"context"
	"errors"

	"github.com/chandra2117/expense/pkg/expense"
)

// ErrNoData is returned when an export is requested against an empty ledger.
var ErrNoData = errors.New("no expenses to export")

// Renderer turns a ledger listing into a downloadable document.
type Renderer interface {
	Render(expenses []expense.Expense) ([]byte, error)
	ContentType() string
	Filename() string
}

type Service interface {
	// Export renders the full ledger with the given renderer. Returns
	// ErrNoData when the ledger is empty.
	Export(ctx context.Context, renderer Renderer) ([]byte, error)
}

type ServiceImpl struct {
	expenses expense.Repository
}

func NewExportService(expenses expense.Repository) *ServiceImpl {
	return &ServiceImpl{expenses: expenses}
}

func (s *ServiceImpl) Export(ctx context.Context, renderer Renderer) ([]byte, error) {
	expenses, err := s.expenses.Find(ctx, expense.Filter{})
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, ErrNoData
	}
	return renderer.Render(expenses)
}
