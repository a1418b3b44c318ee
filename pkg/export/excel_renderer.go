package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/chandra2117/expense/pkg/expense"
)

const sheetName = "Expenses"

// ExcelRenderer writes the ledger as an xlsx workbook with one sheet, a
// header row and one row per expense.
type ExcelRenderer struct{}

func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

func (r *ExcelRenderer) Render(expenses []expense.Expense) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("could not create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("could not remove default sheet: %w", err)
	}

	header := []any{"ID", "Amount", "Category", "Description", "Date"}
	if err := file.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("could not write header row: %w", err)
	}

	for i, e := range expenses {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{e.ID, e.Amount, e.Category, e.Description, e.Date}
		if err := file.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("could not write row %d: %w", i+2, err)
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("could not serialize workbook: %w", err)
	}
	return buffer.Bytes(), nil
}

func (r *ExcelRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *ExcelRenderer) Filename() string {
	return "expenses.xlsx"
}
