package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/chandra2117/expense/pkg/expense"
)

// PDFRenderer writes the ledger as a one-column-per-field report with a
// title line. fpdf paginates automatically.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(expenses []expense.Expense) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Expense Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{15, 30, 40, 70, 30}
	headers := []string{"ID", "Amount", "Category", "Description", "Date"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, e := range expenses {
		cells := []string{
			fmt.Sprintf("%d", e.ID),
			fmt.Sprintf("%.2f", e.Amount),
			e.Category,
			e.Description,
			e.Date,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, fmt.Errorf("could not serialize pdf: %w", err)
	}
	return buffer.Bytes(), nil
}

func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

func (r *PDFRenderer) Filename() string {
	return "expenses.pdf"
}
