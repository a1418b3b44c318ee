package export

import (
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service     Service
	spreadsheet Renderer
	report      Renderer
}

func NewExportHandler(service Service, spreadsheet, report Renderer) *Handler {
	return &Handler{
		service:     service,
		spreadsheet: spreadsheet,
		report:      report,
	}
}

// GetSpreadsheet godoc
// @Summary Download the full ledger as an xlsx workbook
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Success 204 "Empty ledger"
// @Router /api/export/spreadsheet [get]
func (handler *Handler) GetSpreadsheet(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, handler.spreadsheet)
}

// GetReport godoc
// @Summary Download the full ledger as a PDF report
// @Tags Export
// @Produce application/pdf
// @Success 200 {file} binary
// @Success 204 "Empty ledger"
// @Router /api/export/report [get]
func (handler *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, handler.report)
}

func (handler *Handler) serve(w http.ResponseWriter, r *http.Request, renderer Renderer) {
	data, err := handler.service.Export(r.Context(), renderer)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		log.Errorf("Export failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", renderer.Filename()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Errorf("Failed to write export response: %v", err)
	}
}
