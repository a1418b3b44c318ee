package chart

import (
	"encoding/json"
	"net/http"
)

type CategoryBreakdownDTO struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type MonthlyTrendDTO struct {
	Months []string  `json:"months"`
	Totals []float64 `json:"totals"`
}

type Handler struct {
	service Service
}

func NewChartHandler(service Service) *Handler {
	return &Handler{service}
}

// GetCategoryBreakdown godoc
// @Summary Per-category spending of the current month
// @Tags Charts
// @Produce json
// @Success 200 {object} CategoryBreakdownDTO
// @Router /api/chart/categories [get]
func (handler *Handler) GetCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	breakdown, err := handler.service.CategoryBreakdown(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(CategoryBreakdownDTO{
		Labels: breakdown.Labels,
		Values: breakdown.Values,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetMonthlyTrend godoc
// @Summary Total spending of the last six months, oldest first
// @Tags Charts
// @Produce json
// @Success 200 {object} MonthlyTrendDTO
// @Router /api/chart/trend [get]
func (handler *Handler) GetMonthlyTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := handler.service.MonthlyTrend(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(MonthlyTrendDTO{
		Months: trend.Months,
		Totals: trend.Totals,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
