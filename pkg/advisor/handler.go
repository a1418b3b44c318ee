package advisor

import (
	"encoding/json"
	"net/http"

	"github.com/chandra2117/expense/internal/utils"
)

type SuggestionsDTO struct {
	Month       string   `json:"month"`
	Spent       float64  `json:"spent"`
	Projected   float64  `json:"projected"`
	Budget      float64  `json:"budget"`
	Suggestions []string `json:"suggestions"`
}

type Handler struct {
	service Service
	clock   utils.Clock
}

func NewAdvisorHandler(service Service, clock utils.Clock) *Handler {
	return &Handler{service: service, clock: clock}
}

// GetSuggestions godoc
// @Summary Month-end projection and spending advice for the current month
// @Tags Advisor
// @Produce json
// @Success 200 {object} SuggestionsDTO
// @Router /api/suggestions [get]
func (handler *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	now := handler.clock.Now()
	year, month := now.Year(), int(now.Month())

	projection, err := handler.service.ProjectedMonthEndSpend(r.Context(), year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	suggestions, err := handler.service.Recommendations(r.Context(), year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	dto := SuggestionsDTO{
		Month:       now.Format("2006-01"),
		Spent:       projection.Spent,
		Projected:   projection.Projected,
		Budget:      projection.Budget,
		Suggestions: suggestions,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
