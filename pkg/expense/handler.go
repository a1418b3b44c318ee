package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/chandra2117/expense/internal/rest"
)

type ExpenseDTO struct {
	ID          int     `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
}

type SubmissionDTO struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
}

// OutcomeDTO is the decision response for a submission. Warning details are
// present only when the decision is "warned"; the expense is present only
// when the decision is "accepted", since warnings withhold the write.
type OutcomeDTO struct {
	Decision     string      `json:"decision"`
	Reason       string      `json:"reason,omitempty"`
	Message      string      `json:"message,omitempty"`
	Limit        float64     `json:"limit,omitempty"`
	CurrentSpent float64     `json:"currentSpent,omitempty"`
	Budget       float64     `json:"budget,omitempty"`
	Spent        float64     `json:"spent,omitempty"`
	Expense      *ExpenseDTO `json:"expense,omitempty"`
}

type Handler struct {
	service Service
}

func NewExpenseHandler(service Service) *Handler {
	return &Handler{service}
}

// Submit godoc
// @Summary Submit a new expense
// @Description Runs the budget and category policy checks and persists the expense only when all of them pass
// @Tags Expenses
// @Accept json
// @Produce json
// @Param expense body SubmissionDTO true "Expense to record"
// @Success 201 {object} OutcomeDTO "Accepted and persisted"
// @Success 200 {object} OutcomeDTO "Warning, write withheld"
// @Failure 400 {object} rest.ErrorResponse
// @Failure 403 {object} rest.ErrorResponse "Category is blocked"
// @Router /api/expenses [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log.Debug("Submitting expense")
	var dto SubmissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeInvalidInput(w, err.Error())
		return
	}

	outcome, err := handler.service.Submit(r.Context(), toSubmission(dto))
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrInvalidDate) {
			writeInvalidInput(w, err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch outcome.Decision {
	case DecisionRejected:
		w.WriteHeader(http.StatusForbidden)
		if err := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   outcome.Reason,
			Details: outcome.Message,
		}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	case DecisionWarned:
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusCreated)
	}
	if err := json.NewEncoder(w).Encode(toOutcomeDTO(outcome)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ForceAdd godoc
// @Summary Record an expense bypassing policy checks
// @Tags Expenses
// @Accept json
// @Produce json
// @Param expense body SubmissionDTO true "Expense to record"
// @Success 201 {object} ExpenseDTO
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/expenses/force [post]
func (handler *Handler) ForceAdd(w http.ResponseWriter, r *http.Request) {
	log.Debug("Force-adding expense")
	var dto SubmissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeInvalidInput(w, err.Error())
		return
	}

	expense, err := handler.service.ForceAdd(r.Context(), toSubmission(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toExpenseDTO(expense)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// List godoc
// @Summary List expenses
// @Description List ledger records, optionally narrowed by date range and category
// @Tags Expenses
// @Produce json
// @Param fromDate query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param toDate query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param category query string false "Category filter; 'All' or absent means every category"
// @Success 200 {array} ExpenseDTO
// @Router /api/expenses [get]
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := Filter{
		FromDate: r.URL.Query().Get("fromDate"),
		ToDate:   r.URL.Query().Get("toDate"),
		Category: r.URL.Query().Get("category"),
	}

	expenses, err := handler.service.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		dtos = append(dtos, toExpenseDTO(expense))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Delete godoc
// @Summary Delete an expense by id
// @Tags Expenses
// @Param expenseId path int true "Expense ID"
// @Success 204 "No Content"
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/expenses/{expenseId} [delete]
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["expenseId"])
	if err != nil {
		writeInvalidInput(w, "expenseId must be an integer")
		return
	}

	if err := handler.service.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toSubmission(dto SubmissionDTO) Submission {
	return Submission{
		Amount:      dto.Amount,
		Category:    dto.Category,
		Description: dto.Description,
		Date:        dto.Date,
	}
}

func toExpenseDTO(expense Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:          expense.ID,
		Amount:      expense.Amount,
		Category:    expense.Category,
		Description: expense.Description,
		Date:        expense.Date,
	}
}

func toOutcomeDTO(outcome Outcome) OutcomeDTO {
	dto := OutcomeDTO{
		Decision:     string(outcome.Decision),
		Reason:       outcome.Reason,
		Message:      outcome.Message,
		Limit:        outcome.Limit,
		CurrentSpent: outcome.CurrentSpent,
		Budget:       outcome.Budget,
		Spent:        outcome.Spent,
	}
	if outcome.Decision == DecisionAccepted {
		expense := toExpenseDTO(outcome.Expense)
		dto.Expense = &expense
	}
	return dto
}

func writeInvalidInput(w http.ResponseWriter, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   "invalid_input",
		Details: details,
	})
}
