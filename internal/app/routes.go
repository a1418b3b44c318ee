package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Expense ledger
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.Submit).Methods("POST")
	r.HandleFunc("/api/expenses/force", deps.ExpenseHandler.ForceAdd).Methods("POST")
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.List).Methods("GET")
	r.HandleFunc("/api/expenses/{expenseId}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Settings
	r.HandleFunc("/api/settings", deps.SettingsHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/settings/budget", deps.SettingsHandler.SetBudget).Methods("PUT")
	r.HandleFunc("/api/settings/limit", deps.SettingsHandler.SetCategoryLimit).Methods("PUT")
	r.HandleFunc("/api/settings/unwanted", deps.SettingsHandler.MarkUnwanted).Methods("PUT")
	r.HandleFunc("/api/settings/blockmode", deps.SettingsHandler.SetBlockMode).Methods("PUT")

	// Advisor
	r.HandleFunc("/api/suggestions", deps.AdvisorHandler.GetSuggestions).Methods("GET")

	// Charts
	r.HandleFunc("/api/chart/categories", deps.ChartHandler.GetCategoryBreakdown).Methods("GET")
	r.HandleFunc("/api/chart/trend", deps.ChartHandler.GetMonthlyTrend).Methods("GET")

	// Export
	r.HandleFunc("/api/export/spreadsheet", deps.ExportHandler.GetSpreadsheet).Methods("GET")
	r.HandleFunc("/api/export/report", deps.ExportHandler.GetReport).Methods("GET")
}
