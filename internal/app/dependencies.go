package app

import (
	"database/sql"

	log "github.com/sirupsen/logrus"

	"github.com/chandra2117/expense/internal/event_bus"
	"github.com/chandra2117/expense/internal/utils"
	"github.com/chandra2117/expense/pkg/advisor"
	"github.com/chandra2117/expense/pkg/chart"
	"github.com/chandra2117/expense/pkg/expense"
	"github.com/chandra2117/expense/pkg/export"
	"github.com/chandra2117/expense/pkg/settings"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	SettingsRepo    settings.Repository
	SettingsService settings.Service
	SettingsHandler *settings.Handler

	ExpenseRepo    expense.Repository
	ExpenseService expense.Service
	ExpenseHandler *expense.Handler

	AdvisorService advisor.Service
	AdvisorHandler *advisor.Handler

	ChartService chart.Service
	ChartHandler *chart.Handler

	ExportService export.Service
	ExportHandler *export.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	registerAuditLog(deps.EventBus)

	deps.Clock = utils.SystemClock{}

	deps.SettingsRepo = settings.NewSettingsRepo(db)
	deps.SettingsService = settings.NewSettingsService(deps.SettingsRepo)
	deps.SettingsHandler = settings.NewSettingsHandler(deps.SettingsService)

	deps.ExpenseRepo = expense.NewExpenseRepo(db)
	deps.ExpenseService = expense.NewExpenseService(deps.ExpenseRepo, deps.SettingsService, deps.EventBus)
	deps.ExpenseHandler = expense.NewExpenseHandler(deps.ExpenseService)

	deps.AdvisorService = advisor.NewAdvisorService(deps.ExpenseRepo, deps.SettingsService, deps.Clock)
	deps.AdvisorHandler = advisor.NewAdvisorHandler(deps.AdvisorService, deps.Clock)

	deps.ChartService = chart.NewChartService(deps.ExpenseRepo, deps.Clock)
	deps.ChartHandler = chart.NewChartHandler(deps.ChartService)

	deps.ExportService = export.NewExportService(deps.ExpenseRepo)
	deps.ExportHandler = export.NewExportHandler(deps.ExportService, export.NewExcelRenderer(), export.NewPDFRenderer())

	return deps
}

// registerAuditLog subscribes structured audit logging to ledger events.
func registerAuditLog(bus *event_bus.EventBus) {
	bus.Subscribe(event_bus.ExpenseRecordedEvent, func(e event_bus.Event) error {
		recorded, ok := e.Data.(event_bus.ExpenseRecorded)
		if !ok {
			return nil
		}
		log.WithFields(log.Fields{
			"id":       recorded.ID,
			"amount":   recorded.Amount,
			"category": recorded.Category,
			"date":     recorded.Date,
			"forced":   recorded.Forced,
		}).Info("Expense recorded")
		return nil
	})
	bus.Subscribe(event_bus.ExpenseDeletedEvent, func(e event_bus.Event) error {
		deleted, ok := e.Data.(event_bus.ExpenseDeleted)
		if !ok {
			return nil
		}
		log.WithFields(log.Fields{"id": deleted.ID}).Info("Expense deleted")
		return nil
	})
}
