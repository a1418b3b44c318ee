package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/chandra2117/expense/internal/event_bus"
	"github.com/chandra2117/expense/pkg/settings"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrInvalidDate   = errors.New("date must be formatted as YYYY-MM-DD")
)

// Decision states what the policy checks concluded about a submission.
type Decision string

const (
	DecisionAccepted Decision = "accepted"
	DecisionWarned   Decision = "warned"
	DecisionRejected Decision = "rejected"
)

// Reason codes carried alongside non-accepted decisions.
const (
	ReasonCategoryLimit   = "category_limit_exceeded"
	ReasonCategoryBlocked = "category_blocked"
	ReasonBudgetExceeded  = "budget_exceeded"
)

// Submission is a candidate expense before it has passed the policy checks.
type Submission struct {
	Amount      float64
	Category    string
	Description string
	Date        string
}

// Outcome describes what happened to a submission. Expense is set only on an
// accepted decision; warned and rejected submissions leave no trace in the
// ledger and must be resubmitted through ForceAdd to be recorded.
type Outcome struct {
	Decision Decision
	Reason   string
	Message  string
	// Limit and CurrentSpent are set for category limit warnings.
	Limit        float64
	CurrentSpent float64
	// Budget and Spent are set for budget warnings.
	Budget  float64
	Spent   float64
	Expense Expense
}

type Service interface {
	// Submit runs the policy checks against the candidate and persists it
	// only when every check passes. Checks run in a fixed order: category
	// limit first, then unwanted category, then overall budget. The first
	// warning or rejection returns immediately and withholds the write; the
	// caller decides whether to resubmit through ForceAdd.
	Submit(ctx context.Context, submission Submission) (Outcome, error)
	// ForceAdd persists the candidate without any check. The payload is a
	// trusted input; amount and date are stored as given.
	ForceAdd(ctx context.Context, submission Submission) (Expense, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter Filter) ([]Expense, error)
}

type ServiceImpl struct {
	repo     Repository
	settings settings.Provider
	events   *event_bus.EventBus
}

func NewExpenseService(repo Repository, settingsProvider settings.Provider, events *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{
		repo:     repo,
		settings: settingsProvider,
		events:   events,
	}
}

func (s *ServiceImpl) Submit(ctx context.Context, submission Submission) (Outcome, error) {
	if err := validate(submission); err != nil {
		return Outcome{}, err
	}

	current, err := s.settings.Load(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("could not load settings: %w", err)
	}

	year, month := submissionMonth(submission)

	if limit, ok := current.CategoryLimit(submission.Category); ok {
		spent, err := s.repo.TotalForMonthAndCategory(ctx, year, month, submission.Category)
		if err != nil {
			return Outcome{}, err
		}
		if spent+submission.Amount > limit {
			return Outcome{
				Decision:     DecisionWarned,
				Reason:       ReasonCategoryLimit,
				Message:      fmt.Sprintf("Warning: %s limit is %.0f, already spent %.0f this month.", submission.Category, limit, spent),
				Limit:        limit,
				CurrentSpent: spent,
			}, nil
		}
	}

	if current.IsUnwanted(submission.Category) && current.BlockModeEnabled {
		log.Infof("Rejected expense in blocked category %s", submission.Category)
		return Outcome{
			Decision: DecisionRejected,
			Reason:   ReasonCategoryBlocked,
			Message:  fmt.Sprintf("Blocked: %s is marked unwanted and block mode is on.", submission.Category),
		}, nil
	}

	if current.MonthlyBudget > 0 {
		spent, err := s.repo.TotalForMonth(ctx, year, month)
		if err != nil {
			return Outcome{}, err
		}
		if spent+submission.Amount > current.MonthlyBudget {
			return Outcome{
				Decision: DecisionWarned,
				Reason:   ReasonBudgetExceeded,
				Message:  fmt.Sprintf("Warning: this brings the month to %.0f, over the %.0f budget.", spent+submission.Amount, current.MonthlyBudget),
				Budget:   current.MonthlyBudget,
				Spent:    spent,
			}, nil
		}
	}

	stored, err := s.store(ctx, submission, false)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Decision: DecisionAccepted, Expense: stored}, nil
}

func (s *ServiceImpl) ForceAdd(ctx context.Context, submission Submission) (Expense, error) {
	return s.store(ctx, submission, true)
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.events.Publish(event_bus.NewEvent(ctx, event_bus.ExpenseDeletedEvent, event_bus.ExpenseDeleted{ID: id})); err != nil {
		log.Warnf("Failed to publish expense deleted event: %v", err)
	}
	return nil
}

func (s *ServiceImpl) List(ctx context.Context, filter Filter) ([]Expense, error) {
	return s.repo.Find(ctx, filter)
}

func (s *ServiceImpl) store(ctx context.Context, submission Submission, forced bool) (Expense, error) {
	expense := Expense{
		Amount:      submission.Amount,
		Category:    submission.Category,
		Description: submission.Description,
		Date:        submission.Date,
	}
	id, err := s.repo.Store(ctx, expense)
	if err != nil {
		return Expense{}, err
	}
	expense.ID = id

	if err := s.events.Publish(event_bus.NewEvent(ctx, event_bus.ExpenseRecordedEvent, event_bus.ExpenseRecorded{
		ID:       id,
		Amount:   expense.Amount,
		Category: expense.Category,
		Date:     expense.Date,
		Forced:   forced,
	})); err != nil {
		log.Warnf("Failed to publish expense recorded event: %v", err)
	}

	return expense, nil
}

func validate(submission Submission) error {
	if submission.Amount <= 0 {
		return ErrInvalidAmount
	}
	if _, err := time.Parse("2006-01-02", submission.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func submissionMonth(submission Submission) (int, int) {
	date, _ := time.Parse("2006-01-02", submission.Date)
	return date.Year(), int(date.Month())
}
