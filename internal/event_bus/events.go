package event_bus

const (
	ExpenseRecordedEvent EventType = "expense.recorded"
	ExpenseDeletedEvent  EventType = "expense.deleted"
)

// ExpenseRecorded is published after an expense row has been persisted,
// whether through the policy-checked path or a force-add.
type ExpenseRecorded struct {
	ID       int
	Amount   float64
	Category string
	Date     string
	Forced   bool
}

// ExpenseDeleted is published after an id-based delete.
type ExpenseDeleted struct {
	ID int
}
