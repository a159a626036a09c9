package services

import (
	"context"

	"kakeibo/internal/calendar"
	"kakeibo/internal/insights"
	"kakeibo/internal/models"
	"kakeibo/internal/pagination"
)

// Cache reconciliation policies applied after a successful write.
const (
	// ReconcileReplace refetches the full list from the store.
	ReconcileReplace = "replace"
	// ReconcileMerge applies the row returned by the store to the cached list.
	ReconcileMerge = "merge"
)

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	Month    *calendar.Month
	Category *models.Category
}

// ExpenseList is a page of cached expenses together with the last store
// failure, if any.
type ExpenseList struct {
	pagination.PageResponse[models.Expense]
	Error string `json:"error,omitempty"`
}

// ExpenseServicer defines the contract for the expense cache.
type ExpenseServicer interface {
	ListExpenses(ctx context.Context, filter ExpenseFilter, page pagination.PageRequest) (*ExpenseList, error)
	Expenses(ctx context.Context) ([]models.Expense, error)
	AddExpense(ctx context.Context, in models.NewExpense) (*models.Expense, error)
	UpdateExpense(ctx context.Context, id string, in models.NewExpense) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	Refresh(ctx context.Context) ([]models.Expense, error)
	LastError() string
}

// SavedBudget is the result of saving a budget.
type SavedBudget struct {
	Budget           *models.Budget `json:"budget"`
	Created          bool           `json:"created"`
	AllocationsMatch bool           `json:"allocations_match"`
	Warning          string         `json:"warning,omitempty"`
}

// BudgetServicer defines the contract for monthly budgets.
type BudgetServicer interface {
	// GetBudget returns the month's budget, or nil when none is set.
	GetBudget(ctx context.Context, month calendar.Month) (*models.Budget, error)
	// SaveBudget updates the budget with id, or the month's existing budget,
	// and creates one otherwise.
	SaveBudget(ctx context.Context, id string, in models.BudgetInput) (*SavedBudget, error)
	DeleteBudget(ctx context.Context, id string) error
	LastError() string
}

// Insights is the full insights tab for one month.
type Insights struct {
	Summary    insights.MonthlySummary `json:"summary"`
	Trend      []insights.TrendPoint   `json:"trend"`
	Reflection []insights.Question     `json:"reflection"`
	Message    string                  `json:"message,omitempty"`
}

// RemainingView is the remaining-budget panel: either the computed view or the
// empty-state message.
type RemainingView struct {
	Remaining *insights.RemainingBudget `json:"remaining,omitempty"`
	Message   string                    `json:"message,omitempty"`
}

// InsightServicer defines the contract for the derived views.
type InsightServicer interface {
	Insights(ctx context.Context, month calendar.Month, months int) (*Insights, error)
	Trend(ctx context.Context, months int) ([]insights.TrendPoint, error)
	Remaining(ctx context.Context, month calendar.Month) (*RemainingView, error)
}

// ActivityRecorder records successful writes.
type ActivityRecorder interface {
	Record(ctx context.Context, eventType, resourceID string, month calendar.Month, data any)
}
