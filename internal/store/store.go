// Package store defines the remote store contract for expenses and budgets and
// its backends: gorm (hosted Postgres or local SQLite) and the hosted service's
// REST API.
package store

import (
	"context"
	"errors"

	"kakeibo/internal/calendar"
	"kakeibo/internal/models"
)

// Table names, shared by every backend.
const (
	TableExpenses = "expenses"
	TableBudgets  = "budgets"
)

// ErrNotFound is returned when an update or delete matches no row.
var ErrNotFound = errors.New("store: row not found")

// ExpenseStore reads and writes the expenses table.
type ExpenseStore interface {
	// ListExpenses returns every expense, newest date first.
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	InsertExpense(ctx context.Context, in models.NewExpense) (*models.Expense, error)
	UpdateExpense(ctx context.Context, id string, in models.NewExpense) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

// BudgetStore reads and writes the budgets table.
type BudgetStore interface {
	// FindBudget returns the budget with id, or ErrNotFound.
	FindBudget(ctx context.Context, id string) (*models.Budget, error)
	// FindBudgetByMonth returns the month's budget, or nil when none exists.
	FindBudgetByMonth(ctx context.Context, month calendar.Month) (*models.Budget, error)
	InsertBudget(ctx context.Context, in models.BudgetInput) (*models.Budget, error)
	UpdateBudget(ctx context.Context, id string, in models.BudgetInput) (*models.Budget, error)
	DeleteBudget(ctx context.Context, id string) error
}

// Store is the full remote store.
type Store interface {
	ExpenseStore
	BudgetStore
}
