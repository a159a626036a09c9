package store

import (
	"context"
	"time"

	"kakeibo/internal/calendar"
	"kakeibo/internal/metrics"
	"kakeibo/internal/models"
)

type instrumented struct {
	inner   Store
	metrics *metrics.Metrics
}

// Instrument wraps inner so every call is counted and timed per table,
// operation and outcome.
func Instrument(inner Store, m *metrics.Metrics) Store {
	return &instrumented{inner: inner, metrics: m}
}

func (s *instrumented) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	start := time.Now()
	expenses, err := s.inner.ListExpenses(ctx)
	s.metrics.ObserveStore(TableExpenses, "list", start, err)
	return expenses, err
}

func (s *instrumented) InsertExpense(ctx context.Context, in models.NewExpense) (*models.Expense, error) {
	start := time.Now()
	expense, err := s.inner.InsertExpense(ctx, in)
	s.metrics.ObserveStore(TableExpenses, "insert", start, err)
	return expense, err
}

func (s *instrumented) UpdateExpense(ctx context.Context, id string, in models.NewExpense) (*models.Expense, error) {
	start := time.Now()
	expense, err := s.inner.UpdateExpense(ctx, id, in)
	s.metrics.ObserveStore(TableExpenses, "update", start, err)
	return expense, err
}

func (s *instrumented) DeleteExpense(ctx context.Context, id string) error {
	start := time.Now()
	err := s.inner.DeleteExpense(ctx, id)
	s.metrics.ObserveStore(TableExpenses, "delete", start, err)
	return err
}

func (s *instrumented) FindBudget(ctx context.Context, id string) (*models.Budget, error) {
	start := time.Now()
	budget, err := s.inner.FindBudget(ctx, id)
	s.metrics.ObserveStore(TableBudgets, "get", start, err)
	return budget, err
}

func (s *instrumented) FindBudgetByMonth(ctx context.Context, month calendar.Month) (*models.Budget, error) {
	start := time.Now()
	budget, err := s.inner.FindBudgetByMonth(ctx, month)
	s.metrics.ObserveStore(TableBudgets, "find", start, err)
	return budget, err
}

func (s *instrumented) InsertBudget(ctx context.Context, in models.BudgetInput) (*models.Budget, error) {
	start := time.Now()
	budget, err := s.inner.InsertBudget(ctx, in)
	s.metrics.ObserveStore(TableBudgets, "insert", start, err)
	return budget, err
}

func (s *instrumented) UpdateBudget(ctx context.Context, id string, in models.BudgetInput) (*models.Budget, error) {
	start := time.Now()
	budget, err := s.inner.UpdateBudget(ctx, id, in)
	s.metrics.ObserveStore(TableBudgets, "update", start, err)
	return budget, err
}

func (s *instrumented) DeleteBudget(ctx context.Context, id string) error {
	start := time.Now()
	err := s.inner.DeleteBudget(ctx, id)
	s.metrics.ObserveStore(TableBudgets, "delete", start, err)
	return err
}
