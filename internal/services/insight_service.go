package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"kakeibo/internal/calendar"
	"kakeibo/internal/insights"
	"kakeibo/internal/logger"
	"kakeibo/internal/models"
)

// NoDataMessage replaces the insights tab while no expense has been logged.
const NoDataMessage = "No expense data available yet. Add some expenses to see insights."

// insightService derives the insight views from the expense cache and the
// month's budget.
type insightService struct {
	expenses ExpenseServicer
	budgets  BudgetServicer
	now      func() time.Time
}

// NewInsightService creates a new InsightServicer. now defaults to time.Now.
func NewInsightService(expenses ExpenseServicer, budgets BudgetServicer, now func() time.Time) InsightServicer {
	if now == nil {
		now = time.Now
	}
	return &insightService{expenses: expenses, budgets: budgets, now: now}
}

// Insights builds the summary, trend and reflection questions for month. The
// budget status is omitted when the budget cannot be fetched.
func (s *insightService) Insights(ctx context.Context, month calendar.Month, months int) (*Insights, error) {
	var (
		list   []models.Expense
		budget *models.Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = s.expenses.Expenses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		budget, err = s.budgets.GetBudget(gctx, month)
		if err != nil {
			logger.Get().Warnw("insights without budget status", "month", month.String(), "error", err)
			budget = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := insights.Summarize(list, month, calendar.DateOf(s.now())).WithBudget(budget)
	result := &Insights{
		Summary:    summary,
		Trend:      insights.Trend(list, month, months),
		Reflection: insights.Reflection(summary.TotalSpent),
	}
	if !summary.HasData {
		result.Message = NoDataMessage
	}
	return result, nil
}

// Trend returns the spending trend ending with the current month.
func (s *insightService) Trend(ctx context.Context, months int) ([]insights.TrendPoint, error) {
	list, err := s.expenses.Expenses(ctx)
	if err != nil {
		return nil, err
	}
	return insights.Trend(list, calendar.MonthOf(s.now()), months), nil
}

// Remaining computes the remaining-budget panel, or the empty state when the
// month has no budget.
func (s *insightService) Remaining(ctx context.Context, month calendar.Month) (*RemainingView, error) {
	var (
		list   []models.Expense
		budget *models.Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = s.expenses.Expenses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		budget, err = s.budgets.GetBudget(gctx, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view, ok := insights.Remaining(budget, list, month)
	if !ok {
		return &RemainingView{Message: insights.EmptyStateMessage(month)}, nil
	}
	return &RemainingView{Remaining: view}, nil
}
