// Package insights derives the Kakeibo views from the cached expenses and a
// month's budget. Every function here is pure: callers pass in the data and
// the current day.
package insights

import (
	"github.com/shopspring/decimal"

	"kakeibo/internal/calendar"
	"kakeibo/internal/models"
)

// overBudgetPercent is the overall budget usage above which the summary flags
// the month.
var overBudgetPercent = decimal.NewFromInt(90)

var hundred = decimal.NewFromInt(100)

// CategoryAmount is the amount spent in one category.
type CategoryAmount struct {
	Category models.Category `json:"category"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
}

// BudgetStatus compares a month's spending with its total budget.
type BudgetStatus struct {
	PercentUsed   int             `json:"percent_used"`
	Remaining     decimal.Decimal `json:"remaining"`
	OverThreshold bool            `json:"over_threshold"`
}

// MonthlySummary is the insight card data for one month.
type MonthlySummary struct {
	Month          calendar.Month   `json:"month"`
	HasData        bool             `json:"has_data"`
	ByCategory     []CategoryAmount `json:"by_category"`
	TotalSpent     decimal.Decimal  `json:"total_spent"`
	AverageDaily   decimal.Decimal  `json:"average_daily"`
	TopCategory    *CategoryAmount  `json:"top_category,omitempty"`
	LargestExpense *models.Expense  `json:"largest_expense,omitempty"`
	BudgetStatus   *BudgetStatus    `json:"budget_status,omitempty"`
}

// Summarize aggregates the expenses dated within month. An empty expense list
// yields a summary with HasData false and nothing computed.
func Summarize(expenses []models.Expense, month calendar.Month, today calendar.Date) MonthlySummary {
	summary := MonthlySummary{Month: month, ByCategory: []CategoryAmount{}}
	if len(expenses) == 0 {
		return summary
	}
	summary.HasData = true

	totals := SpentByCategory(expenses, month)
	for _, c := range models.Categories {
		summary.ByCategory = append(summary.ByCategory, CategoryAmount{Category: c, Label: c.Label(), Amount: totals[c]})
		summary.TotalSpent = summary.TotalSpent.Add(totals[c])
	}

	// Strictly greater keeps the earlier category on ties.
	top := summary.ByCategory[0]
	for _, ca := range summary.ByCategory[1:] {
		if ca.Amount.GreaterThan(top.Amount) {
			top = ca
		}
	}
	summary.TopCategory = &top

	for i := range expenses {
		e := expenses[i]
		if !month.Contains(e.Date) {
			continue
		}
		if summary.LargestExpense == nil || e.Amount.GreaterThan(summary.LargestExpense.Amount) {
			summary.LargestExpense = &e
		}
	}

	if days := elapsedDays(month, today); days > 0 {
		summary.AverageDaily = summary.TotalSpent.Div(decimal.NewFromInt(int64(days))).Round(2)
	}
	return summary
}

// WithBudget attaches the overall budget status. A nil budget leaves the
// summary unchanged.
func (s MonthlySummary) WithBudget(budget *models.Budget) MonthlySummary {
	if budget == nil || !s.HasData {
		return s
	}

	status := &BudgetStatus{Remaining: budget.Total.Sub(s.TotalSpent)}
	if budget.Total.IsPositive() {
		percent := s.TotalSpent.Div(budget.Total).Mul(hundred)
		status.PercentUsed = int(percent.Round(0).IntPart())
		status.OverThreshold = percent.GreaterThan(overBudgetPercent)
	}
	s.BudgetStatus = status
	return s
}

// SpentByCategory sums the expenses dated within month per category. Every
// category is present in the result.
func SpentByCategory(expenses []models.Expense, month calendar.Month) map[models.Category]decimal.Decimal {
	totals := make(map[models.Category]decimal.Decimal, len(models.Categories))
	for _, c := range models.Categories {
		totals[c] = decimal.Zero
	}
	for _, e := range expenses {
		if !month.Contains(e.Date) || !e.Category.Valid() {
			continue
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// elapsedDays is the divisor for the average daily spend: the day of the
// month so far for the current month, the full month for past months and zero
// for months that have not started.
func elapsedDays(month calendar.Month, today calendar.Date) int {
	switch current := today.Month(); {
	case month == current:
		return today.Day()
	case month.Before(current):
		return month.DaysIn()
	default:
		return 0
	}
}
