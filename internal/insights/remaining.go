package insights

import (
	"github.com/shopspring/decimal"

	"kakeibo/internal/calendar"
	"kakeibo/internal/models"
)

// Band is the progress bar colour hint for a percentage used.
type Band string

const (
	BandNormal   Band = "normal"
	BandWarning  Band = "warning"
	BandCritical Band = "critical"
)

// BandFor maps a percentage used to its band: 90 and above is critical, 75 and
// above is a warning.
func BandFor(percent int) Band {
	switch {
	case percent >= 90:
		return BandCritical
	case percent >= 75:
		return BandWarning
	default:
		return BandNormal
	}
}

// PercentUsed returns round(spent/budgeted*100) clamped to [0, 100], or 0 when
// nothing is budgeted.
func PercentUsed(spent, budgeted decimal.Decimal) int {
	if !budgeted.IsPositive() {
		return 0
	}
	p := spent.Div(budgeted).Mul(hundred).Round(0).IntPart()
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return int(p)
}

// Line is one row of the remaining-budget view.
type Line struct {
	Category    models.Category `json:"category,omitempty"`
	Label       string          `json:"label"`
	Budgeted    decimal.Decimal `json:"budgeted"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed int             `json:"percent_used"`
	Band        Band            `json:"band"`
}

func newLine(label string, budgeted, spent decimal.Decimal) Line {
	p := PercentUsed(spent, budgeted)
	return Line{
		Label:       label,
		Budgeted:    budgeted,
		Spent:       spent,
		Remaining:   budgeted.Sub(spent),
		PercentUsed: p,
		Band:        BandFor(p),
	}
}

// RemainingBudget is the per-category and overall remaining budget for a month.
type RemainingBudget struct {
	Month      calendar.Month `json:"month"`
	BudgetID   string         `json:"budget_id"`
	Total      Line           `json:"total"`
	Categories []Line         `json:"categories"`
}

// Remaining computes remaining = budgeted - spent for every category and
// overall. Remaining amounts are not floored, so overspending shows as a
// negative value. It reports false when there is no budget for the month.
func Remaining(budget *models.Budget, expenses []models.Expense, month calendar.Month) (*RemainingBudget, bool) {
	if budget == nil {
		return nil, false
	}

	spent := SpentByCategory(expenses, month)
	view := &RemainingBudget{Month: month, BudgetID: budget.ID, Categories: make([]Line, 0, len(models.Categories))}

	totalSpent := decimal.Zero
	for _, c := range models.Categories {
		line := newLine(c.Label(), budget.Allocation(c), spent[c])
		line.Category = c
		view.Categories = append(view.Categories, line)
		totalSpent = totalSpent.Add(spent[c])
	}
	view.Total = newLine("Total", budget.Total, totalSpent)
	return view, true
}

// EmptyStateMessage is shown in place of the remaining-budget view when the
// month has no budget.
func EmptyStateMessage(month calendar.Month) string {
	return "No budget set for " + month.Label() + ". Please set your budget first."
}
