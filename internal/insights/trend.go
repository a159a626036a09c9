package insights

import (
	"github.com/shopspring/decimal"

	"kakeibo/internal/calendar"
	"kakeibo/internal/models"
)

// DefaultTrendMonths is the length of the spending trend chart.
const DefaultTrendMonths = 6

// TrendPoint is the total spend of one month.
type TrendPoint struct {
	Month calendar.Month  `json:"month"`
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// Trend returns the total spend for the n months ending with current, oldest
// first. Months without expenses are present with a zero total. n below one
// falls back to DefaultTrendMonths.
func Trend(expenses []models.Expense, current calendar.Month, n int) []TrendPoint {
	if n < 1 {
		n = DefaultTrendMonths
	}

	first := current.AddMonths(-(n - 1))
	points := make([]TrendPoint, n)
	for i := range points {
		m := first.AddMonths(i)
		points[i] = TrendPoint{Month: m, Label: m.ShortLabel(), Total: decimal.Zero}
	}

	for _, e := range expenses {
		m := e.Month()
		if m.Before(first) || current.Before(m) {
			continue
		}
		i := monthsBetween(first, m)
		points[i].Total = points[i].Total.Add(e.Amount)
	}
	return points
}

func monthsBetween(from, to calendar.Month) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
