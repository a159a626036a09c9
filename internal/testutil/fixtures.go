package testutil

import (
	"sync/atomic"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"kakeibo/internal/calendar"
	"kakeibo/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Amount parses a decimal literal, failing loudly on typos in test tables.
func Amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Date parses a YYYY-MM-DD literal.
func Date(s string) calendar.Date {
	d, err := calendar.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Month parses a YYYY-MM literal.
func Month(s string) calendar.Month {
	m, err := calendar.ParseMonth(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FakeExpense returns a random expense input dated within month.
func FakeExpense(month calendar.Month) models.NewExpense {
	return models.NewExpense{
		Date:        calendar.NewDate(month.Year(), month.Month(), gofakeit.IntRange(1, month.DaysIn())),
		Amount:      decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2),
		Description: gofakeit.Sentence(3),
		Category:    models.Categories[gofakeit.IntRange(0, len(models.Categories)-1)],
	}
}

// NewExpense builds an expense input with a fake description.
func NewExpense(date string, category models.Category, amount string) models.NewExpense {
	return models.NewExpense{
		Date:        Date(date),
		Amount:      Amount(amount),
		Description: gofakeit.Sentence(3),
		Category:    category,
	}
}

// CreateTestExpense inserts an expense row.
func CreateTestExpense(t *testing.T, db *gorm.DB, date string, category models.Category, amount string) *models.Expense {
	t.Helper()

	expense := NewExpense(date, category, amount).Expense()
	if err := db.Create(&expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return &expense
}

// BudgetInput builds a budget input from decimal literals.
func BudgetInput(month, total, needs, wants, culture, unexpected string) models.BudgetInput {
	return models.BudgetInput{
		Month:      Month(month),
		Total:      Amount(total),
		Needs:      Amount(needs),
		Wants:      Amount(wants),
		Culture:    Amount(culture),
		Unexpected: Amount(unexpected),
	}
}

// CreateTestBudget inserts a budget row.
func CreateTestBudget(t *testing.T, db *gorm.DB, month, total, needs, wants, culture, unexpected string) *models.Budget {
	t.Helper()

	budget := BudgetInput(month, total, needs, wants, culture, unexpected).Budget()
	if err := db.Create(&budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return &budget
}
