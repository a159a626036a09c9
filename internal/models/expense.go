package models

import (
	"github.com/shopspring/decimal"

	"kakeibo/internal/calendar"
)

// MaxDescriptionLength is the longest description an expense may carry, in characters.
const MaxDescriptionLength = 255

// Expense is a single logged spend.
type Expense struct {
	Base
	Date        calendar.Date   `gorm:"not null;index" json:"date"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Category    Category        `gorm:"type:text;not null" json:"category"`
}

// NewExpense holds the user-supplied fields of an expense before the store
// assigns an ID and creation timestamp.
type NewExpense struct {
	Date        calendar.Date
	Amount      decimal.Decimal
	Description string
	Category    Category
}

// Month returns the month the expense belongs to.
func (e Expense) Month() calendar.Month {
	return e.Date.Month()
}

// Expense returns the unsaved expense described by the input.
func (in NewExpense) Expense() Expense {
	return Expense{
		Date:        in.Date,
		Amount:      in.Amount,
		Description: in.Description,
		Category:    in.Category,
	}
}
