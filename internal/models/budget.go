package models

import (
	"time"

	"github.com/shopspring/decimal"

	"kakeibo/internal/calendar"
)

// allocationTolerance absorbs rounding in user-entered allocations.
var allocationTolerance = decimal.New(5, -3)

// Budget is the spending plan for one month.
type Budget struct {
	Base
	Month      calendar.Month  `gorm:"uniqueIndex;not null" json:"month"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Needs      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"needs"`
	Wants      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"wants"`
	Culture    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"culture"`
	Unexpected decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unexpected"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Allocation returns the amount budgeted for a category.
func (b *Budget) Allocation(c Category) decimal.Decimal {
	switch c {
	case CategoryNeeds:
		return b.Needs
	case CategoryWants:
		return b.Wants
	case CategoryCulture:
		return b.Culture
	case CategoryUnexpected:
		return b.Unexpected
	}
	return decimal.Zero
}

// AllocatedSum returns the sum of the four category allocations.
func (b *Budget) AllocatedSum() decimal.Decimal {
	return decimal.Sum(b.Needs, b.Wants, b.Culture, b.Unexpected)
}

// AllocationsMatchTotal reports whether the category allocations add up to the
// total within a half-cent tolerance.
func (b *Budget) AllocationsMatchTotal() bool {
	return b.AllocatedSum().Sub(b.Total).Abs().LessThan(allocationTolerance)
}

// BudgetInput holds the user-supplied fields of a budget.
type BudgetInput struct {
	Month      calendar.Month
	Total      decimal.Decimal
	Needs      decimal.Decimal
	Wants      decimal.Decimal
	Culture    decimal.Decimal
	Unexpected decimal.Decimal
}

// Budget returns the unsaved budget described by the input.
func (in BudgetInput) Budget() Budget {
	return Budget{
		Month:      in.Month,
		Total:      in.Total,
		Needs:      in.Needs,
		Wants:      in.Wants,
		Culture:    in.Culture,
		Unexpected: in.Unexpected,
	}
}
