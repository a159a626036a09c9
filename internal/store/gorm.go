package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"kakeibo/internal/calendar"
	"kakeibo/internal/models"
)

// GormStore is the Store backed by a gorm connection (hosted Postgres or SQLite).
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a GormStore on db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ListExpenses returns all expenses ordered by date, newest first.
func (s *GormStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.WithContext(ctx).Order("date DESC").Order("created_at DESC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// InsertExpense creates an expense and returns the stored row.
func (s *GormStore) InsertExpense(ctx context.Context, in models.NewExpense) (*models.Expense, error) {
	expense := in.Expense()
	if err := s.db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	return &expense, nil
}

// UpdateExpense replaces every user-supplied field of the expense.
func (s *GormStore) UpdateExpense(ctx context.Context, id string, in models.NewExpense) (*models.Expense, error) {
	result := s.db.WithContext(ctx).Model(&models.Expense{}).Where("id = ?", id).Updates(map[string]interface{}{
		"date":        in.Date,
		"amount":      in.Amount,
		"description": in.Description,
		"category":    in.Category,
	})
	if result.Error != nil {
		return nil, fmt.Errorf("update expense %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var expense models.Expense
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&expense).Error; err != nil {
		return nil, fmt.Errorf("reload expense %s: %w", id, err)
	}
	return &expense, nil
}

// DeleteExpense removes the expense with the given id.
func (s *GormStore) DeleteExpense(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Expense{})
	if result.Error != nil {
		return fmt.Errorf("delete expense %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindBudget returns the budget with the given id.
func (s *GormStore) FindBudget(ctx context.Context, id string) (*models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("find budget %s: %w", id, err)
	}
	if len(budgets) == 0 {
		return nil, ErrNotFound
	}
	return &budgets[0], nil
}

// FindBudgetByMonth returns the budget for month, or nil when none exists.
func (s *GormStore) FindBudgetByMonth(ctx context.Context, month calendar.Month) (*models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.WithContext(ctx).Where("month = ?", month).Limit(1).Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("find budget %s: %w", month, err)
	}
	if len(budgets) == 0 {
		return nil, nil
	}
	return &budgets[0], nil
}

// InsertBudget creates a budget and returns the stored row.
func (s *GormStore) InsertBudget(ctx context.Context, in models.BudgetInput) (*models.Budget, error) {
	budget := in.Budget()
	if err := s.db.WithContext(ctx).Create(&budget).Error; err != nil {
		return nil, fmt.Errorf("insert budget %s: %w", in.Month, err)
	}
	return &budget, nil
}

// UpdateBudget replaces the totals of the budget with the given id.
func (s *GormStore) UpdateBudget(ctx context.Context, id string, in models.BudgetInput) (*models.Budget, error) {
	result := s.db.WithContext(ctx).Model(&models.Budget{}).Where("id = ?", id).Updates(map[string]interface{}{
		"month":      in.Month,
		"total":      in.Total,
		"needs":      in.Needs,
		"wants":      in.Wants,
		"culture":    in.Culture,
		"unexpected": in.Unexpected,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return nil, fmt.Errorf("update budget %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var budget models.Budget
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&budget).Error; err != nil {
		return nil, fmt.Errorf("reload budget %s: %w", id, err)
	}
	return &budget, nil
}

// DeleteBudget removes the budget with the given id.
func (s *GormStore) DeleteBudget(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("delete budget %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
