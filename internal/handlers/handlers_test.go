package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"kakeibo/internal/calendar"
	"kakeibo/internal/insights"
	"kakeibo/internal/models"
	"kakeibo/internal/pagination"
	"kakeibo/internal/services"
	"kakeibo/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- mock expense service ---

type mockExpenseService struct {
	listExpensesFn  func(ctx context.Context, filter services.ExpenseFilter, page pagination.PageRequest) (*services.ExpenseList, error)
	expensesFn      func(ctx context.Context) ([]models.Expense, error)
	addExpenseFn    func(ctx context.Context, in models.NewExpense) (*models.Expense, error)
	updateExpenseFn func(ctx context.Context, id string, in models.NewExpense) (*models.Expense, error)
	deleteExpenseFn func(ctx context.Context, id string) error
	refreshFn       func(ctx context.Context) ([]models.Expense, error)
	lastError       string
}

func (m *mockExpenseService) ListExpenses(ctx context.Context, filter services.ExpenseFilter, page pagination.PageRequest) (*services.ExpenseList, error) {
	if m.listExpensesFn != nil {
		return m.listExpensesFn(ctx, filter, page)
	}
	return &services.ExpenseList{PageResponse: pagination.Slice([]models.Expense{}, page)}, nil
}

func (m *mockExpenseService) Expenses(ctx context.Context) ([]models.Expense, error) {
	if m.expensesFn != nil {
		return m.expensesFn(ctx)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) AddExpense(ctx context.Context, in models.NewExpense) (*models.Expense, error) {
	if m.addExpenseFn != nil {
		return m.addExpenseFn(ctx, in)
	}
	e := in.Expense()
	return &e, nil
}

func (m *mockExpenseService) UpdateExpense(ctx context.Context, id string, in models.NewExpense) (*models.Expense, error) {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(ctx, id, in)
	}
	e := in.Expense()
	e.ID = id
	return &e, nil
}

func (m *mockExpenseService) DeleteExpense(ctx context.Context, id string) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(ctx, id)
	}
	return nil
}

func (m *mockExpenseService) Refresh(ctx context.Context) ([]models.Expense, error) {
	if m.refreshFn != nil {
		return m.refreshFn(ctx)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) LastError() string { return m.lastError }

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

// --- mock budget service ---

type mockBudgetService struct {
	getBudgetFn    func(ctx context.Context, month calendar.Month) (*models.Budget, error)
	saveBudgetFn   func(ctx context.Context, id string, in models.BudgetInput) (*services.SavedBudget, error)
	deleteBudgetFn func(ctx context.Context, id string) error
}

func (m *mockBudgetService) GetBudget(ctx context.Context, month calendar.Month) (*models.Budget, error) {
	if m.getBudgetFn != nil {
		return m.getBudgetFn(ctx, month)
	}
	return nil, nil
}

func (m *mockBudgetService) SaveBudget(ctx context.Context, id string, in models.BudgetInput) (*services.SavedBudget, error) {
	if m.saveBudgetFn != nil {
		return m.saveBudgetFn(ctx, id, in)
	}
	b := in.Budget()
	return &services.SavedBudget{Budget: &b, Created: true, AllocationsMatch: true}, nil
}

func (m *mockBudgetService) DeleteBudget(ctx context.Context, id string) error {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(ctx, id)
	}
	return nil
}

func (m *mockBudgetService) LastError() string { return "" }

var _ services.BudgetServicer = (*mockBudgetService)(nil)

// --- mock insight service ---

type mockInsightService struct {
	insightsFn  func(ctx context.Context, month calendar.Month, months int) (*services.Insights, error)
	trendFn     func(ctx context.Context, months int) ([]insights.TrendPoint, error)
	remainingFn func(ctx context.Context, month calendar.Month) (*services.RemainingView, error)
}

func (m *mockInsightService) Insights(ctx context.Context, month calendar.Month, months int) (*services.Insights, error) {
	if m.insightsFn != nil {
		return m.insightsFn(ctx, month, months)
	}
	return &services.Insights{Summary: insights.MonthlySummary{Month: month}}, nil
}

func (m *mockInsightService) Trend(ctx context.Context, months int) ([]insights.TrendPoint, error) {
	if m.trendFn != nil {
		return m.trendFn(ctx, months)
	}
	return []insights.TrendPoint{}, nil
}

func (m *mockInsightService) Remaining(ctx context.Context, month calendar.Month) (*services.RemainingView, error) {
	if m.remainingFn != nil {
		return m.remainingFn(ctx, month)
	}
	return &services.RemainingView{Message: insights.EmptyStateMessage(month)}, nil
}

var _ services.InsightServicer = (*mockInsightService)(nil)
