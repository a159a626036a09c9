package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"kakeibo/internal/calendar"
	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/insights"
	"kakeibo/internal/models"
	"kakeibo/internal/services"
)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	r.GET("/budgets/:month", handler.GetBudget)
	r.PUT("/budgets/:month", handler.SaveBudget)
	r.DELETE("/budgets/id/:id", handler.DeleteBudget)
	r.GET("/budgets/:month/remaining", handler.GetRemaining)
	return r
}

const validBudgetBody = `{"total":3000,"needs":1500,"wants":750,"culture":450,"unexpected":300}`

func TestBudgetHandler_GetBudget(t *testing.T) {
	t.Run("returns 200 with the budget", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetFn: func(_ context.Context, month calendar.Month) (*models.Budget, error) {
				b := models.BudgetInput{Month: month}.Budget()
				b.ID = "b-1"
				return &b, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockInsightService{}))

		rec := doRequest(r, "GET", "/budgets/2026-10", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		budget := parseJSON(t, rec)["budget"].(map[string]interface{})
		if budget["id"] != "b-1" || budget["month"] != "2026-10" {
			t.Errorf("unexpected budget %v", budget)
		}
	})

	t.Run("returns 404 when the month has none", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockInsightService{}))

		rec := doRequest(r, "GET", "/budgets/2026-10", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_NOT_FOUND")
	})

	t.Run("returns 400 on invalid month", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockInsightService{}))

		rec := doRequest(r, "GET", "/budgets/october", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 502 on store failure", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetFn: func(context.Context, calendar.Month) (*models.Budget, error) {
				return nil, apperrors.Wrap(apperrors.ErrBudgetFetchFailed, errors.New("timeout"))
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockInsightService{}))

		rec := doRequest(r, "GET", "/budgets/2026-10", "")

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_FETCH_FAILED")
	})
}

func TestBudgetHandler_SaveBudget(t *testing.T) {
	t.Run("returns 201 when created", func(t *testing.T) {
		var got models.BudgetInput
		svc := &mockBudgetService{
			saveBudgetFn: func(_ context.Context, id string, in models.BudgetInput) (*services.SavedBudget, error) {
				got = in
				if id != "" {
					t.Errorf("expected no id, got %q", id)
				}
				b := in.Budget()
				return &services.SavedBudget{Budget: &b, Created: true, AllocationsMatch: true}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockInsightService{}))

		rec := doRequest(r, "PUT", "/budgets/2026-10", validBudgetBody)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Month.String() != "2026-10" || got.Total.String() != "3000" || got.Unexpected.String() != "300" {
			t.Errorf("unexpected input %+v", got)
		}
	})

	t.Run("returns 200 with warning when updated", func(t *testing.T) {
		svc := &mockBudgetService{
			saveBudgetFn: func(_ context.Context, id string, in models.BudgetInput) (*services.SavedBudget, error) {
				if id != "b-7" {
					t.Errorf("expected id b-7, got %q", id)
				}
				b := in.Budget()
				b.ID = id
				return &services.SavedBudget{Budget: &b, Warning: services.AllocationWarning}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockInsightService{}))

		rec := doRequest(r, "PUT", "/budgets/2026-10",
			`{"id":"b-7","total":3000,"needs":1000,"wants":500,"culture":200,"unexpected":100}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["warning"] != services.AllocationWarning {
			t.Errorf("expected allocation warning, got %v", result["warning"])
		}
		if result["allocations_match"] != false {
			t.Errorf("expected allocations_match false, got %v", result["allocations_match"])
		}
	})

	invalid := []struct {
		name string
		path string
		body string
	}{
		{name: "bad month", path: "/budgets/2026-1", body: validBudgetBody},
		{name: "missing total", path: "/budgets/2026-10", body: `{"needs":1,"wants":1,"culture":1,"unexpected":1}`},
		{name: "negative allocation", path: "/budgets/2026-10", body: `{"total":4,"needs":-1,"wants":1,"culture":1,"unexpected":1}`},
	}
	for _, tt := range invalid {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockInsightService{}))

			rec := doRequest(r, "PUT", tt.path, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}
}

func TestBudgetHandler_DeleteBudget(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotID string
		svc := &mockBudgetService{
			deleteBudgetFn: func(_ context.Context, id string) error {
				gotID = id
				return nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockInsightService{}))

		rec := doRequest(r, "DELETE", "/budgets/id/b-2", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotID != "b-2" {
			t.Errorf("expected id b-2, got %s", gotID)
		}
	})

	t.Run("returns 502 with the delete message", func(t *testing.T) {
		svc := &mockBudgetService{
			deleteBudgetFn: func(context.Context, string) error {
				return apperrors.Wrap(apperrors.ErrBudgetDeleteFailed, errors.New("boom"))
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockInsightService{}))

		rec := doRequest(r, "DELETE", "/budgets/id/b-2", "")

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "BUDGET_DELETE_FAILED")
		if msg := result["error"].(map[string]interface{})["message"]; msg != "Error deleting budget" {
			t.Errorf("unexpected message %v", msg)
		}
	})
}

func TestBudgetHandler_GetRemaining(t *testing.T) {
	t.Run("empty state", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockInsightService{}))

		rec := doRequest(r, "GET", "/budgets/2026-10/remaining", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["message"] != "No budget set for October 2026. Please set your budget first." {
			t.Errorf("unexpected message %v", result["message"])
		}
		if _, ok := result["remaining"]; ok {
			t.Error("expected no remaining view")
		}
	})

	t.Run("computed view", func(t *testing.T) {
		svc := &mockInsightService{
			remainingFn: func(_ context.Context, month calendar.Month) (*services.RemainingView, error) {
				return &services.RemainingView{Remaining: &insights.RemainingBudget{Month: month, BudgetID: "b-1"}}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, svc))

		rec := doRequest(r, "GET", "/budgets/2026-10/remaining", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		remaining := parseJSON(t, rec)["remaining"].(map[string]interface{})
		if remaining["budget_id"] != "b-1" {
			t.Errorf("unexpected remaining view %v", remaining)
		}
	})
}
