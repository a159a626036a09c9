package integration

import (
	"net/http"
	"strings"
	"testing"

	"kakeibo/internal/models"
	"kakeibo/internal/testutil"
)

func TestExpenseFlow_AddUpdateDelete(t *testing.T) {
	app := setupApp(t)
	app.unlock(t)

	// Step 1: the list starts empty
	rec := app.request("GET", "/api/v1/expenses", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if n := parseJSON(t, rec)["total_items"].(float64); n != 0 {
		t.Fatalf("expected an empty list, got %v", n)
	}

	// Step 2: log three expenses; the list is newest first
	rent := app.addExpense(t, "2026-10-01", "needs", "800", "Rent")
	lunch := app.addExpense(t, "2026-10-12", "wants", "12.5", "Lunch")
	book := app.addExpense(t, "2026-09-28", "culture", "20", "Book")

	rec = app.request("GET", "/api/v1/expenses", "")
	data := parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(data))
	}
	order := []string{lunch, rent, book}
	for i, item := range data {
		if id := item.(map[string]interface{})["id"]; id != order[i] {
			t.Errorf("position %d: expected %s, got %v", i, order[i], id)
		}
	}

	// Step 3: filter by month and category
	rec = app.request("GET", "/api/v1/expenses?month=2026-10&category=needs", "")
	data = parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 1 || data[0].(map[string]interface{})["id"] != rent {
		t.Errorf("expected only the rent expense, got %v", data)
	}

	// Step 4: update moves the book into October as unexpected
	rec = app.request("PUT", "/api/v1/expenses/"+book,
		`{"date":"2026-10-15","amount":25,"category":"unexpected","description":"Repair"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["expense"].(map[string]interface{})
	if updated["category"] != "unexpected" || updated["date"] != "2026-10-15" {
		t.Errorf("unexpected updated expense %v", updated)
	}

	// Step 5: delete removes exactly that expense, remotely and locally
	rec = app.request("DELETE", "/api/v1/expenses/"+lunch, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var count int64
	app.DB.Model(&models.Expense{}).Count(&count)
	if count != 2 {
		t.Errorf("expected 2 stored expenses, got %d", count)
	}

	rec = app.request("GET", "/api/v1/expenses", "")
	data = parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("expected 2 cached expenses, got %d", len(data))
	}
	for _, item := range data {
		if item.(map[string]interface{})["id"] == lunch {
			t.Error("deleted expense is still listed")
		}
	}

	// Step 6: deleting it again reports not found
	rec = app.request("DELETE", "/api/v1/expenses/"+lunch, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestExpenseFlow_RefreshPicksUpExternalRows(t *testing.T) {
	app := setupApp(t)
	app.unlock(t)

	app.addExpense(t, "2026-10-01", "needs", "10", "Bus")

	// Written by another client straight into the table
	testutil.CreateTestExpense(t, app.DB, "2026-10-02", models.CategoryWants, "4")

	rec := app.request("GET", "/api/v1/expenses", "")
	if n := parseJSON(t, rec)["total_items"].(float64); n != 1 {
		t.Fatalf("expected the cached list to hold 1 expense, got %v", n)
	}

	rec = app.request("POST", "/api/v1/expenses/refresh", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if n := len(parseJSON(t, rec)["expenses"].([]interface{})); n != 2 {
		t.Errorf("expected 2 expenses after refresh, got %d", n)
	}
}

func TestExpenseFlow_Validation(t *testing.T) {
	app := setupApp(t)
	app.unlock(t)

	rec := app.request("POST", "/api/v1/expenses", `{"date":"2026-10-01","amount":-3,"category":"needs","description":"Bus"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a negative amount, got %d", rec.Code)
	}

	rec = app.request("POST", "/api/v1/expenses", `{"date":"2026-10-01","amount":3,"category":"luxury","description":"Bus"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown category, got %d", rec.Code)
	}

	rec = app.request("POST", "/api/v1/expenses", `{"date":"2026-10-01","amount":3,"category":"needs","description":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an empty description, got %d", rec.Code)
	}

	rec = app.request("POST", "/api/v1/expenses", `{"date":"2026-10-01","amount":3,"category":"needs","description":"`+strings.Repeat("x", 300)+`"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a 300 character description, got %d", rec.Code)
	}

	var count int64
	app.DB.Model(&models.Expense{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected expenses must not be stored, found %d", count)
	}
}

func TestExpenseFlow_CategoriesForTheForm(t *testing.T) {
	app := setupApp(t)
	app.unlock(t)

	rec := app.request("GET", "/api/v1/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cats := parseJSON(t, rec)["categories"].([]interface{})
	if len(cats) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(cats))
	}
	if first := cats[0].(map[string]interface{}); first["label"] != "Needs (Necessities)" {
		t.Errorf("unexpected first category %v", first)
	}
}
