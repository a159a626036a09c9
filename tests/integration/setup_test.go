package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kakeibo/internal/gate"
	"kakeibo/internal/handlers"
	"kakeibo/internal/logger"
	"kakeibo/internal/metrics"
	"kakeibo/internal/middleware"
	"kakeibo/internal/services"
	"kakeibo/internal/store"
	"kakeibo/internal/testutil"
	"kakeibo/internal/validator"
)

const testPasscode = "1841"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Session *gate.MemorySession
	Metrics *metrics.Metrics
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// clock pins "today" to 18 October 2026.
func clock() time.Time {
	return time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	m := metrics.New()
	backend := store.Instrument(store.NewGormStore(db), m)

	session := gate.NewMemorySession(false)
	keypad := gate.New(testPasscode, session, gate.WithClearDelay(10*time.Millisecond), gate.WithMetrics(m))

	// Services
	activity := services.NewActivityRecorder(nil, m)
	expenseService := services.NewExpenseService(backend, activity, services.ReconcileReplace, m)
	budgetService := services.NewBudgetService(backend, activity)
	insightService := services.NewInsightService(expenseService, budgetService, clock)

	// Handlers
	gateHandler := handlers.NewGateHandler(keypad)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, insightService)
	insightsHandler := handlers.NewInsightsHandler(insightService, clock)
	categoryHandler := handlers.NewCategoryHandler()

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	gateRoutes := v1.Group("/gate")
	gateRoutes.GET("", gateHandler.GetState)
	gateRoutes.POST("/digits", gateHandler.PressDigit)
	gateRoutes.POST("/backspace", gateHandler.Backspace)
	gateRoutes.POST("/unlock", gateHandler.Unlock)

	unlocked := v1.Group("/")
	unlocked.Use(middleware.RequireUnlocked(keypad))

	unlocked.GET("/categories", categoryHandler.ListCategories)

	expenses := unlocked.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.AddExpense)
	expenses.POST("/refresh", expenseHandler.RefreshExpenses)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	budgets := unlocked.Group("/budgets")
	budgets.GET("/:month", budgetHandler.GetBudget)
	budgets.PUT("/:month", budgetHandler.SaveBudget)
	budgets.GET("/:month/remaining", budgetHandler.GetRemaining)
	budgets.DELETE("/id/:id", budgetHandler.DeleteBudget)

	insightRoutes := unlocked.Group("/insights")
	insightRoutes.GET("", insightsHandler.GetInsights)
	insightRoutes.GET("/trend", insightsHandler.GetTrend)

	return &testApp{DB: db, Router: router, Session: session, Metrics: m}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// unlock enters the passcode.
func (app *testApp) unlock(t *testing.T) {
	t.Helper()
	rec := app.request("POST", "/api/v1/gate/unlock", `{"passcode":"`+testPasscode+`"}`)
	if rec.Code != http.StatusOK || parseJSON(t, rec)["state"] != "unlocked" {
		t.Fatalf("unlock failed: %d %s", rec.Code, rec.Body.String())
	}
}

// addExpense logs an expense and returns its id.
func (app *testApp) addExpense(t *testing.T, date, category, amount, description string) string {
	t.Helper()
	body := `{"date":"` + date + `","amount":` + amount + `,"category":"` + category + `","description":"` + description + `"}`
	rec := app.request("POST", "/api/v1/expenses", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add expense failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["expense"].(map[string]interface{})["id"].(string)
}

// decimalField reads a decimal encoded as a JSON string.
func decimalField(t *testing.T, obj map[string]interface{}, key string) string {
	t.Helper()
	v, ok := obj[key].(string)
	if !ok {
		t.Fatalf("expected %q to be a decimal string, got %T (%v)", key, obj[key], obj[key])
	}
	return v
}
