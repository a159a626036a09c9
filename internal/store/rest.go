package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"kakeibo/internal/calendar"
	"kakeibo/internal/models"
)

// RESTStore talks to the hosted service's PostgREST endpoint (/rest/v1/<table>).
type RESTStore struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewRESTStore creates a RESTStore. apiKey is sent both as the apikey header
// and as a bearer token.
func NewRESTStore(baseURL, apiKey string, httpClient *http.Client) *RESTStore {
	return &RESTStore{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type expenseRow struct {
	Date        calendar.Date   `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    models.Category `json:"category"`
}

func newExpenseRow(in models.NewExpense) expenseRow {
	return expenseRow{Date: in.Date, Amount: in.Amount, Description: in.Description, Category: in.Category}
}

// storedExpense is an expenses row as the hosted table returns it. The hosted
// schema names the creation column createdAt.
type storedExpense struct {
	ID        string     `json:"id"`
	CreatedAt remoteTime `json:"createdAt"`
	expenseRow
}

func (r storedExpense) model() models.Expense {
	e := models.Expense{
		Date:        r.Date,
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
	}
	e.ID = r.ID
	e.CreatedAt = time.Time(r.CreatedAt)
	return e
}

// remoteTime decodes a timestamp with or without a UTC offset. Columns without
// one are read as UTC.
type remoteTime time.Time

func (t *remoteTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if s == "" {
		*t = remoteTime{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		parsed, err = time.ParseInLocation("2006-01-02T15:04:05.999999999", s, time.UTC)
		if err != nil {
			return fmt.Errorf("timestamp %q: %w", s, err)
		}
	}
	*t = remoteTime(parsed)
	return nil
}

type budgetRow struct {
	Month      calendar.Month  `json:"month"`
	Total      decimal.Decimal `json:"total"`
	Needs      decimal.Decimal `json:"needs"`
	Wants      decimal.Decimal `json:"wants"`
	Culture    decimal.Decimal `json:"culture"`
	Unexpected decimal.Decimal `json:"unexpected"`
}

func newBudgetRow(in models.BudgetInput) budgetRow {
	return budgetRow{
		Month:      in.Month,
		Total:      in.Total,
		Needs:      in.Needs,
		Wants:      in.Wants,
		Culture:    in.Culture,
		Unexpected: in.Unexpected,
	}
}

// ListExpenses returns all expenses ordered by date, newest first. Expenses of
// the same day are ordered newest creation first here rather than remotely.
func (s *RESTStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "date.desc")

	var rows []storedExpense
	if err := s.do(ctx, http.MethodGet, TableExpenses, q, nil, &rows); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	expenses := make([]models.Expense, len(rows))
	for i, row := range rows {
		expenses[i] = row.model()
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		if c := expenses[i].Date.Compare(expenses[j].Date); c != 0 {
			return c > 0
		}
		return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
	})
	return expenses, nil
}

// InsertExpense creates an expense and returns the stored row.
func (s *RESTStore) InsertExpense(ctx context.Context, in models.NewExpense) (*models.Expense, error) {
	var rows []storedExpense
	if err := s.do(ctx, http.MethodPost, TableExpenses, nil, newExpenseRow(in), &rows); err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert expense: empty response")
	}
	expense := rows[0].model()
	return &expense, nil
}

// UpdateExpense replaces every user-supplied field of the expense.
func (s *RESTStore) UpdateExpense(ctx context.Context, id string, in models.NewExpense) (*models.Expense, error) {
	var rows []storedExpense
	if err := s.do(ctx, http.MethodPatch, TableExpenses, idFilter(id), newExpenseRow(in), &rows); err != nil {
		return nil, fmt.Errorf("update expense %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	expense := rows[0].model()
	return &expense, nil
}

// DeleteExpense removes the expense with the given id.
func (s *RESTStore) DeleteExpense(ctx context.Context, id string) error {
	var rows []storedExpense
	if err := s.do(ctx, http.MethodDelete, TableExpenses, idFilter(id), nil, &rows); err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

// FindBudget returns the budget with the given id.
func (s *RESTStore) FindBudget(ctx context.Context, id string) (*models.Budget, error) {
	q := idFilter(id)
	q.Set("select", "*")
	q.Set("limit", "1")

	var rows []models.Budget
	if err := s.do(ctx, http.MethodGet, TableBudgets, q, nil, &rows); err != nil {
		return nil, fmt.Errorf("find budget %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// FindBudgetByMonth returns the budget for month, or nil when none exists.
func (s *RESTStore) FindBudgetByMonth(ctx context.Context, month calendar.Month) (*models.Budget, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("month", "eq."+month.String())
	q.Set("limit", "1")

	var rows []models.Budget
	if err := s.do(ctx, http.MethodGet, TableBudgets, q, nil, &rows); err != nil {
		return nil, fmt.Errorf("find budget %s: %w", month, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// InsertBudget creates a budget and returns the stored row.
func (s *RESTStore) InsertBudget(ctx context.Context, in models.BudgetInput) (*models.Budget, error) {
	var rows []models.Budget
	if err := s.do(ctx, http.MethodPost, TableBudgets, nil, newBudgetRow(in), &rows); err != nil {
		return nil, fmt.Errorf("insert budget %s: %w", in.Month, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert budget %s: empty response", in.Month)
	}
	return &rows[0], nil
}

// UpdateBudget replaces the totals of the budget with the given id.
func (s *RESTStore) UpdateBudget(ctx context.Context, id string, in models.BudgetInput) (*models.Budget, error) {
	var rows []models.Budget
	if err := s.do(ctx, http.MethodPatch, TableBudgets, idFilter(id), newBudgetRow(in), &rows); err != nil {
		return nil, fmt.Errorf("update budget %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// DeleteBudget removes the budget with the given id.
func (s *RESTStore) DeleteBudget(ctx context.Context, id string) error {
	var rows []models.Budget
	if err := s.do(ctx, http.MethodDelete, TableBudgets, idFilter(id), nil, &rows); err != nil {
		return fmt.Errorf("delete budget %s: %w", id, err)
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

func idFilter(id string) url.Values {
	return url.Values{"id": []string{"eq." + id}}
}

// do sends one request and decodes the JSON response into out. Writes ask for
// the affected rows back so callers can tell a missing row from success.
func (s *RESTStore) do(ctx context.Context, method, table string, query url.Values, body, out interface{}) error {
	endpoint := s.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
