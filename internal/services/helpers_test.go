package services

import (
	"context"
	"sync"
	"testing"

	"kakeibo/internal/calendar"
	"kakeibo/internal/models"
	"kakeibo/internal/store"
	"kakeibo/internal/testutil"
)

// countingStore wraps a real store, counting calls and failing on demand.
type countingStore struct {
	inner store.Store

	mu     sync.Mutex
	calls  map[string]int
	failOn map[string]error
}

func newCountingStore(t *testing.T) *countingStore {
	t.Helper()
	return &countingStore{
		inner:  store.NewGormStore(testutil.SetupTestDB(t)),
		calls:  make(map[string]int),
		failOn: make(map[string]error),
	}
}

func (s *countingStore) hit(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[op]++
	return s.failOn[op]
}

func (s *countingStore) count(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *countingStore) fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failOn, op)
		return
	}
	s.failOn[op] = err
}

func (s *countingStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	if err := s.hit("ListExpenses"); err != nil {
		return nil, err
	}
	return s.inner.ListExpenses(ctx)
}

func (s *countingStore) InsertExpense(ctx context.Context, in models.NewExpense) (*models.Expense, error) {
	if err := s.hit("InsertExpense"); err != nil {
		return nil, err
	}
	return s.inner.InsertExpense(ctx, in)
}

func (s *countingStore) UpdateExpense(ctx context.Context, id string, in models.NewExpense) (*models.Expense, error) {
	if err := s.hit("UpdateExpense"); err != nil {
		return nil, err
	}
	return s.inner.UpdateExpense(ctx, id, in)
}

func (s *countingStore) DeleteExpense(ctx context.Context, id string) error {
	if err := s.hit("DeleteExpense"); err != nil {
		return err
	}
	return s.inner.DeleteExpense(ctx, id)
}

func (s *countingStore) FindBudget(ctx context.Context, id string) (*models.Budget, error) {
	if err := s.hit("FindBudget"); err != nil {
		return nil, err
	}
	return s.inner.FindBudget(ctx, id)
}

func (s *countingStore) FindBudgetByMonth(ctx context.Context, month calendar.Month) (*models.Budget, error) {
	if err := s.hit("FindBudgetByMonth"); err != nil {
		return nil, err
	}
	return s.inner.FindBudgetByMonth(ctx, month)
}

func (s *countingStore) InsertBudget(ctx context.Context, in models.BudgetInput) (*models.Budget, error) {
	if err := s.hit("InsertBudget"); err != nil {
		return nil, err
	}
	return s.inner.InsertBudget(ctx, in)
}

func (s *countingStore) UpdateBudget(ctx context.Context, id string, in models.BudgetInput) (*models.Budget, error) {
	if err := s.hit("UpdateBudget"); err != nil {
		return nil, err
	}
	return s.inner.UpdateBudget(ctx, id, in)
}

func (s *countingStore) DeleteBudget(ctx context.Context, id string) error {
	if err := s.hit("DeleteBudget"); err != nil {
		return err
	}
	return s.inner.DeleteBudget(ctx, id)
}

// recordedEvent is one call to the fake activity recorder.
type recordedEvent struct {
	eventType  string
	resourceID string
	month      calendar.Month
}

type fakeActivity struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeActivity) Record(_ context.Context, eventType, resourceID string, month calendar.Month, _ any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{eventType: eventType, resourceID: resourceID, month: month})
}

func (f *fakeActivity) recorded() []recordedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedEvent(nil), f.events...)
}

func ids(list []models.Expense) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.ID
	}
	return out
}
