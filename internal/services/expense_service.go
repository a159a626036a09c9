package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"kakeibo/internal/calendar"
	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/events"
	"kakeibo/internal/logger"
	"kakeibo/internal/metrics"
	"kakeibo/internal/models"
	"kakeibo/internal/pagination"
	"kakeibo/internal/store"
)

// expenseService keeps a read-through cache of the expenses table. The store
// is the source of truth: failed calls leave the cache at its last good state.
type expenseService struct {
	store    store.ExpenseStore
	activity ActivityRecorder
	policy   string
	metrics  *metrics.Metrics

	mu       sync.RWMutex
	expenses []models.Expense
	loaded   bool
	lastErr  string
}

// NewExpenseService creates a new ExpenseServicer. An unknown policy falls
// back to ReconcileReplace.
func NewExpenseService(s store.ExpenseStore, activity ActivityRecorder, policy string, m *metrics.Metrics) ExpenseServicer {
	if policy != ReconcileMerge {
		policy = ReconcileReplace
	}
	return &expenseService{store: s, activity: activity, policy: policy, metrics: m}
}

// Expenses returns the cached list, loading it on first use.
func (s *expenseService) Expenses(ctx context.Context) ([]models.Expense, error) {
	s.mu.RLock()
	if s.loaded {
		list := cloneExpenses(s.expenses)
		s.mu.RUnlock()
		return list, nil
	}
	s.mu.RUnlock()
	return s.Refresh(ctx)
}

// ListExpenses returns a filtered page of the cached list.
func (s *expenseService) ListExpenses(ctx context.Context, filter ExpenseFilter, page pagination.PageRequest) (*ExpenseList, error) {
	all, err := s.Expenses(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Expense, 0, len(all))
	for _, e := range all {
		if filter.Month != nil && !filter.Month.Contains(e.Date) {
			continue
		}
		if filter.Category != nil && e.Category != *filter.Category {
			continue
		}
		filtered = append(filtered, e)
	}

	return &ExpenseList{PageResponse: pagination.Slice(filtered, page), Error: s.LastError()}, nil
}

// Refresh refetches every expense from the store.
func (s *expenseService) Refresh(ctx context.Context) ([]models.Expense, error) {
	list, err := s.store.ListExpenses(ctx)
	s.metrics.RecordCacheRefresh(err)
	if err != nil {
		return nil, s.fail(apperrors.ErrExpensesFetchFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = list
	s.loaded = true
	s.lastErr = ""
	return cloneExpenses(list), nil
}

// AddExpense stores a new expense.
func (s *expenseService) AddExpense(ctx context.Context, in models.NewExpense) (*models.Expense, error) {
	if err := validateExpense(in); err != nil {
		return nil, err
	}

	created, err := s.store.InsertExpense(ctx, in)
	if err != nil {
		return nil, s.fail(apperrors.ErrExpenseAddFailed, err)
	}

	s.reconcile(ctx, func(list []models.Expense) []models.Expense {
		return sortExpenses(append(list, *created))
	})
	s.activity.Record(ctx, events.ExpenseCreated, created.ID, created.Month(), created)
	return created, nil
}

// UpdateExpense replaces every field of an expense.
func (s *expenseService) UpdateExpense(ctx context.Context, id string, in models.NewExpense) (*models.Expense, error) {
	if err := validateExpense(in); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateExpense(ctx, id, in)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.ErrExpenseNotFound
	}
	if err != nil {
		return nil, s.fail(apperrors.ErrExpenseUpdateFailed, err)
	}

	s.reconcile(ctx, func(list []models.Expense) []models.Expense {
		return sortExpenses(append(removeExpense(list, id), *updated))
	})
	s.activity.Record(ctx, events.ExpenseUpdated, updated.ID, updated.Month(), updated)
	return updated, nil
}

// DeleteExpense removes an expense with a single store call.
func (s *expenseService) DeleteExpense(ctx context.Context, id string) error {
	month := s.monthOf(id)

	err := s.store.DeleteExpense(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		// Already gone remotely; drop any stale cached copy.
		s.evict(id)
		return apperrors.ErrExpenseNotFound
	}
	if err != nil {
		return s.fail(apperrors.ErrExpenseDeleteFailed, err)
	}

	s.reconcile(ctx, func(list []models.Expense) []models.Expense {
		return removeExpense(list, id)
	})
	s.activity.Record(ctx, events.ExpenseDeleted, id, month, map[string]string{"id": id})
	return nil
}

// LastError returns the message of the most recent store failure, cleared by
// the next successful fetch.
func (s *expenseService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// reconcile brings the cache up to date after a successful write. With the
// replace policy the list is refetched; if that fails the merge is applied
// instead so the write is still reflected.
func (s *expenseService) reconcile(ctx context.Context, merge func([]models.Expense) []models.Expense) {
	if s.policy == ReconcileReplace {
		list, err := s.store.ListExpenses(ctx)
		s.metrics.RecordCacheRefresh(err)
		if err == nil {
			s.mu.Lock()
			s.expenses = list
			s.loaded = true
			s.lastErr = ""
			s.mu.Unlock()
			return
		}
		logger.Get().Warnw("refetch after write failed, merging locally", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		s.expenses = merge(s.expenses)
	}
}

func (s *expenseService) evict(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = removeExpense(s.expenses, id)
}

// monthOf returns the cached expense's month, or the zero month if it is not cached.
func (s *expenseService) monthOf(id string) calendar.Month {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.expenses {
		if e.ID == id {
			return e.Month()
		}
	}
	return calendar.Month{}
}

// fail records the static message of sentinel as the last error and returns
// it wrapping cause.
func (s *expenseService) fail(sentinel *apperrors.AppError, cause error) error {
	logger.Get().Errorw(sentinel.Message, "error", cause)

	s.mu.Lock()
	s.lastErr = sentinel.Message
	s.mu.Unlock()
	return apperrors.Wrap(sentinel, cause)
}

func validateExpense(in models.NewExpense) error {
	switch {
	case in.Date.IsZero():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	case in.Amount.IsNegative():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	case strings.TrimSpace(in.Description) == "":
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	case utf8.RuneCountInString(in.Description) > models.MaxDescriptionLength:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description must be at most 255 characters")
	case !in.Category.Valid():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category must be one of needs, wants, culture, unexpected")
	}
	return nil
}

func removeExpense(list []models.Expense, id string) []models.Expense {
	out := make([]models.Expense, 0, len(list))
	for _, e := range list {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// sortExpenses orders newest date first, then newest creation first, matching
// the store's ordering.
func sortExpenses(list []models.Expense) []models.Expense {
	sort.SliceStable(list, func(i, j int) bool {
		if c := list[i].Date.Compare(list[j].Date); c != 0 {
			return c > 0
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

func cloneExpenses(list []models.Expense) []models.Expense {
	out := make([]models.Expense, len(list))
	copy(out, list)
	return out
}
