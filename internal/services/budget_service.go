package services

import (
	"context"
	"errors"
	"sync"

	"kakeibo/internal/calendar"
	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/events"
	"kakeibo/internal/logger"
	"kakeibo/internal/models"
	"kakeibo/internal/store"
)

// AllocationWarning is returned when the category allocations do not add up
// to the total. Saving still succeeds.
const AllocationWarning = "Your category allocations don't add up to your total budget."

// budgetService handles monthly budgets. Budgets fetched or saved are cached
// per month so a save can find the row to update.
type budgetService struct {
	store    store.BudgetStore
	activity ActivityRecorder

	mu      sync.RWMutex
	byMonth map[calendar.Month]*models.Budget
	lastErr string
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(s store.BudgetStore, activity ActivityRecorder) BudgetServicer {
	return &budgetService{store: s, activity: activity, byMonth: make(map[calendar.Month]*models.Budget)}
}

// GetBudget fetches the month's budget from the store.
func (s *budgetService) GetBudget(ctx context.Context, month calendar.Month) (*models.Budget, error) {
	budget, err := s.store.FindBudgetByMonth(ctx, month)
	if err != nil {
		return nil, s.fail(apperrors.ErrBudgetFetchFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
	if budget == nil {
		delete(s.byMonth, month)
		return nil, nil
	}
	s.byMonth[month] = budget
	copied := *budget
	return &copied, nil
}

// SaveBudget upserts the month's budget. An explicit id must name a budget of
// the same month; otherwise the cached or stored budget for the month is
// updated, and a new one is created only when the month has none.
func (s *budgetService) SaveBudget(ctx context.Context, id string, in models.BudgetInput) (*SavedBudget, error) {
	if err := validateBudget(in); err != nil {
		return nil, err
	}

	var (
		saved   *models.Budget
		created bool
		err     error
	)
	if id != "" {
		saved, err = s.updateByID(ctx, id, in)
	} else {
		saved, created, err = s.upsertMonth(ctx, in)
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.forgetLocked(saved.ID)
	s.byMonth[saved.Month] = saved
	s.mu.Unlock()

	s.activity.Record(ctx, events.BudgetSaved, saved.ID, saved.Month, saved)

	copied := *saved
	result := &SavedBudget{Budget: &copied, Created: created, AllocationsMatch: saved.AllocationsMatchTotal()}
	if !result.AllocationsMatch {
		result.Warning = AllocationWarning
	}
	return result, nil
}

// updateByID updates the budget the caller named.
func (s *budgetService) updateByID(ctx context.Context, id string, in models.BudgetInput) (*models.Budget, error) {
	existing, err := s.store.FindBudget(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		s.forget(id)
		return nil, apperrors.ErrBudgetNotFound
	}
	if err != nil {
		return nil, s.fail(apperrors.ErrBudgetSaveFailed, err)
	}
	if existing.Month != in.Month {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"budget "+id+" belongs to "+existing.Month.String()+", not "+in.Month.String())
	}

	saved, err := s.store.UpdateBudget(ctx, id, in)
	if errors.Is(err, store.ErrNotFound) {
		s.forget(id)
		return nil, apperrors.ErrBudgetNotFound
	}
	if err != nil {
		return nil, s.fail(apperrors.ErrBudgetSaveFailed, err)
	}
	return saved, nil
}

// upsertMonth updates the month's budget, creating it when the month has none.
// A cached budget deleted remotely falls through to the store lookup.
func (s *budgetService) upsertMonth(ctx context.Context, in models.BudgetInput) (*models.Budget, bool, error) {
	if cachedID := s.cachedID(in.Month); cachedID != "" {
		saved, err := s.store.UpdateBudget(ctx, cachedID, in)
		if err == nil {
			return saved, false, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, false, s.fail(apperrors.ErrBudgetSaveFailed, err)
		}
		logger.Get().Warnw("cached budget is gone from the store", "id", cachedID, "month", in.Month.String())
		s.forget(cachedID)
	}

	existing, err := s.store.FindBudgetByMonth(ctx, in.Month)
	if err != nil {
		return nil, false, s.fail(apperrors.ErrBudgetSaveFailed, err)
	}
	if existing != nil {
		saved, err := s.store.UpdateBudget(ctx, existing.ID, in)
		if err != nil {
			return nil, false, s.fail(apperrors.ErrBudgetSaveFailed, err)
		}
		return saved, false, nil
	}

	saved, err := s.store.InsertBudget(ctx, in)
	if err != nil {
		return nil, false, s.fail(apperrors.ErrBudgetSaveFailed, err)
	}
	return saved, true, nil
}

func (s *budgetService) cachedID(month calendar.Month) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cached, ok := s.byMonth[month]; ok {
		return cached.ID
	}
	return ""
}

// DeleteBudget removes the budget with id.
func (s *budgetService) DeleteBudget(ctx context.Context, id string) error {
	err := s.store.DeleteBudget(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		s.forget(id)
		return apperrors.ErrBudgetNotFound
	}
	if err != nil {
		return s.fail(apperrors.ErrBudgetDeleteFailed, err)
	}

	month := s.forget(id)
	s.activity.Record(ctx, events.BudgetDeleted, id, month, map[string]string{"id": id})
	return nil
}

// LastError returns the message of the most recent store failure.
func (s *budgetService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// forget drops the cached budget with id and returns its month.
func (s *budgetService) forget(id string) calendar.Month {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forgetLocked(id)
}

func (s *budgetService) forgetLocked(id string) calendar.Month {
	for month, b := range s.byMonth {
		if b.ID == id {
			delete(s.byMonth, month)
			return month
		}
	}
	return calendar.Month{}
}

func (s *budgetService) fail(sentinel *apperrors.AppError, cause error) error {
	logger.Get().Errorw(sentinel.Message, "error", cause)

	s.mu.Lock()
	s.lastErr = sentinel.Message
	s.mu.Unlock()
	return apperrors.Wrap(sentinel, cause)
}

func validateBudget(in models.BudgetInput) error {
	if in.Month.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "month is required")
	}
	b := in.Budget()
	if b.Total.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "total must not be negative")
	}
	for _, c := range models.Categories {
		if b.Allocation(c).IsNegative() {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, string(c)+" must not be negative")
		}
	}
	return nil
}
