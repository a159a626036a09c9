// Package errors provides custom error types for the Kakeibo API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrRateLimited    = &AppError{Code: "RATE_LIMITED", Message: "Too many requests", StatusCode: http.StatusTooManyRequests}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Access gate errors.
var (
	ErrLocked       = &AppError{Code: "LOCKED", Message: "Enter the passcode to continue", StatusCode: http.StatusLocked}
	ErrInvalidDigit = &AppError{Code: "INVALID_DIGIT", Message: "Passcode input must be a single digit", StatusCode: http.StatusBadRequest}
)

// Expense errors. Store failures surface as the same static message the
// client shows, regardless of the underlying cause.
var (
	ErrExpensesFetchFailed = &AppError{Code: "EXPENSES_FETCH_FAILED", Message: "Failed to fetch expenses", StatusCode: http.StatusBadGateway}
	ErrExpenseAddFailed    = &AppError{Code: "EXPENSE_ADD_FAILED", Message: "Failed to add expense", StatusCode: http.StatusBadGateway}
	ErrExpenseUpdateFailed = &AppError{Code: "EXPENSE_UPDATE_FAILED", Message: "Failed to update expense", StatusCode: http.StatusBadGateway}
	ErrExpenseDeleteFailed = &AppError{Code: "EXPENSE_DELETE_FAILED", Message: "Failed to delete expense", StatusCode: http.StatusBadGateway}
	ErrExpenseNotFound     = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)

// Budget errors.
var (
	ErrBudgetFetchFailed  = &AppError{Code: "BUDGET_FETCH_FAILED", Message: "Failed to fetch budget", StatusCode: http.StatusBadGateway}
	ErrBudgetSaveFailed   = &AppError{Code: "BUDGET_SAVE_FAILED", Message: "Failed to save budget", StatusCode: http.StatusBadGateway}
	ErrBudgetDeleteFailed = &AppError{Code: "BUDGET_DELETE_FAILED", Message: "Error deleting budget", StatusCode: http.StatusBadGateway}
	ErrBudgetNotFound     = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
)
