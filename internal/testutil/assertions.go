package testutil

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "kakeibo/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertAmount checks that the money amount got equals the decimal literal
// want. Trailing zeros do not matter: 12.50 equals "12.5".
func AssertAmount(t *testing.T, what string, got decimal.Decimal, want string) {
	t.Helper()

	if !got.Equal(Amount(want)) {
		t.Errorf("expected %s %s, got %s", what, want, got)
	}
}

// AssertLastError checks the last store failure a cache reports, where ""
// means the last store call succeeded.
func AssertLastError(t *testing.T, cache interface{ LastError() string }, want string) {
	t.Helper()

	if got := cache.LastError(); got != want {
		t.Errorf("expected last error %q, got %q", want, got)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
