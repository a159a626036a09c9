package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeGate struct {
	unlocked atomic.Bool
}

func (g *fakeGate) Unlocked() bool { return g.unlocked.Load() }

func doRequest(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func TestRequireUnlocked(t *testing.T) {
	gate := &fakeGate{}
	r := gin.New()
	r.Use(RequireUnlocked(gate))
	r.GET("/test", okHandler)

	rec := doRequest(r, "")
	assert.Equal(t, http.StatusLocked, rec.Code)
	assert.Equal(t, "LOCKED", errorCode(t, rec))

	gate.unlocked.Store(true)
	rec = doRequest(r, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(1, 3)
	r := gin.New()
	r.Use(limiter.Middleware())
	r.GET("/test", okHandler)

	for i := 0; i < 3; i++ {
		rec := doRequest(r, "192.168.1.100:12345")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i)
	}

	rec := doRequest(r, "192.168.1.100:12345")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", errorCode(t, rec))

	// Other clients have their own bucket.
	rec = doRequest(r, "10.0.0.7:40000")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	limiter.limiter("192.168.1.100")
	limiter.limiter("10.0.0.7")

	limiter.mu.Lock()
	limiter.visitors["10.0.0.7"].lastSeen = time.Now().Add(-10 * time.Minute)
	limiter.mu.Unlock()

	limiter.evictIdle(time.Now())

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Len(t, limiter.visitors, 1)
	assert.Contains(t, limiter.visitors, "192.168.1.100")
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "app error",
			err:        apperrors.ErrExpenseNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "EXPENSE_NOT_FOUND",
		},
		{
			name:       "wrapped app error",
			err:        apperrors.Wrap(apperrors.ErrExpensesFetchFailed, errors.New("connection refused")),
			wantStatus: http.StatusBadGateway,
			wantCode:   "EXPENSES_FETCH_FAILED",
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/test", func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			rec := doRequest(r, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}

func TestRequestLogging_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/test", func(c *gin.Context) {
		id, _ := c.Get(requestIDKey)
		c.JSON(http.StatusOK, gin.H{"request_id": id})
	})

	rec := doRequest(r, "")
	require.Equal(t, http.StatusOK, rec.Code)

	header := rec.Header().Get("X-Request-ID")
	assert.NotEmpty(t, header)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, header, body["request_id"])
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(logger.Replace(zap.New(core)))
	return logs
}

func TestRequestLogging_KeepsClientRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/test", okHandler)

	clientID := "0192a6b4-3c1e-7d2f-8a4b-5c6d7e8f9a0b"
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set(RequestIDHeader, clientID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, clientID, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set(RequestIDHeader, "req-42")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.NotEqual(t, "req-42", rec.Header().Get(RequestIDHeader))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestLogging_LogsLockedRequests(t *testing.T) {
	logs := observeLogs(t)

	r := gin.New()
	r.Use(RequestLogging())
	r.Use(RequireUnlocked(&fakeGate{}))
	r.GET("/test", okHandler)

	rec := doRequest(r, "")
	require.Equal(t, http.StatusLocked, rec.Code)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Equal(t, "LOCKED", fields["error_code"])
	assert.Equal(t, int64(http.StatusLocked), fields["status"])
	assert.Equal(t, rec.Header().Get(RequestIDHeader), fields["request_id"])
}

func TestRequestLogging_LogsStoreFailures(t *testing.T) {
	logs := observeLogs(t)

	r := gin.New()
	r.Use(RequestLogging())
	r.Use(ErrorHandler())
	r.GET("/test", func(c *gin.Context) {
		_ = c.Error(apperrors.Wrap(apperrors.ErrBudgetSaveFailed, errors.New("connection reset")))
	})

	rec := doRequest(r, "")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	requestID := rec.Header().Get(RequestIDHeader)

	appErrors := logs.FilterMessage("app error").All()
	require.Len(t, appErrors, 1)
	assert.Equal(t, requestID, appErrors[0].ContextMap()["request_id"])
	assert.Equal(t, "connection reset", appErrors[0].ContextMap()["internal"])

	requests := logs.FilterMessage("request").All()
	require.Len(t, requests, 1)
	assert.Equal(t, zapcore.ErrorLevel, requests[0].Level)
	assert.Equal(t, "BUDGET_SAVE_FAILED", requests[0].ContextMap()["error_code"])
}

func TestRequestLogging_SuccessHasNoErrorCode(t *testing.T) {
	logs := observeLogs(t)

	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/test", okHandler)

	doRequest(r, "")

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.NotContains(t, entries[0].ContextMap(), "error_code")
}
