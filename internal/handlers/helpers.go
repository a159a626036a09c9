package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"kakeibo/internal/calendar"
	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/logger"
	"kakeibo/internal/middleware"
)

// maxTrendMonths caps the months query parameter of the trend endpoints.
const maxTrendMonths = 24

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// parseMonthParam parses a YYYY-MM path parameter.
func parseMonthParam(c *gin.Context, param string) (calendar.Month, error) {
	month, err := calendar.ParseMonth(c.Param(param))
	if err != nil {
		return calendar.Month{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param+": expected YYYY-MM")
	}
	return month, nil
}

// parseMonthQuery parses the optional month query parameter, defaulting to the
// month of today.
func parseMonthQuery(c *gin.Context, today calendar.Date) (calendar.Month, error) {
	raw := c.Query("month")
	if raw == "" {
		return today.Month(), nil
	}
	month, err := calendar.ParseMonth(raw)
	if err != nil {
		return calendar.Month{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid month: expected YYYY-MM")
	}
	return month, nil
}

// parseMonthsQuery parses the months query parameter of the trend endpoints.
// Zero means the default length.
func parseMonthsQuery(c *gin.Context) (int, error) {
	raw := c.Query("months")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxTrendMonths {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be between 1 and 24")
	}
	return n, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		middleware.SetErrorCode(c, appErr.Code)
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"request_id", middleware.RequestID(c),
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	middleware.SetErrorCode(c, apperrors.ErrInternalServer.Code)
	logger.Get().Errorw("unexpected error",
		"request_id", middleware.RequestID(c),
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
