package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kakeibo/internal/logger"
)

// RequestIDHeader carries the request id to and from the web client.
const RequestIDHeader = "X-Request-ID"

const (
	requestIDKey = "requestID"
	errorCodeKey = "errorCode"
)

// RequestID returns the id RequestLogging assigned to the request, or "".
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// SetErrorCode records the AppError code a request was answered with so the
// request log line can carry it.
func SetErrorCode(c *gin.Context, code string) {
	c.Set(errorCodeKey, code)
}

// RequestLogging returns a Gin middleware that logs each request with its
// request ID, method, path, status code, latency, client IP and, for failed
// requests, the error code. A well-formed X-Request-ID sent by the client is
// kept so its logs and ours line up; otherwise a new one is generated.
// Server errors log at error level, client errors (including 423 from the
// passcode gate) at warn level.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if code := c.GetString(errorCodeKey); code != "" {
			fields = append(fields, "error_code", code)
		}

		log := logger.Get()
		switch {
		case status >= 500:
			log.Errorw("request", fields...)
		case status >= 400:
			log.Warnw("request", fields...)
		default:
			log.Infow("request", fields...)
		}
	}
}
