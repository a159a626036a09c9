package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "kakeibo/internal/errors"
)

// Unlocker reports whether the passcode gate has been opened.
type Unlocker interface {
	Unlocked() bool
}

// RequireUnlocked creates a Gin middleware that rejects requests with 423
// Locked until the passcode gate is open.
func RequireUnlocked(gate Unlocker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.Unlocked() {
			SetErrorCode(c, apperrors.ErrLocked.Code)
			c.AbortWithStatusJSON(apperrors.ErrLocked.StatusCode,
				gin.H{"error": gin.H{"code": apperrors.ErrLocked.Code, "message": apperrors.ErrLocked.Message}})
			return
		}
		c.Next()
	}
}
