package handlers

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/gate"
)

// Keypad is the passcode gate as seen by the HTTP layer.
type Keypad interface {
	Snapshot() gate.Snapshot
	Press(digit rune) (gate.Snapshot, error)
	Enter(code string) (gate.Snapshot, error)
	Backspace() gate.Snapshot
}

// GateHandler handles the passcode screen.
type GateHandler struct {
	keypad Keypad
}

// NewGateHandler creates a new GateHandler.
func NewGateHandler(keypad Keypad) *GateHandler {
	return &GateHandler{keypad: keypad}
}

// PressDigitRequest represents a single key press.
type PressDigitRequest struct {
	Digit string `json:"digit" binding:"required,len=1,numeric" example:"1"`
}

// UnlockRequest represents a whole passcode entry.
type UnlockRequest struct {
	Passcode string `json:"passcode" binding:"required,len=4,numeric" example:"0000"`
}

// GetState handles reading the gate state.
// @Summary     Get gate state
// @Description Get whether the app is unlocked and how many digits are entered
// @Tags        gate
// @Produce     json
// @Success     200 {object} gate.Snapshot "Gate state"
// @Router      /gate [get]
func (h *GateHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.keypad.Snapshot())
}

// PressDigit handles one keypad press.
// @Summary     Press a digit
// @Description Enter one digit. The fourth digit submits the passcode; a wrong code is shown as an error and cleared after a short delay.
// @Tags        gate
// @Accept      json
// @Produce     json
// @Param       request body PressDigitRequest true "Digit"
// @Success     200 {object} gate.Snapshot "Gate state"
// @Failure     400 {object} ErrorResponse "Not a digit"
// @Router      /gate/digits [post]
func (h *GateHandler) PressDigit(c *gin.Context) {
	var req PressDigitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.ErrInvalidDigit)
		return
	}

	digit, _ := utf8.DecodeRuneInString(req.Digit)
	snap, err := h.keypad.Press(digit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

// Backspace handles removing the last digit.
// @Summary     Remove a digit
// @Description Remove the last entered digit and hide the error indicator
// @Tags        gate
// @Produce     json
// @Success     200 {object} gate.Snapshot "Gate state"
// @Router      /gate/backspace [post]
func (h *GateHandler) Backspace(c *gin.Context) {
	c.JSON(http.StatusOK, h.keypad.Backspace())
}

// Unlock handles entering a whole passcode.
// @Summary     Enter passcode
// @Description Submit all four digits at once
// @Tags        gate
// @Accept      json
// @Produce     json
// @Param       request body UnlockRequest true "Passcode"
// @Success     200 {object} gate.Snapshot "Gate state"
// @Failure     400 {object} ErrorResponse "Invalid passcode format"
// @Router      /gate/unlock [post]
func (h *GateHandler) Unlock(c *gin.Context) {
	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Passcode must be 4 digits"))
		return
	}

	snap, err := h.keypad.Enter(req.Passcode)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}
