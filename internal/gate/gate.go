// Package gate implements the passcode screen that hides the app until the
// four-digit code is entered. It is a convenience lock for a shared device,
// not an authentication mechanism.
package gate

import (
	"crypto/subtle"
	"sync"
	"time"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/logger"
	"kakeibo/internal/metrics"
)

// PasscodeLength is the number of digits in a passcode.
const PasscodeLength = 4

// DefaultClearDelay is how long a rejected entry stays on screen.
const DefaultClearDelay = time.Second

// State is the gate's lock state.
type State string

const (
	StateLocked   State = "locked"
	StateUnlocked State = "unlocked"
)

// Snapshot is the externally visible gate state. The entered digits are never
// exposed, only their count.
type Snapshot struct {
	State   State `json:"state"`
	Entered int   `json:"entered"`
	Length  int   `json:"length"`
	Error   bool  `json:"error"`
}

// AfterFunc schedules f after d and returns a function that cancels it.
type AfterFunc func(d time.Duration, f func()) (stop func() bool)

func timerAfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Option configures a Gate.
type Option func(*Gate)

// WithAfterFunc replaces the timer used to clear a rejected entry.
func WithAfterFunc(fn AfterFunc) Option {
	return func(g *Gate) { g.afterFunc = fn }
}

// WithClearDelay sets how long a rejected entry stays on screen.
func WithClearDelay(d time.Duration) Option {
	return func(g *Gate) { g.clearDelay = d }
}

// WithMetrics records completed attempts.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Gate) { g.metrics = m }
}

// Gate is the passcode state machine. It is safe for concurrent use.
type Gate struct {
	mu         sync.Mutex
	passcode   []byte
	session    Session
	clearDelay time.Duration
	afterFunc  AfterFunc
	metrics    *metrics.Metrics

	state     State
	digits    []byte
	showError bool

	// generation invalidates clear timers scheduled for an earlier entry.
	generation uint64
	stopClear  func() bool
}

// New creates a gate for passcode. The initial state is read once from session.
func New(passcode string, session Session, opts ...Option) *Gate {
	g := &Gate{
		passcode:   []byte(passcode),
		session:    session,
		clearDelay: DefaultClearDelay,
		afterFunc:  timerAfterFunc,
		state:      StateLocked,
	}
	for _, opt := range opts {
		opt(g)
	}
	if session != nil && session.Unlocked() {
		g.state = StateUnlocked
	}
	return g
}

// Unlocked reports whether the passcode has been entered.
func (g *Gate) Unlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state == StateUnlocked
}

// Snapshot returns the current gate state.
func (g *Gate) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// Press enters one digit. Presses are ignored once unlocked or while a full
// rejected entry is waiting to be cleared.
func (g *Gate) Press(digit rune) (Snapshot, error) {
	if digit < '0' || digit > '9' {
		return g.Snapshot(), apperrors.ErrInvalidDigit
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.pressLocked(byte(digit))
	return g.snapshotLocked(), nil
}

// Enter replaces any partial entry with code and submits it digit by digit.
func (g *Gate) Enter(code string) (Snapshot, error) {
	if len(code) != PasscodeLength {
		return g.Snapshot(), apperrors.WithMessage(apperrors.ErrInvalidInput, "Passcode must be 4 digits")
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return g.Snapshot(), apperrors.WithMessage(apperrors.ErrInvalidInput, "Passcode must be 4 digits")
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateLocked {
		g.resetLocked()
		for i := 0; i < len(code); i++ {
			g.pressLocked(code[i])
		}
	}
	return g.snapshotLocked(), nil
}

// Backspace removes the last entered digit and hides the error indicator.
func (g *Gate) Backspace() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateLocked {
		g.cancelClearLocked()
		if n := len(g.digits); n > 0 {
			g.digits = g.digits[:n-1]
		}
		g.showError = false
	}
	return g.snapshotLocked()
}

func (g *Gate) pressLocked(digit byte) {
	if g.state == StateUnlocked || len(g.digits) >= PasscodeLength {
		return
	}

	g.digits = append(g.digits, digit)
	if len(g.digits) < PasscodeLength {
		return
	}

	if subtle.ConstantTimeCompare(g.digits, g.passcode) == 1 {
		g.state = StateUnlocked
		g.digits = nil
		g.showError = false
		g.metrics.RecordGateAttempt(true)
		if g.session != nil {
			if err := g.session.MarkUnlocked(); err != nil {
				logger.Get().Warnw("failed to persist unlock", "error", err)
			}
		}
		return
	}

	g.metrics.RecordGateAttempt(false)
	g.showError = true
	g.cancelClearLocked()
	gen := g.generation
	g.stopClear = g.afterFunc(g.clearDelay, func() { g.clear(gen) })
}

// clear runs when a rejected entry's delay expires.
func (g *Gate) clear(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if gen != g.generation {
		return
	}
	g.digits = nil
	g.showError = false
	g.stopClear = nil
}

func (g *Gate) resetLocked() {
	g.cancelClearLocked()
	g.digits = nil
	g.showError = false
}

func (g *Gate) cancelClearLocked() {
	g.generation++
	if g.stopClear != nil {
		g.stopClear()
		g.stopClear = nil
	}
}

func (g *Gate) snapshotLocked() Snapshot {
	return Snapshot{
		State:   g.state,
		Entered: len(g.digits),
		Length:  PasscodeLength,
		Error:   g.showError,
	}
}
