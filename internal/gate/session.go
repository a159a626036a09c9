package gate

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/joho/godotenv"
)

const unlockedKey = "KAKEIBO_UNLOCKED"

// Session carries the persisted unlock flag. It is read once when the gate is
// created and written once when the passcode is accepted.
type Session interface {
	Unlocked() bool
	MarkUnlocked() error
}

// FileSession keeps the flag in a dotenv file.
type FileSession struct {
	mu       sync.Mutex
	path     string
	unlocked bool
}

// LoadFileSession reads the session file at path. A missing file is a locked
// session.
func LoadFileSession(path string) (*FileSession, error) {
	s := &FileSession{path: path}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}
	s.unlocked = values[unlockedKey] == "true"
	return s, nil
}

// Unlocked reports the flag read at startup, or true after MarkUnlocked.
func (s *FileSession) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlocked
}

// MarkUnlocked writes the flag. Later calls are no-ops.
func (s *FileSession) MarkUnlocked() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unlocked {
		return nil
	}
	if err := godotenv.Write(map[string]string{unlockedKey: "true"}, s.path); err != nil {
		return fmt.Errorf("writing session file %s: %w", s.path, err)
	}
	s.unlocked = true
	return nil
}

// MemorySession is a Session that is never persisted.
type MemorySession struct {
	mu       sync.Mutex
	unlocked bool
	writes   int
}

// NewMemorySession returns a session starting in the given state.
func NewMemorySession(unlocked bool) *MemorySession {
	return &MemorySession{unlocked: unlocked}
}

func (s *MemorySession) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlocked
}

func (s *MemorySession) MarkUnlocked() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlocked = true
	s.writes++
	return nil
}

// Writes returns how many times MarkUnlocked was called.
func (s *MemorySession) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
