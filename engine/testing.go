package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// ScriptedInput is an InputSource that replays queued keys, one per poll
type ScriptedInput struct {
	mu   sync.Mutex
	keys []rune
}

// NewScriptedInput creates an input source preloaded with keys
func NewScriptedInput(keys ...rune) *ScriptedInput {
	return &ScriptedInput{keys: keys}
}

// Push appends keys to the script
func (s *ScriptedInput) Push(keys ...rune) {
	s.mu.Lock()
	s.keys = append(s.keys, keys...)
	s.mu.Unlock()
}

// PollKey implements InputSource
func (s *ScriptedInput) PollKey() (rune, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.keys) == 0 {
		return 0, false
	}
	r := s.keys[0]
	s.keys = s.keys[1:]
	return r, true
}
