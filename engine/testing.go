package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a mock clock starting at startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mocked clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// SequenceSpawner returns scripted positions in order, repeating the last one
// once the script runs out. Used to make food placement deterministic in tests.
type SequenceSpawner struct {
	positions []core.Position
	next      int
}

// NewSequenceSpawner creates a spawner that yields positions in order
func NewSequenceSpawner(positions ...core.Position) *SequenceSpawner {
	if len(positions) == 0 {
		panic("engine: sequence spawner needs at least one position")
	}
	return &SequenceSpawner{positions: positions}
}

// RandomPosition returns the next scripted position
func (s *SequenceSpawner) RandomPosition() core.Position {
	p := s.positions[min(s.next, len(s.positions)-1)]
	s.next++
	return p
}

// Calls returns how many positions have been handed out
func (s *SequenceSpawner) Calls() int {
	return s.next
}
