package input

import (
	"sync"
	"time"
)

// HoldState records which roles are currently held
// Written by the input source, read once per frame by the simulation
// With a non-zero timeout a press expires unless refreshed, for sources that
// never report key release (terminals deliver only press and auto-repeat)
type HoldState struct {
	mu        sync.Mutex
	held      Hold
	pressedAt [roleCount]time.Time
	timeout   time.Duration
}

// NewHoldState creates a hold-state; timeout 0 disables expiry
func NewHoldState(timeout time.Duration) *HoldState {
	return &HoldState{timeout: timeout}
}

// Press marks the role held and refreshes its expiry
func (s *HoldState) Press(r Role, now time.Time) {
	if r >= roleCount {
		return
	}
	s.mu.Lock()
	s.held[r] = true
	s.pressedAt[r] = now
	s.mu.Unlock()
}

// Release clears the role
func (s *HoldState) Release(r Role) {
	if r >= roleCount {
		return
	}
	s.mu.Lock()
	s.held[r] = false
	s.mu.Unlock()
}

// Set writes a polled key state
func (s *HoldState) Set(r Role, down bool, now time.Time) {
	if down {
		s.Press(r, now)
		return
	}
	s.Release(r)
}

// Reset releases every role
func (s *HoldState) Reset() {
	s.mu.Lock()
	s.held = Hold{}
	s.mu.Unlock()
}

// Snapshot returns the held roles at now, expiring stale presses first
func (s *HoldState) Snapshot(now time.Time) Hold {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timeout > 0 {
		for r := Role(0); r < roleCount; r++ {
			if s.held[r] && now.Sub(s.pressedAt[r]) >= s.timeout {
				s.held[r] = false
			}
		}
	}
	return s.held
}
