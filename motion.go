package bubblepop

import "sync/atomic"

// MotionPreference tracks the system "reduce motion" setting. Platform
// watchers may update it from outside the game goroutine.
type MotionPreference struct {
	reduced atomic.Bool
}

// NewMotionPreference returns a preference with the given initial value.
func NewMotionPreference(reduced bool) *MotionPreference {
	m := &MotionPreference{}
	m.reduced.Store(reduced)
	return m
}

// Reduced reports whether reduced motion is requested. A nil preference
// reports false.
func (m *MotionPreference) Reduced() bool {
	if m == nil {
		return false
	}
	return m.reduced.Load()
}

// SetReduced records a preference change.
func (m *MotionPreference) SetReduced(v bool) {
	m.reduced.Store(v)
}
