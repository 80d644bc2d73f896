package bubblepop

import "testing"

func TestInputQueueOneEventPerProcess(t *testing.T) {
	s := newTestSession(t, nil, SessionOptions{})
	s.Tick(0, nil)
	b := s.Bubbles()[0]

	var q InputQueue
	q.InjectClick(b.X, b.Y)
	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (move + press)", q.Len())
	}

	if !q.process(s) {
		t.Fatal("first process should consume the move")
	}
	if !b.Hovered || b.Phase() != PhaseFloating {
		t.Fatalf("after move: hovered=%v phase=%v", b.Hovered, b.Phase())
	}
	if !q.process(s) {
		t.Fatal("second process should consume the press")
	}
	if b.Phase() != PhasePopping {
		t.Errorf("after press: phase = %v, want popping", b.Phase())
	}
	if q.process(s) {
		t.Error("empty queue should report false")
	}
}

func TestInputQueueTouch(t *testing.T) {
	s := newTestSession(t, nil, SessionOptions{})
	s.Tick(0, nil)
	b := s.Bubbles()[0]

	var q InputQueue
	q.InjectTouch(b.X, b.Y)
	q.process(s)
	if b.Phase() != PhasePopping {
		t.Errorf("phase = %v, want popping", b.Phase())
	}
}

func TestInputQueueKeyboard(t *testing.T) {
	s := newTestSession(t, nil, SessionOptions{})
	s.Tick(0, nil)
	b := s.Bubbles()[0]

	var q InputQueue
	q.InjectFocus("Resume")
	q.InjectBlur()
	q.InjectFocus("Resume")
	q.InjectActivate()

	q.process(s)
	if !b.Focused {
		t.Fatal("focus should mark the Resume bubble")
	}
	q.process(s)
	if b.Focused {
		t.Fatal("blur should clear focus")
	}
	q.process(s)
	q.process(s)
	if b.Phase() != PhasePopping {
		t.Errorf("activate: phase = %v, want popping", b.Phase())
	}
}

func TestInputQueueKeyboardWithoutControls(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Accessibility.Controls = false
	s := newTestSession(t, cfg, SessionOptions{})
	s.Tick(0, nil)

	var q InputQueue
	q.InjectFocus("Resume")
	q.InjectActivate()
	for q.process(s) {
	}
	if s.Bubbles()[0].Phase() != PhaseFloating {
		t.Error("keyboard path should be skipped without controls")
	}
}
