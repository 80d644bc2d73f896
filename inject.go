package bubblepop

type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticPress
	syntheticTouch
	syntheticFocus
	syntheticBlur
	syntheticActivate
)

// syntheticEvent is a single injected input event. Coordinates are logical
// layout pixels, the same space real pointer input is mapped into.
type syntheticEvent struct {
	kind  syntheticKind
	x, y  float64
	label string
}

// InputQueue holds injected input. One event is consumed per frame, before
// real input is read; while an event is consumed real pointer input is
// skipped for that frame.
type InputQueue struct {
	events []syntheticEvent
}

// Len returns the number of pending events.
func (q *InputQueue) Len() int { return len(q.events) }

// InjectMove queues a pointer move to (x, y).
func (q *InputQueue) InjectMove(x, y float64) {
	q.events = append(q.events, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectPress queues a left-button press at (x, y).
func (q *InputQueue) InjectPress(x, y float64) {
	q.events = append(q.events, syntheticEvent{kind: syntheticPress, x: x, y: y})
}

// InjectClick is a convenience that queues a move followed by a press at the
// same coordinates, so hover state is set first. Consumes two frames.
func (q *InputQueue) InjectClick(x, y float64) {
	q.InjectMove(x, y)
	q.InjectPress(x, y)
}

// InjectTouch queues the start of a touch at (x, y).
func (q *InputQueue) InjectTouch(x, y float64) {
	q.events = append(q.events, syntheticEvent{kind: syntheticTouch, x: x, y: y})
}

// InjectFocus queues keyboard focus moving to the named label's control.
func (q *InputQueue) InjectFocus(label string) {
	q.events = append(q.events, syntheticEvent{kind: syntheticFocus, label: label})
}

// InjectBlur queues keyboard focus being dropped.
func (q *InputQueue) InjectBlur() {
	q.events = append(q.events, syntheticEvent{kind: syntheticBlur})
}

// InjectActivate queues activation of the focused control.
func (q *InputQueue) InjectActivate() {
	q.events = append(q.events, syntheticEvent{kind: syntheticActivate})
}

// process pops one event and feeds it to s through the same methods real
// input uses. Returns true if an event was consumed.
func (q *InputQueue) process(s *Session) bool {
	if len(q.events) == 0 {
		return false
	}
	evt := q.events[0]
	copy(q.events, q.events[1:])
	q.events = q.events[:len(q.events)-1]

	switch evt.kind {
	case syntheticMove:
		s.PointerMove(evt.x, evt.y)
	case syntheticPress:
		s.PointerDown(evt.x, evt.y)
	case syntheticTouch:
		s.Touch(evt.x, evt.y)
	case syntheticFocus:
		s.Controls().FocusLabel(evt.label)
	case syntheticBlur:
		s.Controls().Blur()
	case syntheticActivate:
		s.Controls().Activate()
	}
	return true
}
