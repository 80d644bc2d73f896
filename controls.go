package bubblepop

// Control is the keyboard stand-in for one label: focusing it highlights
// that label's floating bubbles and activating it pops the first of them.
// It works without any pointer hit testing.
type Control struct {
	label   Label
	session *Session
}

// Label returns the label this control targets.
func (c *Control) Label() Label { return c.label }

// Activate pops the first floating bubble with this control's label and
// reports whether one was found.
func (c *Control) Activate() bool {
	for _, b := range c.session.bubbles {
		if b.label.Name == c.label.Name && b.phase == PhaseFloating {
			return c.session.pop(b)
		}
	}
	return false
}

// Focus marks exactly the floating bubbles with this label as focused.
func (c *Control) Focus() {
	for _, b := range c.session.bubbles {
		b.Focused = b.label.Name == c.label.Name && b.phase == PhaseFloating
	}
}

// Blur clears focus from every bubble.
func (c *Control) Blur() {
	for _, b := range c.session.bubbles {
		b.Focused = false
	}
}

// ControlBar holds one Control per distinct label, in sequence order, and
// tracks which one has keyboard focus.
type ControlBar struct {
	controls []*Control
	focus    int // -1 when nothing is focused
}

func newControlBar(s *Session, labels []Label) *ControlBar {
	cb := &ControlBar{focus: -1}
	for _, l := range labels {
		cb.controls = append(cb.controls, &Control{label: l, session: s})
	}
	return cb
}

// Controls returns the controls in order. The returned slice MUST NOT be
// mutated.
func (cb *ControlBar) Controls() []*Control {
	if cb == nil {
		return nil
	}
	return cb.controls
}

// Lookup returns the control for the named label.
func (cb *ControlBar) Lookup(name string) (*Control, bool) {
	if cb == nil {
		return nil, false
	}
	for _, c := range cb.controls {
		if c.label.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Focused returns the focused control, or nil.
func (cb *ControlBar) Focused() *Control {
	if cb == nil || cb.focus < 0 {
		return nil
	}
	return cb.controls[cb.focus]
}

// FocusIndex moves focus to control i, blurring the previous one first.
// An out-of-range index blurs.
func (cb *ControlBar) FocusIndex(i int) {
	if cb == nil {
		return
	}
	if prev := cb.Focused(); prev != nil {
		prev.Blur()
	}
	if i < 0 || i >= len(cb.controls) {
		cb.focus = -1
		return
	}
	cb.focus = i
	cb.controls[i].Focus()
}

// FocusLabel moves focus to the control for the named label.
func (cb *ControlBar) FocusLabel(name string) bool {
	if cb == nil {
		return false
	}
	for i, c := range cb.controls {
		if c.label.Name == name {
			cb.FocusIndex(i)
			return true
		}
	}
	return false
}

// Next moves focus forward, wrapping, like Tab.
func (cb *ControlBar) Next() {
	if cb == nil || len(cb.controls) == 0 {
		return
	}
	cb.FocusIndex((cb.focus + 1) % len(cb.controls))
}

// Prev moves focus backward, wrapping, like Shift+Tab.
func (cb *ControlBar) Prev() {
	if cb == nil || len(cb.controls) == 0 {
		return
	}
	i := cb.focus - 1
	if i < 0 {
		i = len(cb.controls) - 1
	}
	cb.FocusIndex(i)
}

// Blur drops keyboard focus.
func (cb *ControlBar) Blur() {
	cb.FocusIndex(-1)
}

// Activate activates the focused control.
func (cb *ControlBar) Activate() bool {
	c := cb.Focused()
	if c == nil {
		return false
	}
	return c.Activate()
}
