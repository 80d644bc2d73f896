package bubblepop

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// Script sequences injected input and screenshots across frames for
// automated visual checks. Scripts are YAML, which also accepts JSON:
//
//	steps:
//	  - {action: wait, frames: 120}
//	  - {action: click, x: 512, y: 600}
//	  - {action: focus, label: Projects}
//	  - {action: activate}
//	  - {action: screenshot, label: after-pop}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML or JSON input script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("bubblepop: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("bubblepop: parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "move", "click", "touch", "blur", "activate", "wait", "screenshot":
		case "focus":
			if st.Label == "" {
				return nil, fmt.Errorf("bubblepop: parse script: step %d: focus needs a label", i)
			}
		default:
			return nil, fmt.Errorf("bubblepop: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one frame. Injections are queued on q and
// captures requested from shots; the script waits for q to drain before
// moving on.
func (r *Script) step(q *InputQueue, shots *screenshots) {
	if r.done {
		return
	}
	if q.Len() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		if shots != nil {
			shots.request(st.Label)
		}
	case "move":
		q.InjectMove(st.X, st.Y)
	case "click":
		q.InjectClick(st.X, st.Y)
	case "touch":
		q.InjectTouch(st.X, st.Y)
	case "focus":
		q.InjectFocus(st.Label)
	case "blur":
		q.InjectBlur()
	case "activate":
		q.InjectActivate()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && q.Len() == 0 {
		r.done = true
	}
}
