package bubblepop

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Phase is a bubble's stage in its lifecycle. Phases only move forward:
// floating → popping → complete, or floating → fading → complete.
type Phase uint8

const (
	PhaseFloating Phase = iota // rising toward the header
	PhasePopping               // popped by the user; navigates on completion
	PhaseFading                // reached the header; vanishes without navigating
	PhaseComplete              // terminal; no further updates or drawing
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseFloating:
		return "floating"
	case PhasePopping:
		return "popping"
	case PhaseFading:
		return "fading"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// timeEpsilon absorbs float accumulation when comparing elapsed time
// against a phase duration.
const timeEpsilon = 1e-9

// HeaderBounds is the bottom edge of the fixed header overlay. When Present
// is false there is no header and collision fading is disabled.
type HeaderBounds struct {
	Bottom  float64
	Present bool
}

// BubbleParams carries everything a new bubble needs from its spawner.
type BubbleParams struct {
	Label          Label
	ViewportWidth  float64
	ViewportHeight float64
	Header         HeaderBounds
	Config         *Config
	Rand           *rand.Rand
	// OnPopped runs once, when a popped bubble finishes its pop animation.
	OnPopped func(*Bubble)
}

// Bubble is one floating, poppable label.
type Bubble struct {
	X, Y     float64
	StartX   float64 // center of the horizontal oscillation
	Scale    float64
	Rotation float64 // degrees
	Opacity  float64
	Age      float64 // seconds since creation

	Hovered bool
	Focused bool

	label        Label
	radius       float64
	wobbleOffset float64
	phase        Phase
	phaseStart   float64 // Age when popping or fading began
	endedBy      Phase   // PhasePopping or PhaseFading once complete

	viewportHeight float64
	header         HeaderBounds
	cfg            *Config
	onPopped       func(*Bubble)

	// Cached timings in seconds.
	floatSec, popSec, fadeSec, pulseSec float64

	grow   *gween.Tween // popping: scale 1 → PopScale over the first third
	vanish *gween.Tween // popping: opacity 1 → 0 over the remaining two thirds
	fade   *gween.Tween // fading: opacity 1 → 0
}

// NewBubble creates a bubble just below the bottom of the viewport with a
// random radius, horizontal anchor and wobble phase.
func NewBubble(p BubbleParams) *Bubble {
	cfg := p.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	rng := p.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	b := &Bubble{
		Scale:          1,
		Opacity:        1,
		label:          p.Label,
		viewportHeight: p.ViewportHeight,
		header:         p.Header,
		cfg:            cfg,
		onPopped:       p.OnPopped,
		floatSec:       cfg.Timing.FloatDuration.Seconds(),
		popSec:         cfg.Timing.PopDuration.Seconds(),
		fadeSec:        cfg.Timing.FadeDuration.Seconds(),
		pulseSec:       cfg.Timing.PulsePeriod.Seconds(),
	}

	b.radius = cfg.Size.MinRadius + rng.Float64()*(cfg.Size.MaxRadius-cfg.Size.MinRadius)

	padding := b.radius + cfg.Size.SpawnMargin
	span := p.ViewportWidth - padding*2
	if span > 0 {
		b.StartX = padding + rng.Float64()*span
	} else {
		b.StartX = p.ViewportWidth / 2
	}
	b.X = b.StartX
	b.Y = p.ViewportHeight + b.radius

	b.wobbleOffset = rng.Float64() * math.Pi * 2
	return b
}

// Label returns the bubble's label.
func (b *Bubble) Label() Label { return b.label }

// Radius returns the radius chosen at creation.
func (b *Bubble) Radius() float64 { return b.radius }

// Phase returns the current lifecycle phase.
func (b *Bubble) Phase() Phase { return b.phase }

// Complete reports whether the bubble reached its terminal phase.
func (b *Bubble) Complete() bool { return b.phase == PhaseComplete }

// SetHeader replaces the header boundary used for collision.
func (b *Bubble) SetHeader(h HeaderBounds) { b.header = h }

// Update advances the bubble by dt seconds.
func (b *Bubble) Update(dt float64) {
	if b.phase == PhaseComplete {
		return
	}
	if dt < 0 {
		dt = 0
	}
	b.Age += dt

	switch b.phase {
	case PhasePopping:
		b.updatePop()
		return
	case PhaseFading:
		b.updateFade()
		return
	}

	ph := &b.cfg.Physics

	// Constant-speed rise covering the viewport plus the bubble's diameter.
	speed := (b.viewportHeight + b.radius*2) / b.floatSec
	b.Y -= speed * dt

	frequency := 2 * math.Pi * ph.OscillationCycles / b.floatSec
	b.X = b.StartX + math.Sin(b.Age*frequency)*ph.OscillationAmplitude

	pulsePhase := math.Mod(b.Age, b.pulseSec) / b.pulseSec
	scale := 1 + math.Sin(pulsePhase*math.Pi*2)*ph.PulseAmplitude
	if b.Hovered || b.Focused {
		scale *= ph.HoverScale
	}
	b.Scale = scale

	wobbleFreq := 2 * math.Pi * ph.WobbleCycles / b.floatSec
	b.Rotation = math.Sin(b.Age*wobbleFreq+b.wobbleOffset) * ph.WobbleAmplitude

	if b.header.Present {
		if b.Y-b.radius <= b.header.Bottom {
			b.startFade()
		}
	} else if b.Y+b.radius <= 0 {
		b.startFade()
	}
}

// Pop starts the pop animation. It reports false, and does nothing, unless
// the bubble is floating.
func (b *Bubble) Pop() bool {
	if b.phase != PhaseFloating {
		return false
	}
	b.phase = PhasePopping
	b.phaseStart = b.Age

	third := float32(b.popSec / 3)
	b.grow = gween.New(1, float32(b.cfg.Physics.PopScale), third, ease.Linear)
	b.vanish = gween.New(1, 0, float32(b.popSec)-third, ease.Linear)
	return true
}

func (b *Bubble) startFade() {
	if b.phase != PhaseFloating {
		return
	}
	b.phase = PhaseFading
	b.phaseStart = b.Age
	b.fade = gween.New(1, 0, float32(b.fadeSec), ease.Linear)
}

func (b *Bubble) updatePop() {
	elapsed := b.Age - b.phaseStart
	if elapsed >= b.popSec-timeEpsilon {
		b.Scale = b.cfg.Physics.PopScale
		b.Opacity = 0
		b.phase = PhaseComplete
		b.endedBy = PhasePopping
		if b.onPopped != nil {
			b.onPopped(b)
		}
		return
	}

	third := b.popSec / 3
	if elapsed < third {
		s, _ := b.grow.Set(float32(elapsed))
		b.Scale = float64(s)
		return
	}
	b.Scale = b.cfg.Physics.PopScale
	o, _ := b.vanish.Set(float32(elapsed - third))
	b.Opacity = clamp01(float64(o))
}

func (b *Bubble) updateFade() {
	elapsed := b.Age - b.phaseStart
	if elapsed >= b.fadeSec-timeEpsilon {
		b.Opacity = 0
		b.phase = PhaseComplete
		b.endedBy = PhaseFading
		return
	}
	o, _ := b.fade.Set(float32(elapsed))
	b.Opacity = clamp01(float64(o))
}
