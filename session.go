package bubblepop

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"go.uber.org/zap"
)

// SessionOptions wires a Session to its environment. Every field is
// optional.
type SessionOptions struct {
	// Rand drives radii, spawn positions, wobble phases and surprise routes.
	// Defaults to a randomly seeded PCG source.
	Rand *rand.Rand
	// Navigator receives resolved routes. When nil, navigations are only logged.
	Navigator Navigator
	// Header reports the header boundary. When nil there is no header.
	Header HeaderSource
	// Motion is the reduced-motion preference. Defaults to the config value.
	Motion *MotionPreference
	Logger *zap.Logger
	// OnPop runs when a bubble starts popping.
	OnPop func(*Bubble)
}

// Stats counts bubble outcomes over the session's lifetime.
type Stats struct {
	Spawned     int
	Popped      int // pop requests that started a pop animation
	Faded       int // bubbles evicted after a header fade
	Navigations int
	Live        int
}

// Session owns the live bubbles, the frame clock, spawn cadence and input
// routing for one page view.
type Session struct {
	cfg    *Config
	routes *RouteTable
	rng    *rand.Rand
	nav    Navigator
	header HeaderSource
	motion *MotionPreference
	log    *zap.Logger
	onPop  func(*Bubble)

	// bubbles is kept in spawn order. Hit testing picks the first match, so
	// eviction must preserve the relative order of the survivors.
	bubbles  []*Bubble
	controls *ControlBar

	width, height, dpr float64
	bounds             HeaderBounds
	hovering           bool

	started   bool
	lastTick  time.Duration
	lastSpawn time.Duration
	seq       int

	lastTarget string
	stats      Stats
}

// NewSession validates cfg and creates an idle session. Call Resize before
// the first Tick so spawned bubbles know the viewport.
func NewSession(cfg *Config, opts SessionOptions) (*Session, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	routes, err := NewRouteTable(cfg.Labels)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:    cfg,
		routes: routes,
		rng:    opts.Rand,
		nav:    opts.Navigator,
		header: opts.Header,
		motion: opts.Motion,
		log:    opts.Logger,
		onPop:  opts.OnPop,
		dpr:    1,
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	if s.header == nil {
		s.header = StaticHeader{}
	}
	if s.motion == nil {
		s.motion = NewMotionPreference(cfg.Accessibility.ReducedMotion)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if cfg.Accessibility.Controls {
		s.controls = newControlBar(s, routes.Distinct())
	}
	return s, nil
}

// Config returns the session's configuration.
func (s *Session) Config() *Config { return s.cfg }

// Routes returns the validated label table.
func (s *Session) Routes() *RouteTable { return s.routes }

// Motion returns the reduced-motion preference.
func (s *Session) Motion() *MotionPreference { return s.motion }

// Controls returns the keyboard controls, or nil when they are disabled.
func (s *Session) Controls() *ControlBar { return s.controls }

// Bubbles returns the live bubbles in spawn order. The returned slice MUST
// NOT be mutated and is only valid until the next Tick.
func (s *Session) Bubbles() []*Bubble { return s.bubbles }

// Size returns the logical viewport size and device pixel ratio.
func (s *Session) Size() (width, height, dpr float64) {
	return s.width, s.height, s.dpr
}

// Header returns the header boundary captured at the last Resize.
func (s *Session) Header() HeaderBounds { return s.bounds }

// Hovering reports whether the last pointer move hovered any bubble.
func (s *Session) Hovering() bool { return s.hovering }

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() Stats {
	st := s.stats
	st.Live = len(s.bubbles)
	return st
}

// LastNavigation returns the most recent navigation target, if any.
func (s *Session) LastNavigation() (string, bool) {
	return s.lastTarget, s.lastTarget != ""
}

// Resize records the logical layout size and device pixel ratio, and
// re-reads the header boundary. Live bubbles collide with the new boundary.
func (s *Session) Resize(width, height, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	s.width, s.height, s.dpr = width, height, dpr
	s.bounds = s.header.HeaderBounds()
	for _, b := range s.bubbles {
		b.SetHeader(s.bounds)
	}
	s.log.Debug("resize",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Float64("dpr", dpr),
		zap.Bool("header", s.bounds.Present),
		zap.Float64("header_bottom", s.bounds.Bottom),
	)
}

// Start begins the session clock at now and spawns the first bubble
// immediately. Calling Start again has no effect.
func (s *Session) Start(now time.Duration) {
	if s.started {
		return
	}
	s.started = true
	s.lastTick = now
	s.spawn()
	s.lastSpawn = now
}

// Tick runs one frame: spawn when due, clear the surface, update and render
// every live bubble in order, then evict completed bubbles. surf may be nil
// to advance the simulation without drawing.
func (s *Session) Tick(now time.Duration, surf Surface) {
	if !s.started {
		s.Start(now)
	}

	dt := (now - s.lastTick).Seconds()
	if dt < 0 {
		dt = 0
	}
	s.lastTick = now

	if now-s.lastSpawn >= s.cfg.Timing.SpawnInterval.Duration {
		s.spawn()
		s.lastSpawn = now
	}

	if surf != nil {
		surf.Clear(0, 0, s.width, s.height)
	}

	reduced := s.motion.Reduced()
	for _, b := range s.bubbles {
		b.Update(dt)
		if reduced {
			b.Rotation = 0
		}
		if surf != nil {
			b.Render(surf)
		}
	}

	s.bubbles = slices.DeleteFunc(s.bubbles, func(b *Bubble) bool {
		if !b.Complete() {
			return false
		}
		if b.endedBy == PhaseFading {
			s.stats.Faded++
		}
		return true
	})
}

func (s *Session) spawn() {
	seq := s.routes.Sequence()
	label := seq[s.seq]
	s.seq = (s.seq + 1) % len(seq)

	b := NewBubble(BubbleParams{
		Label:          label,
		ViewportWidth:  s.width,
		ViewportHeight: s.height,
		Header:         s.bounds,
		Config:         s.cfg,
		Rand:           s.rng,
		OnPopped:       s.bubblePopped,
	})
	s.bubbles = append(s.bubbles, b)
	s.stats.Spawned++
	s.log.Debug("spawn",
		zap.String("label", label.Name),
		zap.Float64("radius", b.radius),
		zap.Float64("x", b.StartX),
	)
}

// pop requests a pop and fires the OnPop hook when it took effect.
func (s *Session) pop(b *Bubble) bool {
	if !b.Pop() {
		return false
	}
	s.stats.Popped++
	s.log.Debug("pop", zap.String("label", b.label.Name))
	if s.onPop != nil {
		s.onPop(b)
	}
	return true
}

// bubblePopped resolves the popped bubble's route and navigates. Runs once
// per bubble, when its pop animation completes.
func (s *Session) bubblePopped(b *Bubble) {
	target, err := s.routes.Resolve(b.label.Name, s.rng)
	if err != nil {
		s.log.Error("resolve route", zap.String("label", b.label.Name), zap.Error(err))
		return
	}
	s.stats.Navigations++
	s.lastTarget = target
	if s.nav == nil {
		s.log.Info("navigate", zap.String("label", b.label.Name), zap.String("target", target))
		return
	}
	if err := s.nav.Navigate(target); err != nil {
		s.log.Error("navigation failed",
			zap.String("target", target),
			zap.Error(fmt.Errorf("bubblepop: navigate: %w", err)),
		)
	}
}

// PointerMove recomputes every bubble's hover flag for a pointer at (x, y)
// and reports whether any bubble is hovered.
func (s *Session) PointerMove(x, y float64) bool {
	hovered := false
	for _, b := range s.bubbles {
		b.Hovered = b.Contains(x, y)
		if b.Hovered {
			hovered = true
		}
	}
	s.hovering = hovered
	return hovered
}

// PointerDown requests a pop on the first bubble, in spawn order, that
// contains (x, y). At most one bubble is affected per event; the request is
// a no-op if that bubble is no longer floating. Returns the hit bubble.
func (s *Session) PointerDown(x, y float64) *Bubble {
	for _, b := range s.bubbles {
		if b.Contains(x, y) {
			s.pop(b)
			return b
		}
	}
	return nil
}

// Touch handles the start of a touch at (x, y) exactly like PointerDown.
func (s *Session) Touch(x, y float64) *Bubble {
	return s.PointerDown(x, y)
}
