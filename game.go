package bubblepop

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// statsInterval is how often session counters are logged.
const statsInterval = time.Second

// fpsRefresh is how often the FPS overlay text is recomputed.
const fpsRefresh = 500 * time.Millisecond

// RunConfig holds optional parameters for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// ExitOnNavigate ends the game loop after the first navigation.
	ExitOnNavigate bool
	// Script, when set, drives injected input and screenshots.
	Script        *Script
	ScreenshotDir string
	Logger        *zap.Logger
}

// Game adapts a Session to ebiten.Game. Update reads input; Draw ticks the
// session, so bubble time advances once per rendered frame.
type Game struct {
	session *Session
	cfg     RunConfig
	log     *zap.Logger

	fonts  *FontCache
	surf   *ImageSurface
	canvas *ebiten.Image // bubble layer, cleared by the session every tick

	width, height float64
	dpr           float64

	start time.Time
	now   func() time.Duration

	inputs   InputQueue
	script   *Script
	shots    *screenshots
	touchIDs []ebiten.TouchID
	cursorX  float64
	cursorY  float64
	pointer  bool

	lastStats time.Duration
	lastFPS   time.Duration
	fpsText   string
}

// NewGame loads the label font and prepares a game for session. A font that
// cannot be loaded is a startup error.
func NewGame(session *Session, cfg RunConfig) (*Game, error) {
	fonts, err := DefaultFont()
	if err != nil {
		return nil, fmt.Errorf("bubblepop: load font: %w", err)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		session: session,
		cfg:     cfg,
		log:     log,
		fonts:   fonts,
		surf:    NewImageSurface(fonts),
		dpr:     1,
		script:  cfg.Script,
		shots:   newScreenshots(cfg.ScreenshotDir, log),
		start:   time.Now(),
		cursorX: math.NaN(),
		cursorY: math.NaN(),
	}
	g.now = func() time.Duration { return time.Since(g.start) }
	return g, nil
}

// Inputs returns the queue injected input is read from.
func (g *Game) Inputs() *InputQueue { return &g.inputs }

// Screenshot queues a labeled PNG capture of the next drawn frame.
func (g *Game) Screenshot(label string) { g.shots.request(label) }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.script != nil {
		g.script.step(&g.inputs, g.shots)
	}
	if !g.inputs.process(g.session) {
		g.processInput()
	}
	g.updateCursor()

	if g.cfg.ExitOnNavigate && g.session.Stats().Navigations > 0 {
		g.log.Info("exiting after navigation")
		return ebiten.Termination
	}
	return nil
}

// processInput maps Ebitengine pointer, touch and key state onto the
// session. Device pixels are converted to layout pixels.
func (g *Game) processInput() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx)/g.dpr, float64(cy)/g.dpr
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.session.PointerMove(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.PointerDown(x, y)
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		g.session.Touch(float64(tx)/g.dpr, float64(ty)/g.dpr)
	}

	cb := g.session.Controls()
	if cb == nil {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			cb.Prev()
		} else {
			cb.Next()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		inpututil.IsKeyJustPressed(ebiten.KeySpace):
		cb.Activate()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		cb.Blur()
	}
}

func (g *Game) updateCursor() {
	hovering := g.session.Hovering()
	if hovering == g.pointer {
		return
	}
	g.pointer = hovering
	if hovering {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	now := g.now()
	cfg := g.session.Config()

	g.surf.Reset(screen, g.dpr)
	g.drawSky(cfg)

	if g.canvas != nil {
		g.surf.Reset(g.canvas, g.dpr)
		g.session.Tick(now, g.surf)
		screen.DrawImage(g.canvas, nil)
	}

	g.surf.Reset(screen, g.dpr)
	if hostDrawsHeader && cfg.Header.Height > 0 {
		g.drawHeader(cfg)
	}
	g.drawFocusHint(cfg)

	if g.cfg.ShowFPS {
		g.drawFPS(screen, now)
	}
	g.logStats(now)
	g.shots.flush(screen)
}

// Layout implements ebiten.Game. The screen is sized in device pixels; the
// session keeps working in layout pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := 1.0
	if m := ebiten.Monitor(); m != nil {
		dpr = m.DeviceScaleFactor()
	}
	g.resize(float64(outsideWidth), float64(outsideHeight), dpr)
	return int(math.Ceil(g.width * g.dpr)), int(math.Ceil(g.height * g.dpr))
}

func (g *Game) resize(width, height, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	if width == g.width && height == g.height && dpr == g.dpr && g.canvas != nil {
		return
	}
	g.width, g.height, g.dpr = width, height, dpr
	g.session.Resize(width, height, dpr)

	w, h := int(math.Ceil(width*dpr)), int(math.Ceil(height*dpr))
	if w < 1 || h < 1 {
		return
	}
	if g.canvas != nil {
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(w, h)
}

func (g *Game) drawSky(cfg *Config) {
	sky := cfg.Colors.Sky
	g.surf.FillRect(0, 0, g.width, g.height, LinearGradient{
		X0: 0, Y0: 0, X1: 0, Y1: g.height,
		Stops: []ColorStop{
			{Offset: 0, Color: sky.Top},
			{Offset: 0.5, Color: sky.Mid},
			{Offset: 1, Color: sky.Bottom},
		},
	})
}

// drawHeader paints the translucent band bubbles fade out beneath.
func (g *Game) drawHeader(cfg *Config) {
	h := cfg.Header.Height
	g.surf.FillRect(0, 0, g.width, h, LinearGradient{
		X0: 0, Y0: 0, X1: 0, Y1: h,
		Stops: []ColorStop{
			{Offset: 0, Color: RGBA(255, 255, 255, 0.7)},
			{Offset: 1, Color: RGBA(255, 255, 255, 0.35)},
		},
	})
	if cfg.Header.Title == "" {
		return
	}
	size := math.Max(18, h*0.4)
	w := g.surf.MeasureText(cfg.Header.Title, size)
	g.surf.Save()
	defer g.surf.Restore()
	g.surf.Translate(g.width/2, h/2)
	g.surf.FillText(cfg.Header.Title, 0, 0, TextStyle{
		Size:   size,
		Fill:   metallicFill(cfg.Colors.Metallic, w),
		Shadow: &Shadow{Color: RGBA(0, 0, 0, 0.2), OffsetX: 1, OffsetY: 1, Blur: 2},
	})
}

// drawFocusHint shows which label the keyboard focus is on.
func (g *Game) drawFocusHint(cfg *Config) {
	c := g.session.Controls().Focused()
	if c == nil {
		return
	}
	const size, pad = 16.0, 10.0
	msg := fmt.Sprintf("%s · Enter to pop", c.Label().Name)
	w := g.surf.MeasureText(msg, size) + pad*2
	h := size + pad*2
	x, y := (g.width-w)/2, g.height-h-pad
	g.surf.FillRect(x, y, w, h, Solid(RGBA(0, 0, 0, 0.45)))
	g.surf.FillText(msg, g.width/2, y+h/2, TextStyle{
		Size: size,
		Fill: Solid(cfg.Colors.Metallic.Start),
	})
}

func (g *Game) drawFPS(screen *ebiten.Image, now time.Duration) {
	if g.fpsText == "" || now-g.lastFPS >= fpsRefresh {
		g.lastFPS = now
		g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nBubbles: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), len(g.session.Bubbles()))
	}
	g.surf.FillRect(0, 0, 110/g.dpr, 52/g.dpr, Solid(RGBA(0, 0, 0, 0.5)))
	ebitenutil.DebugPrint(screen, g.fpsText)
}

func (g *Game) logStats(now time.Duration) {
	if now-g.lastStats < statsInterval {
		return
	}
	g.lastStats = now
	st := g.session.Stats()
	g.log.Debug("stats",
		zap.Int("spawned", st.Spawned),
		zap.Int("popped", st.Popped),
		zap.Int("faded", st.Faded),
		zap.Int("navigations", st.Navigations),
		zap.Int("live", st.Live),
		zap.Float64("fps", ebiten.ActualFPS()),
	)
}

// Run creates a window for session and runs the game loop until the window
// is closed or, with ExitOnNavigate, until the first navigation.
func Run(session *Session, cfg RunConfig) error {
	g, err := NewGame(session, cfg)
	if err != nil {
		return err
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("bubblepop: run: %w", err)
	}
	return nil
}
