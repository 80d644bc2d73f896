package bubblepop

import "math"

var (
	highlightFade = Color{1, 1, 1, 0}
	labelShadow   = Shadow{Color: Color{0, 0, 0, 0.3}, OffsetX: 1, OffsetY: 1, Blur: 3}
)

const (
	minLabelSize     = 18
	labelSizeFactor  = 0.35
	iridescenceSpeed = 30 // hue degrees per second
)

// Render draws the bubble in its local frame: translated to its center,
// rotated, scaled, and faded by its opacity. Complete bubbles draw nothing.
func (b *Bubble) Render(s Surface) {
	if b.phase == PhaseComplete {
		return
	}

	s.Save()
	defer s.Restore()

	s.Translate(b.X, b.Y)
	s.Rotate(b.Rotation * math.Pi / 180)
	s.Scale(b.Scale, b.Scale)
	s.SetAlpha(b.Opacity)

	b.drawBase(s)
	b.drawIridescence(s)
	b.drawHighlight(s)
	b.drawEdge(s)
	b.drawLabel(s)

	if b.Focused {
		b.drawFocusRing(s)
	}
}

func (b *Bubble) drawBase(s Surface) {
	c := &b.cfg.Colors.Bubble
	r := b.radius
	s.FillCircle(0, 0, r, RadialGradient{
		X0: -r * 0.3, Y0: -r * 0.3, R0: 0,
		X1: 0, Y1: 0, R1: r,
		Stops: []ColorStop{
			{0, c.BaseLight},
			{0.5, c.BaseMid},
			{1, c.BaseDark},
		},
	})
}

// iridescenceHue is the base hue of the shimmer layer, cycling with age.
func (b *Bubble) iridescenceHue() float64 {
	return math.Mod(b.Age*iridescenceSpeed, 360)
}

func (b *Bubble) drawIridescence(s Surface) {
	r := b.radius
	hue := b.iridescenceHue()
	s.FillCircle(0, 0, r, LinearGradient{
		X0: -r, Y0: -r, X1: r, Y1: r,
		Stops: []ColorStop{
			{0, HSLA(hue, 0.7, 0.7, 0.15)},
			{0.5, HSLA(math.Mod(hue+120, 360), 0.7, 0.7, 0.15)},
			{1, HSLA(math.Mod(hue+240, 360), 0.7, 0.7, 0.15)},
		},
	})
}

func (b *Bubble) drawHighlight(s Surface) {
	hx := -b.radius * 0.4
	hy := -b.radius * 0.4
	hr := b.radius * 0.25
	s.FillCircle(hx, hy, hr, RadialGradient{
		X0: hx, Y0: hy, R0: 0,
		X1: hx, Y1: hy, R1: hr,
		Stops: []ColorStop{
			{0, b.cfg.Colors.Bubble.Highlight},
			{1, highlightFade},
		},
	})
}

func (b *Bubble) drawEdge(s Surface) {
	s.StrokeCircle(0, 0, b.radius-1, 2, b.cfg.Colors.Bubble.Edge)
}

// labelSize is the label font size, which grows with the bubble.
func (b *Bubble) labelSize() float64 {
	return math.Max(minLabelSize, b.radius*labelSizeFactor)
}

func (b *Bubble) drawLabel(s Surface) {
	size := b.labelSize()
	w := s.MeasureText(b.label.Name, size)
	shadow := labelShadow
	s.FillText(b.label.Name, 0, 0, TextStyle{
		Size:   size,
		Fill:   metallicFill(b.cfg.Colors.Metallic, w),
		Shadow: &shadow,
	})
}

// metallicFill spans the metallic stops across text of width w centered on
// the origin.
func metallicFill(m MetallicColors, w float64) Paint {
	return LinearGradient{
		X0: -w / 2, X1: w / 2,
		Stops: []ColorStop{
			{0, m.Start},
			{0.5, m.Mid},
			{1, m.End},
		},
	}
}

func (b *Bubble) drawFocusRing(s Surface) {
	s.StrokeCircle(0, 0, b.radius+4, 3, b.cfg.Colors.Metallic.Mid)
}
