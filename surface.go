package bubblepop

// Surface is the drawing capability a bubble renders onto. Coordinates are
// in logical (layout) pixels; implementations apply any device pixel ratio.
//
// Transform calls compose onto the current matrix the way a canvas 2D
// context does: the last call applies first to drawn geometry. Save and
// Restore push and pop the matrix and the global alpha together.
type Surface interface {
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(radians float64)
	Scale(sx, sy float64)
	// SetAlpha sets the global alpha multiplied into every subsequent draw.
	SetAlpha(a float64)

	// Clear makes the given rectangle fully transparent.
	Clear(x, y, w, h float64)
	FillRect(x, y, w, h float64, p Paint)
	FillCircle(cx, cy, r float64, p Paint)
	StrokeCircle(cx, cy, r, width float64, c Color)
	// FillText draws s centered horizontally and vertically on (x, y).
	FillText(s string, x, y float64, style TextStyle)
	// MeasureText returns the advance width of s at the given font size.
	MeasureText(s string, size float64) float64
}

// Shadow is a drop shadow drawn beneath text.
type Shadow struct {
	Color            Color
	OffsetX, OffsetY float64
	Blur             float64
}

// TextStyle selects how FillText renders. Fill is sampled in the current
// frame, like any other paint.
type TextStyle struct {
	Size   float64
	Fill   Paint
	Shadow *Shadow
}
