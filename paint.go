package bubblepop

import "math"

// Paint yields the fill color at a point in the current local coordinate
// frame. Surfaces sample it per vertex.
type Paint interface {
	ColorAt(x, y float64) Color
}

// ColorStop is one stop of a gradient. Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  Color
}

// Solid is a single-color Paint.
type Solid Color

// ColorAt implements Paint.
func (s Solid) ColorAt(_, _ float64) Color {
	return Color(s)
}

// LinearGradient varies along the line from (X0, Y0) to (X1, Y1). Points
// beyond either end take the nearest end stop.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

// ColorAt implements Paint.
func (g LinearGradient) ColorAt(x, y float64) Color {
	dx := g.X1 - g.X0
	dy := g.Y1 - g.Y0
	den := dx*dx + dy*dy
	if den == 0 {
		return sampleStops(g.Stops, 0)
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / den
	return sampleStops(g.Stops, t)
}

// RadialGradient interpolates between a start circle (X0, Y0, R0) and an end
// circle (X1, Y1, R1), with the same semantics as a canvas radial gradient
// whose start circle lies inside the end circle.
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
}

// ColorAt implements Paint. It solves for the largest t such that the point
// lies on the circle interpolated between start and end at t.
func (g RadialGradient) ColorAt(x, y float64) Color {
	cdx := g.X1 - g.X0
	cdy := g.Y1 - g.Y0
	dr := g.R1 - g.R0
	pdx := x - g.X0
	pdy := y - g.Y0

	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + g.R0*dr
	c := pdx*pdx + pdy*pdy - g.R0*g.R0

	var t float64
	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return ColorTransparent
		}
		t = c / (2 * b)
	} else {
		disc := b*b - a*c
		if disc < 0 {
			return ColorTransparent
		}
		sq := math.Sqrt(disc)
		t = (b + sq) / a
		if g.R0+t*dr < 0 {
			t = (b - sq) / a
			if g.R0+t*dr < 0 {
				return ColorTransparent
			}
		}
	}
	return sampleStops(g.Stops, t)
}

// sampleStops returns the color at t, clamping to the first and last stop.
// Stops must be sorted by Offset.
func sampleStops(stops []ColorStop, t float64) Color {
	switch len(stops) {
	case 0:
		return ColorTransparent
	case 1:
		return stops[0].Color
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		hi := stops[i]
		if t > hi.Offset {
			continue
		}
		lo := stops[i-1]
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color
		}
		return lerpColor(lo.Color, hi.Color, (t-lo.Offset)/span)
	}
	return last.Color
}
