package bubblepop

import "testing"

var (
	red   = Color{1, 0, 0, 1}
	green = Color{0, 1, 0, 1}
	blue  = Color{0, 0, 1, 1}
)

func threeStops() []ColorStop {
	return []ColorStop{{0, red}, {0.5, green}, {1, blue}}
}

func TestSampleStops(t *testing.T) {
	stops := threeStops()
	tests := []struct {
		t    float64
		want Color
	}{
		{-1, red},
		{0, red},
		{0.25, Color{0.5, 0.5, 0, 1}},
		{0.5, green},
		{0.75, Color{0, 0.5, 0.5, 1}},
		{1, blue},
		{3, blue},
	}
	for _, tt := range tests {
		if got := sampleStops(stops, tt.t); !colorNear(got, tt.want, 1e-9) {
			t.Errorf("sampleStops(%v) = %+v, want %+v", tt.t, got, tt.want)
		}
	}
}

func TestSampleStopsDegenerate(t *testing.T) {
	if got := sampleStops(nil, 0.5); got != ColorTransparent {
		t.Errorf("no stops = %+v, want transparent", got)
	}
	if got := sampleStops([]ColorStop{{0.3, green}}, 0.9); got != green {
		t.Errorf("single stop = %+v, want green", got)
	}
}

func TestLinearGradient(t *testing.T) {
	g := LinearGradient{X0: -10, Y0: 0, X1: 10, Y1: 0, Stops: threeStops()}
	tests := []struct {
		x, y float64
		want Color
	}{
		{-10, 0, red},
		{-20, 5, red},
		{0, 0, green},
		{0, 100, green}, // perpendicular offset does not change t
		{10, 0, blue},
		{50, 0, blue},
	}
	for _, tt := range tests {
		if got := g.ColorAt(tt.x, tt.y); !colorNear(got, tt.want, 1e-9) {
			t.Errorf("ColorAt(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLinearGradientZeroLength(t *testing.T) {
	g := LinearGradient{Stops: threeStops()}
	if got := g.ColorAt(5, 5); got != red {
		t.Errorf("zero-length gradient = %+v, want first stop", got)
	}
}

func TestRadialGradientConcentric(t *testing.T) {
	g := RadialGradient{R1: 100, Stops: threeStops()}
	tests := []struct {
		x, y float64
		want Color
	}{
		{0, 0, red},
		{50, 0, green},
		{0, -50, green},
		{100, 0, blue},
		{200, 0, blue},
	}
	for _, tt := range tests {
		if got := g.ColorAt(tt.x, tt.y); !colorNear(got, tt.want, 1e-9) {
			t.Errorf("ColorAt(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRadialGradientOffsetFocus(t *testing.T) {
	// Start circle is a point at (-30, -30) inside the end circle of radius 100.
	g := RadialGradient{X0: -30, Y0: -30, R1: 100, Stops: threeStops()}
	if got := g.ColorAt(-30, -30); !colorNear(got, red, 1e-9) {
		t.Errorf("focus = %+v, want first stop", got)
	}
	// Points on the end circle are at t = 1.
	for _, p := range [][2]float64{{100, 0}, {0, 100}, {-100, 0}, {0, -100}} {
		if got := g.ColorAt(p[0], p[1]); !colorNear(got, blue, 1e-6) {
			t.Errorf("edge %v = %+v, want last stop", p, got)
		}
	}
	// The center is nearer the focus side, so t < 0.5 there.
	c := g.ColorAt(0, 0)
	if c.R <= 0 || c.B != 0 {
		t.Errorf("center = %+v, want a red/green mix", c)
	}
}
