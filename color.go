package bubblepop

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is fully transparent black.
var ColorTransparent = Color{}

// RGBA builds a Color from 8-bit channels and a [0, 1] alpha, matching the
// CSS rgba() notation.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, clamp01(a)}
}

// HSLA builds a Color from a hue in degrees, saturation and lightness in
// [0, 1], and alpha in [0, 1].
func HSLA(h, s, l, a float64) Color {
	return fromColorful(colorful.Hsl(h, s, l), a)
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// premultiplied returns float32 channels premultiplied by alpha, scaled by
// the extra alpha factor.
func (c Color) premultiplied(alpha float64) (r, g, b, a float32) {
	fa := c.A * alpha
	return float32(c.R * fa), float32(c.G * fa), float32(c.B * fa), float32(fa)
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(cc colorful.Color, a float64) Color {
	cc = cc.Clamped()
	return Color{R: cc.R, G: cc.G, B: cc.B, A: clamp01(a)}
}

// lerpColor blends two colors in straight (non-premultiplied) RGB space,
// which is how canvas gradients interpolate their stops.
func lerpColor(a, b Color, t float64) Color {
	t = clamp01(t)
	return fromColorful(a.colorful().BlendRgb(b.colorful(), t), a.A+(b.A-a.A)*t)
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or "rgba(r, g, b, a)".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseRGBA(s[len("rgba(") : len(s)-1])
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBA(s[len("rgb(") : len(s)-1])
	}
	return Color{}, fmt.Errorf("bubblepop: unsupported color %q", s)
}

// MustParseColor is ParseColor for package-level tables; it panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (Color, error) {
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("bubblepop: invalid alpha in %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	cc, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("bubblepop: invalid hex color %q: %w", s, err)
	}
	return fromColorful(cc, alpha), nil
}

func parseRGBA(body string) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("bubblepop: rgba needs 3 or 4 components, got %d", len(parts))
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return Color{}, fmt.Errorf("bubblepop: invalid rgba channel %q", parts[i])
		}
		ch[i] = uint8(v)
	}
	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, fmt.Errorf("bubblepop: invalid rgba alpha %q", parts[3])
		}
		alpha = a
	}
	return RGBA(ch[0], ch[1], ch[2], alpha), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler. Opaque colors are written as
// hex, everything else as rgba().
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// String formats the color in CSS notation.
func (c Color) String() string {
	r := uint8(clamp01(c.R)*255 + 0.5)
	g := uint8(clamp01(c.G)*255 + 0.5)
	b := uint8(clamp01(c.B)*255 + 0.5)
	if c.A >= 1 {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(c.A, 'f', -1, 64))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
