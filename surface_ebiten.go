package bubblepop

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tessellation density for filled and stroked circles.
const (
	circleRings    = 10
	circleSegments = 56
	strokeSegments = 72
	rectCells      = 8
)

var whiteImage *ebiten.Image

// ensureWhite returns a lazily-initialized white source region. The 3x3
// image is cut to its center pixel so linear filtering never samples the
// transparent border.
func ensureWhite() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

type surfaceState struct {
	m     affine
	alpha float64
}

// ImageSurface draws on an *ebiten.Image in logical coordinates. The base
// transform scales by the device pixel ratio so callers never see device
// pixels.
type ImageSurface struct {
	dst   *ebiten.Image
	fonts *FontCache
	dpr   float64

	state surfaceState
	stack []surfaceState

	verts []ebiten.Vertex
	inds  []uint16
}

// NewImageSurface creates a surface that renders text with fonts.
func NewImageSurface(fonts *FontCache) *ImageSurface {
	return &ImageSurface{fonts: fonts, dpr: 1}
}

// Reset targets dst for a new frame at the given device pixel ratio and
// drops any saved state.
func (s *ImageSurface) Reset(dst *ebiten.Image, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	s.dst = dst
	s.dpr = dpr
	s.state = surfaceState{m: scaling(dpr, dpr), alpha: 1}
	s.stack = s.stack[:0]
}

func (s *ImageSurface) Save() {
	s.stack = append(s.stack, s.state)
}

func (s *ImageSurface) Restore() {
	if n := len(s.stack); n > 0 {
		s.state = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

func (s *ImageSurface) Translate(x, y float64) {
	s.state.m = multiplyAffine(s.state.m, translation(x, y))
}

func (s *ImageSurface) Rotate(radians float64) {
	s.state.m = multiplyAffine(s.state.m, rotation(radians))
}

func (s *ImageSurface) Scale(sx, sy float64) {
	s.state.m = multiplyAffine(s.state.m, scaling(sx, sy))
}

func (s *ImageSurface) SetAlpha(a float64) {
	s.state.alpha = clamp01(a)
}

// Clear makes the device-space bounding box of the given logical rectangle
// transparent.
func (s *ImageSurface) Clear(x, y, w, h float64) {
	if s.dst == nil {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}} {
		dx, dy := transformPoint(s.state.m, p[0], p[1])
		minX, maxX = math.Min(minX, dx), math.Max(maxX, dx)
		minY, maxY = math.Min(minY, dy), math.Max(maxY, dy)
	}
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(s.dst.Bounds())
	if r.Empty() {
		return
	}
	if r == s.dst.Bounds() {
		s.dst.Clear()
		return
	}
	s.dst.SubImage(r).(*ebiten.Image).Clear()
}

// FillRect fills a rectangle with a grid of colored vertices so gradients
// interpolate smoothly.
func (s *ImageSurface) FillRect(x, y, w, h float64, p Paint) {
	s.begin()
	for row := 0; row <= rectCells; row++ {
		ly := y + h*float64(row)/rectCells
		for col := 0; col <= rectCells; col++ {
			lx := x + w*float64(col)/rectCells
			s.vertex(lx, ly, p.ColorAt(lx, ly), 1, 1)
		}
	}
	const stride = rectCells + 1
	for row := 0; row < rectCells; row++ {
		for col := 0; col < rectCells; col++ {
			i := uint16(row*stride + col)
			s.quad(i, i+1, i+stride, i+stride+1)
		}
	}
	s.flush(ensureWhite())
}

// FillCircle fills a disc as a center fan plus concentric rings.
func (s *ImageSurface) FillCircle(cx, cy, r float64, p Paint) {
	if r <= 0 {
		return
	}
	s.begin()
	s.vertex(cx, cy, p.ColorAt(cx, cy), 1, 1)
	for ring := 1; ring <= circleRings; ring++ {
		rr := r * float64(ring) / circleRings
		for seg := 0; seg < circleSegments; seg++ {
			sin, cos := math.Sincos(2 * math.Pi * float64(seg) / circleSegments)
			lx, ly := cx+cos*rr, cy+sin*rr
			s.vertex(lx, ly, p.ColorAt(lx, ly), 1, 1)
		}
	}
	for seg := 0; seg < circleSegments; seg++ {
		next := (seg + 1) % circleSegments
		s.inds = append(s.inds, 0, uint16(1+seg), uint16(1+next))
	}
	for ring := 1; ring < circleRings; ring++ {
		inner := 1 + (ring-1)*circleSegments
		outer := inner + circleSegments
		for seg := 0; seg < circleSegments; seg++ {
			next := (seg + 1) % circleSegments
			s.quad(uint16(inner+seg), uint16(inner+next), uint16(outer+seg), uint16(outer+next))
		}
	}
	s.flush(ensureWhite())
}

// StrokeCircle draws a ring of the given width centered on radius r.
func (s *ImageSurface) StrokeCircle(cx, cy, r, width float64, c Color) {
	if r <= 0 || width <= 0 {
		return
	}
	inner := math.Max(0, r-width/2)
	outer := r + width/2
	s.begin()
	for seg := 0; seg < strokeSegments; seg++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(seg) / strokeSegments)
		s.vertex(cx+cos*inner, cy+sin*inner, c, 1, 1)
		s.vertex(cx+cos*outer, cy+sin*outer, c, 1, 1)
	}
	for seg := 0; seg < strokeSegments; seg++ {
		i := uint16(seg * 2)
		j := uint16(((seg + 1) % strokeSegments) * 2)
		s.quad(i, j, i+1, j+1)
	}
	s.flush(ensureWhite())
}

// FillText draws s centered on (x, y). Glyphs are rasterized white at the
// device resolution and tinted per vertex: three columns of vertices carry a
// horizontal gradient across the text.
func (s *ImageSurface) FillText(str string, x, y float64, style TextStyle) {
	if s.fonts == nil || str == "" {
		return
	}
	img := s.fonts.textImage(str, style.Size*s.dpr)
	b := img.Bounds()
	w := float64(b.Dx()) / s.dpr
	h := float64(b.Dy()) / s.dpr
	left, top := x-w/2, y-h/2

	if sh := style.Shadow; sh != nil {
		taps := [][3]float64{{0, 0, 1}}
		if sh.Blur > 0 {
			d := sh.Blur / 2
			taps = [][3]float64{{0, 0, 0.4}, {-d, -d, 0.15}, {d, -d, 0.15}, {-d, d, 0.15}, {d, d, 0.15}}
		}
		for _, t := range taps {
			c := sh.Color.WithAlpha(sh.Color.A * t[2])
			s.textQuad(img, left+sh.OffsetX+t[0], top+sh.OffsetY+t[1], w, h, Solid(c))
		}
	}
	fill := style.Fill
	if fill == nil {
		fill = Solid(ColorWhite)
	}
	s.textQuad(img, left, top, w, h, fill)
}

func (s *ImageSurface) textQuad(img *ebiten.Image, left, top, w, h float64, p Paint) {
	b := img.Bounds()
	s.begin()
	for col := 0; col <= 2; col++ {
		f := float64(col) / 2
		lx := left + w*f
		sx := float32(b.Min.X) + float32(b.Dx())*float32(f)
		s.vertex(lx, top, p.ColorAt(lx, top), sx, float32(b.Min.Y))
		s.vertex(lx, top+h, p.ColorAt(lx, top+h), sx, float32(b.Max.Y))
	}
	s.quad(0, 2, 1, 3)
	s.quad(2, 4, 3, 5)
	s.flush(img)
}

// MeasureText returns the advance width of str at size in logical pixels.
func (s *ImageSurface) MeasureText(str string, size float64) float64 {
	if s.fonts == nil {
		return 0
	}
	return s.fonts.Advance(str, size)
}

func (s *ImageSurface) begin() {
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
}

// vertex appends one vertex in local coordinates, transformed to device
// space with a premultiplied color scaled by the current alpha.
func (s *ImageSurface) vertex(lx, ly float64, c Color, srcX, srcY float32) {
	dx, dy := transformPoint(s.state.m, lx, ly)
	r, g, b, a := c.premultiplied(s.state.alpha)
	s.verts = append(s.verts, ebiten.Vertex{
		DstX:   float32(dx),
		DstY:   float32(dy),
		SrcX:   srcX,
		SrcY:   srcY,
		ColorR: r,
		ColorG: g,
		ColorB: b,
		ColorA: a,
	})
}

// quad appends two triangles for corners a-b (top) and c-d (bottom).
func (s *ImageSurface) quad(a, b, c, d uint16) {
	s.inds = append(s.inds, a, b, c, b, d, c)
}

func (s *ImageSurface) flush(src *ebiten.Image) {
	if s.dst == nil || len(s.inds) == 0 || s.state.alpha <= 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	s.dst.DrawTriangles(s.verts, s.inds, src, op)
}
