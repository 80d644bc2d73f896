package bubblepop

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// maxCachedTextImages bounds the rasterized label cache. Bubble radii are
// continuous, so label sizes are quantized and the cache is dropped when full.
const maxCachedTextImages = 128

type textKey struct {
	s    string
	size float64
}

// FontCache holds one font source, its faces by size, and white rasterized
// text images that surfaces tint with vertex colors.
type FontCache struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
	images map[textKey]*ebiten.Image
}

// LoadFont parses TrueType/OpenType data.
func LoadFont(ttfData []byte) (*FontCache, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("bubblepop: failed to parse font data: %w", err)
	}
	return &FontCache{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
		images: make(map[textKey]*ebiten.Image),
	}, nil
}

// DefaultFont loads the bundled Go Bold face used for labels.
func DefaultFont() (*FontCache, error) {
	return LoadFont(gobold.TTF)
}

// quantizeSize rounds a font size to half a pixel.
func quantizeSize(size float64) float64 {
	q := math.Round(size*2) / 2
	if q < 1 {
		return 1
	}
	return q
}

func (f *FontCache) face(size float64) *text.GoTextFace {
	size = quantizeSize(size)
	face, ok := f.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: f.source, Size: size}
		f.faces[size] = face
	}
	return face
}

// Advance returns the advance width of s at size.
func (f *FontCache) Advance(s string, size float64) float64 {
	return text.Advance(s, f.face(size))
}

// textImage returns a cached image of s drawn in white at size, with a one
// pixel transparent border.
func (f *FontCache) textImage(s string, size float64) *ebiten.Image {
	key := textKey{s, quantizeSize(size)}
	if img, ok := f.images[key]; ok {
		return img
	}
	if len(f.images) >= maxCachedTextImages {
		for k, img := range f.images {
			img.Deallocate()
			delete(f.images, k)
		}
	}

	face := f.face(size)
	m := face.Metrics()
	w, h := text.Measure(s, face, m.HAscent+m.HDescent+m.HLineGap)
	img := ebiten.NewImage(int(math.Ceil(w))+2, int(math.Ceil(h))+2)

	op := &text.DrawOptions{}
	op.GeoM.Translate(1, 1)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(img, s, face, op)

	f.images[key] = img
	return img
}
