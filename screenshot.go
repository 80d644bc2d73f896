package bubblepop

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// screenshots collects labeled capture requests and writes them as PNG
// files at the end of the frame they were requested in.
type screenshots struct {
	dir   string
	queue []string
	log   *zap.Logger
	now   func() time.Time
}

func newScreenshots(dir string, log *zap.Logger) *screenshots {
	if dir == "" {
		dir = "screenshots"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &screenshots{dir: dir, log: log, now: time.Now}
}

// request queues a labeled screenshot. Safe to call from Update or Draw.
func (s *screenshots) request(label string) {
	s.queue = append(s.queue, label)
}

// flush captures screen once for every queued label.
func (s *screenshots) flush(screen *ebiten.Image) {
	if len(s.queue) == 0 {
		return
	}
	defer func() { s.queue = s.queue[:0] }()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Error("screenshot", zap.String("dir", s.dir), zap.Error(err))
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	stamp := s.now().Format("20060102_150405")
	for _, label := range s.queue {
		path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			s.log.Error("screenshot", zap.Error(err))
			continue
		}
		s.log.Info("screenshot", zap.String("path", path))
	}
}

// unpremultiply converts premultiplied RGBA bytes to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("bubblepop: save %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps letters, digits, '-' and '.', maps everything else to
// '_', and falls back to "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
