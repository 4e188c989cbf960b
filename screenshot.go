package pasture

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// ImageCanvas rasterizes draw calls into an RGBA image in memory.
type ImageCanvas struct {
	img *image.RGBA
}

// NewImageCanvas returns a width x height canvas, initially transparent.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the backing image. It is overwritten by later draw calls.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// Clear implements Canvas.
func (c *ImageCanvas) Clear(col Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.RGBA()), image.Point{}, draw.Src)
}

// FillRect implements Canvas.
func (c *ImageCanvas) FillRect(r Rect, col Color) {
	dst := r.Image().Intersect(c.img.Bounds())
	if dst.Empty() {
		return
	}
	draw.Draw(c.img, dst, image.NewUniform(col.RGBA()), image.Point{}, draw.Src)
}

// Screenshot writes the canvas as a PNG to dir, named after seq and label.
// It returns the written path.
func (c *ImageCanvas) Screenshot(dir string, seq int, label string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%04d_%s.png", seq, sanitizeLabel(label)))
	if err := writePNG(path, c.img); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
