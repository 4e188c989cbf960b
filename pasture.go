package pasture

import (
	"image"
	"image/color"
)

// Color is an opaque RGB color with 8-bit channels. Every draw uses full
// opacity, so there is no alpha component.
type Color struct {
	R, G, B uint8
}

// RGBA returns c as a fully opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Rect is an axis-aligned rectangle in pixel space. The origin is the top-left
// corner of the window and Y grows downward.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Image converts r to the equivalent image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}
