// Package raylib implements a pasture.Backend on raylib through raylib-go.
package raylib

import (
	"errors"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/phanxgames/pasture"
)

// Backend owns the raylib window. raylib creates its renderer together with
// the window, so Open has no separate renderer stage.
type Backend struct {
	open    bool
	drawing bool
}

// New returns an unopened backend.
func New() *Backend {
	return &Backend{}
}

// Open creates the window. Escape is unbound from raylib's built-in exit key
// so it reaches the scene as a key press.
func (b *Backend) Open(cfg pasture.RunConfig) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return &pasture.InitError{Stage: pasture.StageWindow, Err: errors.New("raylib window not ready")}
	}
	rl.SetExitKey(rl.KeyNull)
	b.open = true
	return nil
}

// PollEvent implements pasture.Backend. The close button is reported first,
// then queued key presses in order.
func (b *Backend) PollEvent() (pasture.Event, bool) {
	if rl.WindowShouldClose() {
		return pasture.QuitEvent(), true
	}
	k := rl.GetKeyPressed()
	if k == 0 {
		return pasture.Event{}, false
	}
	return pasture.KeyDownEvent(keyFor(k)), true
}

func (b *Backend) begin() {
	if !b.drawing {
		rl.BeginDrawing()
		b.drawing = true
	}
}

// Clear implements pasture.Backend. It opens the frame's drawing block.
func (b *Backend) Clear(c pasture.Color) {
	b.begin()
	rl.ClearBackground(c.RGBA())
}

// FillRect implements pasture.Backend.
func (b *Backend) FillRect(r pasture.Rect, c pasture.Color) {
	b.begin()
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), c.RGBA())
}

// Present implements pasture.Backend. It closes the drawing block, which
// swaps buffers and polls input for the next frame.
func (b *Backend) Present() {
	b.begin()
	rl.EndDrawing()
	b.drawing = false
}

// Delay implements pasture.Backend.
func (b *Backend) Delay(d time.Duration) {
	time.Sleep(d)
}

// Close closes the window. Calls after the first are no-ops.
func (b *Backend) Close() {
	if !b.open {
		return
	}
	b.open = false
	rl.CloseWindow()
}

// keyFor maps a raylib key code to a pasture key.
func keyFor(k int32) pasture.Key {
	switch k {
	case rl.KeyEscape:
		return pasture.KeyEscape
	case rl.KeyRight:
		return pasture.KeyRight
	case rl.KeyLeft:
		return pasture.KeyLeft
	case rl.KeyUp:
		return pasture.KeyUp
	case rl.KeyDown:
		return pasture.KeyDown
	}
	return pasture.KeyUnknown
}
