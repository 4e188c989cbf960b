// Package sdl2 implements a pasture.Backend on SDL2 through go-sdl2.
package sdl2

import (
	"time"

	"github.com/phanxgames/pasture"

	"github.com/veandco/go-sdl2/sdl"
)

// Backend owns one SDL window and its accelerated renderer.
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	open     bool
}

// New returns an unopened backend.
func New() *Backend {
	return &Backend{}
}

// Open initializes the SDL video subsystem, then creates the window and the
// renderer. A failed step undoes the earlier ones.
func (b *Backend) Open(cfg pasture.RunConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return &pasture.InitError{Stage: pasture.StageSubsystem, Subsystem: "SDL", Err: err}
	}

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), 0)
	if err != nil {
		sdl.Quit()
		return &pasture.InitError{Stage: pasture.StageWindow, Err: err}
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return &pasture.InitError{Stage: pasture.StageRenderer, Err: err}
	}

	b.window = window
	b.renderer = renderer
	b.open = true
	return nil
}

// PollEvent implements pasture.Backend.
func (b *Backend) PollEvent() (pasture.Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return pasture.Event{}, false
	}
	return translate(ev), true
}

// Clear implements pasture.Backend.
func (b *Backend) Clear(c pasture.Color) {
	b.renderer.SetDrawColor(c.R, c.G, c.B, 255)
	b.renderer.Clear()
}

// FillRect implements pasture.Backend.
func (b *Backend) FillRect(r pasture.Rect, c pasture.Color) {
	b.renderer.SetDrawColor(c.R, c.G, c.B, 255)
	b.renderer.FillRect(&sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)})
}

// Present implements pasture.Backend.
func (b *Backend) Present() {
	b.renderer.Present()
}

// Delay implements pasture.Backend.
func (b *Backend) Delay(d time.Duration) {
	sdl.Delay(uint32(d.Milliseconds()))
}

// Close destroys the renderer and the window, then shuts SDL down. Calls
// after the first are no-ops.
func (b *Backend) Close() {
	if !b.open {
		return
	}
	b.open = false
	b.renderer.Destroy()
	b.window.Destroy()
	sdl.Quit()
}

// translate maps an SDL event to a pasture event. Key repeats count as
// presses, as SDL reports them with KEYDOWN.
func translate(ev sdl.Event) pasture.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return pasture.QuitEvent()
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return pasture.KeyDownEvent(scancodeKey(e.Keysym.Scancode))
		}
	}
	return pasture.Event{}
}

func scancodeKey(sc sdl.Scancode) pasture.Key {
	switch sc {
	case sdl.SCANCODE_ESCAPE:
		return pasture.KeyEscape
	case sdl.SCANCODE_RIGHT:
		return pasture.KeyRight
	case sdl.SCANCODE_LEFT:
		return pasture.KeyLeft
	case sdl.SCANCODE_UP:
		return pasture.KeyUp
	case sdl.SCANCODE_DOWN:
		return pasture.KeyDown
	}
	return pasture.KeyUnknown
}
