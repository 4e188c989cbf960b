package sdl2

import (
	"testing"

	"github.com/phanxgames/pasture"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	key := func(typ uint32, sc sdl.Scancode) *sdl.KeyboardEvent {
		return &sdl.KeyboardEvent{Type: typ, Keysym: sdl.Keysym{Scancode: sc}}
	}
	tests := []struct {
		name string
		ev   sdl.Event
		want pasture.Event
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, pasture.QuitEvent()},
		{"escape", key(sdl.KEYDOWN, sdl.SCANCODE_ESCAPE), pasture.KeyDownEvent(pasture.KeyEscape)},
		{"right", key(sdl.KEYDOWN, sdl.SCANCODE_RIGHT), pasture.KeyDownEvent(pasture.KeyRight)},
		{"left", key(sdl.KEYDOWN, sdl.SCANCODE_LEFT), pasture.KeyDownEvent(pasture.KeyLeft)},
		{"up", key(sdl.KEYDOWN, sdl.SCANCODE_UP), pasture.KeyDownEvent(pasture.KeyUp)},
		{"down", key(sdl.KEYDOWN, sdl.SCANCODE_DOWN), pasture.KeyDownEvent(pasture.KeyDown)},
		{"other key", key(sdl.KEYDOWN, sdl.SCANCODE_SPACE), pasture.KeyDownEvent(pasture.KeyUnknown)},
		{"key up", key(sdl.KEYUP, sdl.SCANCODE_RIGHT), pasture.Event{}},
		{"mouse", &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION}, pasture.Event{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translate(tt.ev); got != tt.want {
				t.Errorf("translate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCloseWithoutOpen(t *testing.T) {
	b := New()
	b.Close()
	b.Close()
}
