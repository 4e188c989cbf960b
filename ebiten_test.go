package pasture

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEbitenKey(t *testing.T) {
	tests := []struct {
		in   ebiten.Key
		want Key
	}{
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeyArrowRight, KeyRight},
		{ebiten.KeyArrowLeft, KeyLeft},
		{ebiten.KeyArrowUp, KeyUp},
		{ebiten.KeyArrowDown, KeyDown},
		{ebiten.KeySpace, KeyUnknown},
		{ebiten.KeyA, KeyUnknown},
	}
	for _, tt := range tests {
		if got := ebitenKey(tt.in); got != tt.want {
			t.Errorf("ebitenKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEbitenGameDispatch(t *testing.T) {
	scene, herd := newGreta()
	g := newEbitenGame(scene, testConfig)
	g.queue.InjectKey(KeyRight)
	g.queue.InjectKey(KeyUp)

	if err := g.dispatch(); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if got := herd.Player(); got.X != 516 || got.Y != 284 {
		t.Errorf("player = (%d, %d), want (516, 284)", got.X, got.Y)
	}
	if g.events != 2 {
		t.Errorf("events = %d, want 2", g.events)
	}
}

func TestEbitenGameDispatchQuitDropsRest(t *testing.T) {
	scene, herd := newGreta()
	g := newEbitenGame(scene, testConfig)
	g.queue.InjectKey(KeyEscape)
	g.queue.InjectKey(KeyRight)

	if err := g.dispatch(); !errors.Is(err, ErrQuit) {
		t.Fatalf("dispatch = %v, want ErrQuit", err)
	}
	if g.queue.Len() != 0 {
		t.Errorf("queue len = %d, want 0", g.queue.Len())
	}
	if got := herd.Player().X; got != 512 {
		t.Errorf("player x = %d, want 512", got)
	}
}

func TestEbitenGameLayout(t *testing.T) {
	g := newEbitenGame(Blank{}, RunConfig{Width: 750, Height: 500})
	w, h := g.Layout(1500, 1000)
	if w != 750 || h != 500 {
		t.Errorf("Layout = %dx%d, want 750x500", w, h)
	}
}

func TestNewEbitenGameOptions(t *testing.T) {
	g := newEbitenGame(Blank{}, testConfig)
	if g.fps != nil || g.dbg != nil {
		t.Error("fps overlay and debug logger should be off by default")
	}

	cfg := testConfig
	cfg.ShowFPS = true
	cfg.Debug = true
	g = newEbitenGame(Blank{}, cfg)
	if g.fps == nil {
		t.Error("ShowFPS should create the overlay")
	}
	if g.dbg == nil {
		t.Error("Debug should create the logger")
	}
}
