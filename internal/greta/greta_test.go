package greta

import (
	"testing"

	"github.com/phanxgames/pasture"
)

func TestNewScene(t *testing.T) {
	herd := NewScene(42).Herd()

	if herd.Len() != HerdSize+1 {
		t.Errorf("herd len = %d, want %d", herd.Len(), HerdSize+1)
	}
	p := herd.Player()
	if p.X != 512 || p.Y != 288 || p.Color != Brown {
		t.Errorf("player = %+v, want brown at (512, 288)", p)
	}
	for i, c := range herd.Statics() {
		if c.X < 0 || c.X >= ScreenWidth || c.Y < 0 || c.Y >= ScreenHeight {
			t.Errorf("static %d at (%d, %d) is off the field", i, c.X, c.Y)
		}
		if c.Color.R == 255 || c.Color.G == 255 || c.Color.B == 255 {
			t.Errorf("static %d color %+v has a channel at 255", i, c.Color)
		}
	}
}

func TestNewSceneDeterministic(t *testing.T) {
	a := NewScene(7).Herd().Statics()
	b := NewScene(7).Herd().Statics()
	if len(a) != len(b) {
		t.Fatalf("len %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("static %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestConfig(t *testing.T) {
	cfg := Config()
	if cfg.Title != WindowTitle || cfg.Width != 1024 || cfg.Height != 576 {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.ClearColor != (pasture.Color{R: 39, G: 174, B: 96}) {
		t.Errorf("clear color = %+v", cfg.ClearColor)
	}
}
