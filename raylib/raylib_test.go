package raylib

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/phanxgames/pasture"
)

func TestKeyFor(t *testing.T) {
	tests := []struct {
		in   int32
		want pasture.Key
	}{
		{rl.KeyEscape, pasture.KeyEscape},
		{rl.KeyRight, pasture.KeyRight},
		{rl.KeyLeft, pasture.KeyLeft},
		{rl.KeyUp, pasture.KeyUp},
		{rl.KeyDown, pasture.KeyDown},
		{rl.KeySpace, pasture.KeyUnknown},
		{rl.KeyA, pasture.KeyUnknown},
	}
	for _, tt := range tests {
		if got := keyFor(tt.in); got != tt.want {
			t.Errorf("keyFor(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
