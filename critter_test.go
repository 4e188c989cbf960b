package pasture

import "testing"

func TestCritterParts(t *testing.T) {
	c := Critter{X: 100, Y: 50}
	want := [PartsPerCritter]Rect{
		{100, 50, 16, 16}, // torso
		{104, 42, 8, 8},   // head
		{107, 66, 2, 2},   // tail
		{97, 52, 3, 3},    // left foreleg
		{116, 52, 3, 3},   // right foreleg
		{97, 62, 3, 3},    // left hind leg
		{116, 62, 3, 3},   // right hind leg
	}
	got := c.Parts()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("part %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCritterPartsOffscreen(t *testing.T) {
	c := Critter{X: -40, Y: -40}
	if got := c.Parts()[1]; got != (Rect{-36, -48, 8, 8}) {
		t.Errorf("head = %v, want {-36 -48 8 8}", got)
	}
}

func TestCritterMove(t *testing.T) {
	c := Critter{X: 2, Y: 2, Color: Color{R: 9}}
	c.Move(-MoveStep, MoveStep)
	if c.X != -2 || c.Y != 6 {
		t.Errorf("position = (%d, %d), want (-2, 6)", c.X, c.Y)
	}
	if c.Color != (Color{R: 9}) {
		t.Errorf("Move changed color to %v", c.Color)
	}
}

func TestCritterDraw(t *testing.T) {
	c := Critter{X: 10, Y: 10, Color: Color{R: 135, G: 54}}
	var rec Recorder
	c.Draw(&rec)

	if len(rec.Calls) != PartsPerCritter {
		t.Fatalf("recorded %d calls, want %d", len(rec.Calls), PartsPerCritter)
	}
	parts := c.Parts()
	for i, call := range rec.Calls {
		if call.Op != OpFillRect {
			t.Errorf("call %d op = %v, want fill", i, call.Op)
		}
		if call.Rect != parts[i] {
			t.Errorf("call %d rect = %v, want %v", i, call.Rect, parts[i])
		}
		if call.Color != c.Color {
			t.Errorf("call %d color = %v, want %v", i, call.Color, c.Color)
		}
	}
}
