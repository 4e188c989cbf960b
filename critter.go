package pasture

// MoveStep is the distance in pixels the player moves per arrow keypress.
const MoveStep = 4

// critterParts are the body rectangles relative to a critter's position,
// in draw order: torso, head, tail, then the four legs.
var critterParts = [7]Rect{
	{X: 0, Y: 0, W: 16, H: 16}, // torso
	{X: 4, Y: -8, W: 8, H: 8},  // head
	{X: 7, Y: 16, W: 2, H: 2},  // tail
	{X: -3, Y: 2, W: 3, H: 3},  // left foreleg
	{X: 16, Y: 2, W: 3, H: 3},  // right foreleg
	{X: -3, Y: 12, W: 3, H: 3}, // left hind leg
	{X: 16, Y: 12, W: 3, H: 3}, // right hind leg
}

// PartsPerCritter is the number of rectangles drawn for each critter.
const PartsPerCritter = len(critterParts)

// Critter is a drawable cow at a pixel position. Position is unconstrained
// and may leave the window. Color never changes after creation.
type Critter struct {
	X, Y  int
	Color Color
}

// Move shifts the critter by (dx, dy) without clamping.
func (c *Critter) Move(dx, dy int) {
	c.X += dx
	c.Y += dy
}

// Parts returns the critter's body rectangles in window coordinates.
func (c Critter) Parts() [PartsPerCritter]Rect {
	var out [PartsPerCritter]Rect
	for i, p := range critterParts {
		out[i] = p.Offset(c.X, c.Y)
	}
	return out
}

// Draw fills every body rectangle with the critter's color.
func (c Critter) Draw(cv Canvas) {
	for _, r := range c.Parts() {
		cv.FillRect(r, c.Color)
	}
}
