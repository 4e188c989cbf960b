package pasture

// Canvas receives the draw calls of one frame.
type Canvas interface {
	// Clear fills the whole backbuffer with c.
	Clear(c Color)
	// FillRect fills r with c at full opacity. Pixels outside the target are
	// discarded.
	FillRect(r Rect, c Color)
}

// DrawOp identifies a recorded draw call.
type DrawOp uint8

const (
	OpClear DrawOp = iota
	OpFillRect
	OpPresent
)

func (op DrawOp) String() string {
	switch op {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "fill"
	case OpPresent:
		return "present"
	}
	return "unknown"
}

// DrawCall is one entry in a Recorder.
type DrawCall struct {
	Op    DrawOp
	Rect  Rect
	Color Color
}

// Recorder is a Canvas that keeps every call it receives, in order.
type Recorder struct {
	Calls []DrawCall
}

// Clear implements Canvas.
func (r *Recorder) Clear(c Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpClear, Color: c})
}

// FillRect implements Canvas.
func (r *Recorder) FillRect(rect Rect, c Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpFillRect, Rect: rect, Color: c})
}

// Present records the end of a frame.
func (r *Recorder) Present() {
	r.Calls = append(r.Calls, DrawCall{Op: OpPresent})
}

// Reset drops all recorded calls, keeping the allocated buffer.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Count returns how many calls of the given kind were recorded.
func (r *Recorder) Count(op DrawOp) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// countingCanvas forwards to another Canvas and counts filled rectangles.
type countingCanvas struct {
	Canvas
	rects int
}

func (c *countingCanvas) FillRect(r Rect, col Color) {
	c.rects++
	c.Canvas.FillRect(r, col)
}
