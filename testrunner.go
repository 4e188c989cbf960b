package pasture

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"time"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// DefaultScreenshotDir is where ScriptBackend writes screenshots unless
// ScreenshotDir is set.
const DefaultScreenshotDir = "screenshots"

// ScriptBackend is a headless Backend that replays a scripted sequence of
// key presses, waits and screenshots across frames. Frames are rasterized
// into an in-memory image.
//
// One step runs per presented frame; events it injects are delivered on the
// following frame. Once the script is exhausted the backend injects a quit,
// so RunLoop always terminates.
type ScriptBackend struct {
	// ScreenshotDir receives the PNG files of screenshot steps.
	ScreenshotDir string

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	queue     EventQueue
	canvas    *ImageCanvas
	rec       Recorder
	presented bool

	frames  int
	shots   []string
	shotErr error
	closes  int
	slept   time.Duration
}

// LoadScript parses a JSON script and returns a backend ready for RunLoop.
//
//	{"steps": [
//		{"action": "key", "key": "right"},
//		{"action": "wait", "frames": 3},
//		{"action": "screenshot", "label": "moved"},
//		{"action": "quit"}
//	]}
func LoadScript(jsonData []byte) (*ScriptBackend, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "key":
			if _, ok := ParseKey(st.Key); !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown key %q", i, st.Key)
			}
		case "wait", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptBackend{ScreenshotDir: DefaultScreenshotDir, steps: s.Steps}, nil
}

// Open implements Backend. The window size must be positive.
func (b *ScriptBackend) Open(cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return &InitError{
			Stage: StageWindow,
			Err:   fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height),
		}
	}
	b.canvas = NewImageCanvas(cfg.Width, cfg.Height)
	return nil
}

// PollEvent implements Backend.
func (b *ScriptBackend) PollEvent() (Event, bool) {
	return b.queue.Pop()
}

// Clear implements Backend.
func (b *ScriptBackend) Clear(c Color) {
	if b.presented {
		b.rec.Reset()
		b.presented = false
	}
	b.rec.Clear(c)
	b.canvas.Clear(c)
}

// FillRect implements Backend.
func (b *ScriptBackend) FillRect(r Rect, c Color) {
	b.rec.FillRect(r, c)
	b.canvas.FillRect(r, c)
}

// Present implements Backend and advances the script by one frame.
func (b *ScriptBackend) Present() {
	b.rec.Present()
	b.presented = true
	b.frames++
	b.step()
}

// Delay implements Backend. It does not sleep; the total is available from
// Slept.
func (b *ScriptBackend) Delay(d time.Duration) {
	b.slept += d
}

// Close implements Backend.
func (b *ScriptBackend) Close() {
	b.closes++
}

// Queue exposes the synthetic event queue for direct injection.
func (b *ScriptBackend) Queue() *EventQueue {
	return &b.queue
}

// Done reports whether every step has run.
func (b *ScriptBackend) Done() bool {
	return b.done
}

// Frames returns the number of presented frames.
func (b *ScriptBackend) Frames() int {
	return b.frames
}

// Closes returns how many times Close was called.
func (b *ScriptBackend) Closes() int {
	return b.closes
}

// Slept returns the sum of all requested delays.
func (b *ScriptBackend) Slept() time.Duration {
	return b.slept
}

// LastFrame returns the draw calls of the most recent frame, ending with its
// present call. The slice is reused by the next frame.
func (b *ScriptBackend) LastFrame() []DrawCall {
	return b.rec.Calls
}

// Image returns the rasterized backbuffer, or nil before Open.
func (b *ScriptBackend) Image() *image.RGBA {
	if b.canvas == nil {
		return nil
	}
	return b.canvas.Image()
}

// Screenshots returns the paths written by screenshot steps.
func (b *ScriptBackend) Screenshots() []string {
	return b.shots
}

// Err returns the first screenshot write error, if any.
func (b *ScriptBackend) Err() error {
	return b.shotErr
}

// step advances the script by one frame. Called from Present.
func (b *ScriptBackend) step() {
	if b.done {
		return
	}
	if b.waitCount > 0 {
		b.waitCount--
		return
	}
	if b.cursor >= len(b.steps) {
		b.done = true
		b.queue.InjectQuit()
		return
	}

	st := b.steps[b.cursor]
	b.cursor++

	switch st.Action {
	case "key":
		k, _ := ParseKey(st.Key)
		b.queue.InjectKey(k)
	case "wait":
		if st.Frames > 0 {
			b.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		b.screenshot(st.Label)
	case "quit":
		b.done = true
		b.queue.InjectQuit()
	}
}

func (b *ScriptBackend) screenshot(label string) {
	path, err := b.canvas.Screenshot(b.ScreenshotDir, len(b.shots)+1, label)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[pasture] %v\n", err)
		if b.shotErr == nil {
			b.shotErr = err
		}
		return
	}
	b.shots = append(b.shots, path)
}
