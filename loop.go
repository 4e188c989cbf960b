package pasture

import (
	"errors"
	"io"
	"os"
	"time"
)

// DefaultFrameDelay is the end-of-frame sleep, roughly 60 frames per second.
const DefaultFrameDelay = 16 * time.Millisecond

// ErrQuit is returned by Scene.HandleEvent to end the run loop. RunLoop and
// Run translate it into a nil error.
var ErrQuit = errors.New("pasture: quit requested")

// RunConfig configures a window and its frame loop.
type RunConfig struct {
	Title         string
	Width, Height int

	// ClearColor fills the backbuffer at the start of every frame.
	ClearColor Color

	// FrameDelay is the sleep after each presented frame. Zero means
	// DefaultFrameDelay.
	FrameDelay time.Duration

	// ShowFPS draws an FPS/TPS readout in the top-left corner. Only the
	// ebiten driver honors it.
	ShowFPS bool

	// Debug logs per-frame stats to DebugOutput (os.Stderr when nil).
	Debug       bool
	DebugOutput io.Writer
}

func (c RunConfig) frameDelay() time.Duration {
	if c.FrameDelay <= 0 {
		return DefaultFrameDelay
	}
	return c.FrameDelay
}

func (c RunConfig) debugOutput() io.Writer {
	if c.DebugOutput == nil {
		return os.Stderr
	}
	return c.DebugOutput
}

// RunLoop opens b and runs scene until it returns ErrQuit. The backend is
// closed exactly once before RunLoop returns, unless Open itself failed.
//
// A nil return means the user quit. Open failures are returned unchanged
// (an *InitError for the bundled backends) and no frame is drawn.
func RunLoop(b Backend, scene Scene, cfg RunConfig) error {
	if err := b.Open(cfg); err != nil {
		return err
	}
	defer b.Close()

	delay := cfg.frameDelay()
	var dbg *debugLogger
	if cfg.Debug {
		dbg = newDebugLogger(cfg.debugOutput())
	}

	for {
		stats, err := frame(b, scene, cfg.ClearColor, dbg != nil)
		if err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		if dbg != nil {
			dbg.log(stats)
		}
		b.Delay(delay)
	}
}

// Frame runs one loop iteration without the end-of-frame delay: drain all
// pending events into scene, clear to bg, draw, present. If an event makes
// the scene return an error, the rest of the queue is left untouched and
// nothing is drawn.
func Frame(b Backend, scene Scene, bg Color) error {
	_, err := frame(b, scene, bg, false)
	return err
}

func frame(b Backend, scene Scene, bg Color, measure bool) (frameStats, error) {
	var stats frameStats
	for {
		ev, ok := b.PollEvent()
		if !ok {
			break
		}
		stats.events++
		if err := scene.HandleEvent(ev); err != nil {
			return stats, err
		}
	}

	var t0 time.Time
	if measure {
		t0 = time.Now()
	}

	b.Clear(bg)
	if measure {
		cc := &countingCanvas{Canvas: b}
		scene.Draw(cc)
		stats.rects = cc.rects
	} else {
		scene.Draw(b)
	}
	b.Present()

	if measure {
		stats.drawTime = time.Since(t0)
	}
	return stats, nil
}
