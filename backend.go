package pasture

import (
	"fmt"
	"time"
)

// Backend is a host window plus renderer driven by RunLoop. The loop owns
// the frame cadence: it polls events, draws, presents and delays.
//
// Implementations live in the sdl2, term and raylib packages; ScriptBackend
// runs headless.
type Backend interface {
	Canvas

	// Open acquires the graphics subsystem, the window and the renderer, in
	// that order. On failure it releases whatever it already acquired and
	// returns an *InitError naming the failed stage.
	Open(cfg RunConfig) error

	// PollEvent returns the next pending event, or false when the queue is
	// empty. It never blocks.
	PollEvent() (Event, bool)

	// Present shows the backbuffer in the window.
	Present()

	// Delay sleeps for d to pace the loop.
	Delay(d time.Duration)

	// Close releases the renderer, the window and the subsystem.
	Close()
}

// InitStage names the acquisition step that failed in Backend.Open.
type InitStage uint8

const (
	StageSubsystem InitStage = iota
	StageWindow
	StageRenderer
)

func (s InitStage) String() string {
	switch s {
	case StageSubsystem:
		return "subsystem"
	case StageWindow:
		return "window"
	case StageRenderer:
		return "renderer"
	}
	return "unknown"
}

// InitError reports a failed Backend.Open. Subsystem is the host library's
// name ("SDL", "terminal", ...) and only appears in subsystem failures.
type InitError struct {
	Stage     InitStage
	Subsystem string
	Err       error
}

func (e *InitError) Error() string {
	switch e.Stage {
	case StageWindow:
		return fmt.Sprintf("Failed to create window -- Error: %v", e.Err)
	case StageRenderer:
		return fmt.Sprintf("Failed to create renderer -- Error: %v", e.Err)
	}
	name := e.Subsystem
	if name == "" {
		name = "graphics subsystem"
	}
	return fmt.Sprintf("Couldn't initialize %s: %v", name, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
