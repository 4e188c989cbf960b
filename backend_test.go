package pasture

import (
	"errors"
	"testing"
)

func TestInitErrorMessage(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *InitError
		want string
	}{
		{"sdl subsystem", &InitError{Stage: StageSubsystem, Subsystem: "SDL", Err: cause}, "Couldn't initialize SDL: boom"},
		{"unnamed subsystem", &InitError{Stage: StageSubsystem, Err: cause}, "Couldn't initialize graphics subsystem: boom"},
		{"window", &InitError{Stage: StageWindow, Subsystem: "SDL", Err: cause}, "Failed to create window -- Error: boom"},
		{"renderer", &InitError{Stage: StageRenderer, Err: cause}, "Failed to create renderer -- Error: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, cause) {
				t.Error("errors.Is should find the cause")
			}
		})
	}
}

func TestInitStageString(t *testing.T) {
	for stage, want := range map[InitStage]string{
		StageSubsystem: "subsystem",
		StageWindow:    "window",
		StageRenderer:  "renderer",
		InitStage(9):   "unknown",
	} {
		if got := stage.String(); got != want {
			t.Errorf("InitStage(%d).String() = %q, want %q", stage, got, want)
		}
	}
}
