package pasture

import (
	"fmt"
	"io"
	"time"
)

// frameStats holds per-frame counts and timing. Only measured when
// RunConfig.Debug is set.
type frameStats struct {
	events   int
	rects    int
	drawTime time.Duration
}

type debugLogger struct {
	w     io.Writer
	frame int
}

func newDebugLogger(w io.Writer) *debugLogger {
	return &debugLogger{w: w}
}

// log prints one line of frame stats.
func (d *debugLogger) log(stats frameStats) {
	d.frame++
	_, _ = fmt.Fprintf(d.w,
		"[pasture] frame %d | events: %d | rects: %d | draw: %v\n",
		d.frame, stats.events, stats.rects, stats.drawTime)
}
