// Package term implements a pasture.Backend in a terminal through tcell.
// Pixels map onto character cells; each cell covers CellWidth x CellHeight
// pixels and is painted with its background color.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/pasture"
)

// Default pixel size of one terminal cell. Cells are roughly twice as tall
// as they are wide.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

const eventBuffer = 100

// Backend draws into a tcell screen. A goroutine feeds tcell's blocking
// PollEvent into a buffered channel that PollEvent drains without blocking.
type Backend struct {
	CellWidth, CellHeight int

	newScreen func() (tcell.Screen, error)
	screen    tcell.Screen
	events    chan tcell.Event
	stop      chan struct{}
	done      chan struct{}
}

// New returns a backend for the controlling terminal.
func New() *Backend {
	return &Backend{
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		newScreen:  tcell.NewScreen,
	}
}

// NewWithScreen returns a backend over an existing, uninitialized screen,
// such as a tcell.SimulationScreen.
func NewWithScreen(s tcell.Screen) *Backend {
	b := New()
	b.newScreen = func() (tcell.Screen, error) { return s, nil }
	return b
}

// Open creates and initializes the screen and starts the event pump. The
// terminal plays the part of both window and renderer.
func (b *Backend) Open(cfg pasture.RunConfig) error {
	s, err := b.newScreen()
	if err != nil {
		return &pasture.InitError{Stage: pasture.StageSubsystem, Subsystem: "terminal", Err: err}
	}
	if err := s.Init(); err != nil {
		return &pasture.InitError{Stage: pasture.StageWindow, Err: err}
	}
	s.HideCursor()
	s.Clear()

	b.screen = s
	b.events = make(chan tcell.Event, eventBuffer)
	b.stop = make(chan struct{})
	b.done = make(chan struct{})
	go b.pump()
	return nil
}

func (b *Backend) pump() {
	defer close(b.done)
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.stop:
			return
		}
	}
}

// PollEvent implements pasture.Backend.
func (b *Backend) PollEvent() (pasture.Event, bool) {
	select {
	case ev := <-b.events:
		return translate(ev), true
	default:
		return pasture.Event{}, false
	}
}

// Clear implements pasture.Backend.
func (b *Backend) Clear(c pasture.Color) {
	b.screen.Fill(' ', cellStyle(c))
}

// FillRect implements pasture.Backend. Every cell the rectangle touches is
// painted.
func (b *Backend) FillRect(r pasture.Rect, c pasture.Color) {
	w, h := b.screen.Size()
	cells := cellSpan(r, b.CellWidth, b.CellHeight, w, h)
	if cells.Empty() {
		return
	}
	style := cellStyle(c)
	for y := cells.Y; y < cells.Y+cells.H; y++ {
		for x := cells.X; x < cells.X+cells.W; x++ {
			b.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Present implements pasture.Backend.
func (b *Backend) Present() {
	b.screen.Show()
}

// Delay implements pasture.Backend.
func (b *Backend) Delay(d time.Duration) {
	time.Sleep(d)
}

// Close stops the event pump and restores the terminal. Calls after the
// first are no-ops.
func (b *Backend) Close() {
	if b.screen == nil {
		return
	}
	close(b.stop)
	b.screen.Fini()
	<-b.done
	b.screen = nil
}

func cellStyle(c pasture.Color) tcell.Style {
	return tcell.StyleDefault.Background(cellColor(c))
}

func cellColor(c pasture.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellSpan converts a pixel rectangle into the cell rectangle it touches,
// clipped to a cols x rows screen.
func cellSpan(r pasture.Rect, cw, ch, cols, rows int) pasture.Rect {
	if r.Empty() || cw <= 0 || ch <= 0 {
		return pasture.Rect{}
	}
	x0 := max(floorDiv(r.X, cw), 0)
	y0 := max(floorDiv(r.Y, ch), 0)
	x1 := min(ceilDiv(r.X+r.W, cw), cols)
	y1 := min(ceilDiv(r.Y+r.H, ch), rows)
	if x1 <= x0 || y1 <= y0 {
		return pasture.Rect{}
	}
	return pasture.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// translate maps a tcell event to a pasture event. Ctrl-C stands in for the
// window close button.
func translate(ev tcell.Event) pasture.Event {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return pasture.Event{}
	}
	switch key.Key() {
	case tcell.KeyCtrlC:
		return pasture.QuitEvent()
	case tcell.KeyEscape:
		return pasture.KeyDownEvent(pasture.KeyEscape)
	case tcell.KeyRight:
		return pasture.KeyDownEvent(pasture.KeyRight)
	case tcell.KeyLeft:
		return pasture.KeyDownEvent(pasture.KeyLeft)
	case tcell.KeyUp:
		return pasture.KeyDownEvent(pasture.KeyUp)
	case tcell.KeyDown:
		return pasture.KeyDownEvent(pasture.KeyDown)
	}
	return pasture.KeyDownEvent(pasture.KeyUnknown)
}
