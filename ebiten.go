package pasture

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Run opens a window with Ebitengine and drives scene from its game loop at
// the default 60 ticks per second. Closing the window or pressing escape
// returns nil.
//
// Errors raised before the first tick are reported as an *InitError for the
// window stage; anything returned by the scene other than ErrQuit is
// returned unchanged.
func Run(scene Scene, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowClosingHandled(true)

	g := newEbitenGame(scene, cfg)
	if err := ebiten.RunGame(g); err != nil {
		if !g.started {
			return &InitError{Stage: StageWindow, Subsystem: "ebiten", Err: err}
		}
		return err
	}
	return nil
}

// ebitenGame adapts a Scene to ebiten.Game.
type ebitenGame struct {
	scene   Scene
	cfg     RunConfig
	queue   EventQueue
	keys    []ebiten.Key
	canvas  ebitenCanvas
	fps     *fpsOverlay
	dbg     *debugLogger
	events  int
	started bool
}

func newEbitenGame(scene Scene, cfg RunConfig) *ebitenGame {
	g := &ebitenGame{scene: scene, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if cfg.Debug {
		g.dbg = newDebugLogger(cfg.debugOutput())
	}
	return g
}

// Update implements ebiten.Game.
func (g *ebitenGame) Update() error {
	g.started = true
	g.collectInput()
	err := g.dispatch()
	if errors.Is(err, ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// collectInput queues this tick's window-close request and newly pressed
// keys.
func (g *ebitenGame) collectInput() {
	if ebiten.IsWindowBeingClosed() {
		g.queue.InjectQuit()
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.queue.InjectKey(ebitenKey(k))
	}
}

// dispatch drains the queue into the scene. On error the remaining events
// are dropped.
func (g *ebitenGame) dispatch() error {
	for {
		ev, ok := g.queue.Pop()
		if !ok {
			return nil
		}
		g.events++
		if err := g.scene.HandleEvent(ev); err != nil {
			g.queue.Clear()
			return err
		}
	}
}

// Draw implements ebiten.Game.
func (g *ebitenGame) Draw(screen *ebiten.Image) {
	g.canvas.target = screen
	g.canvas.Clear(g.cfg.ClearColor)

	if g.dbg == nil {
		g.scene.Draw(&g.canvas)
	} else {
		cc := &countingCanvas{Canvas: &g.canvas}
		g.scene.Draw(cc)
		g.dbg.log(frameStats{events: g.events, rects: cc.rects})
		g.events = 0
	}

	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The logical screen always matches the
// configured window size.
func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// ebitenKey maps an Ebitengine key to the keys scenes react to.
func ebitenKey(k ebiten.Key) Key {
	switch k {
	case ebiten.KeyEscape:
		return KeyEscape
	case ebiten.KeyArrowRight:
		return KeyRight
	case ebiten.KeyArrowLeft:
		return KeyLeft
	case ebiten.KeyArrowUp:
		return KeyUp
	case ebiten.KeyArrowDown:
		return KeyDown
	}
	return KeyUnknown
}

// whitePixel is a 1x1 white image scaled and tinted to fill rectangles.
// Created on first use so the package can be imported without a running
// game.
var whitePixel *ebiten.Image

func solidPixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// ebitenCanvas draws onto an ebiten screen image.
type ebitenCanvas struct {
	target *ebiten.Image
	op     ebiten.DrawImageOptions
}

func (c *ebitenCanvas) Clear(col Color) {
	c.target.Fill(col.RGBA())
}

func (c *ebitenCanvas) FillRect(r Rect, col Color) {
	if r.Empty() {
		return
	}
	c.op.GeoM.Reset()
	c.op.GeoM.Scale(float64(r.W), float64(r.H))
	c.op.GeoM.Translate(float64(r.X), float64(r.Y))
	c.op.ColorScale.Reset()
	c.op.ColorScale.ScaleWithColor(col.RGBA())
	c.target.DrawImage(solidPixel(), &c.op)
}
