package pasture

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshFrames is how many drawn frames pass between readout updates,
// about half a second at 60 FPS.
const fpsRefreshFrames = 30

// fpsOverlay prints the current FPS and TPS in the top-left corner.
type fpsOverlay struct {
	text   string
	frames int
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{text: formatFPS(0, 0)}
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	o.frames++
	if o.frames >= fpsRefreshFrames {
		o.frames = 0
		o.text = formatFPS(ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	ebitenutil.DebugPrint(screen, o.text)
}

func formatFPS(fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}
