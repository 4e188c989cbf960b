package pasture

// Scene is the per-program state driven by RunLoop or Run.
type Scene interface {
	// HandleEvent applies one input event. Returning ErrQuit ends the loop.
	HandleEvent(ev Event) error

	// Draw issues the frame's draw calls. The backbuffer has already been
	// cleared.
	Draw(c Canvas)
}

// Blank is a scene with nothing in it. It only listens for quit and escape.
type Blank struct{}

// HandleEvent implements Scene.
func (Blank) HandleEvent(ev Event) error {
	if ev.IsQuit() {
		return ErrQuit
	}
	return nil
}

// Draw implements Scene.
func (Blank) Draw(Canvas) {}

// Pasture is a herd of cows where the arrow keys move the player.
type Pasture struct {
	herd *Herd
}

// NewPasture returns a scene over h. The herd should have a player;
// arrow keys are ignored otherwise.
func NewPasture(h *Herd) *Pasture {
	return &Pasture{herd: h}
}

// Herd returns the scene's herd.
func (p *Pasture) Herd() *Herd {
	return p.herd
}

// HandleEvent implements Scene.
func (p *Pasture) HandleEvent(ev Event) error {
	if ev.IsQuit() {
		return ErrQuit
	}
	if ev.Type != EventKeyDown {
		return nil
	}
	if dx, dy, ok := arrowDelta(ev.Key); ok {
		p.herd.MovePlayer(dx, dy)
	}
	return nil
}

// Draw implements Scene.
func (p *Pasture) Draw(c Canvas) {
	p.herd.Each(func(cr Critter) {
		cr.Draw(c)
	})
}
