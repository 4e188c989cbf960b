package pasture

import (
	"github.com/yohamta/donburi"
	"golang.org/x/exp/rand"
)

// Position is the ECS component holding a critter's pixel position.
type Position struct {
	X, Y int
}

var (
	positionComponent = donburi.NewComponentType[Position]()
	colorComponent    = donburi.NewComponentType[Color]()
	playerTag         = donburi.NewTag()
)

// Herd stores the critters of a scene in a Donburi world. Static critters
// are drawn in creation order; the player, if any, is drawn last.
type Herd struct {
	world     donburi.World
	statics   []donburi.Entity
	player    donburi.Entity
	hasPlayer bool
}

// NewHerd returns an empty herd.
func NewHerd() *Herd {
	return &Herd{world: donburi.NewWorld()}
}

// World returns the backing Donburi world.
func (h *Herd) World() donburi.World {
	return h.world
}

func (h *Herd) create(c Critter, tag bool) donburi.Entity {
	var e donburi.Entity
	if tag {
		e = h.world.Create(positionComponent, colorComponent, playerTag)
	} else {
		e = h.world.Create(positionComponent, colorComponent)
	}
	entry := h.world.Entry(e)
	positionComponent.SetValue(entry, Position{X: c.X, Y: c.Y})
	colorComponent.SetValue(entry, c.Color)
	return e
}

// Add appends a static critter. Static critters are never updated.
func (h *Herd) Add(c Critter) {
	h.statics = append(h.statics, h.create(c, false))
}

// SetPlayer creates the player critter. Only one player may exist; a second
// call panics.
func (h *Herd) SetPlayer(c Critter) {
	if h.hasPlayer {
		panic("pasture: herd already has a player")
	}
	h.player = h.create(c, true)
	h.hasPlayer = true
}

// HasPlayer reports whether SetPlayer has been called.
func (h *Herd) HasPlayer() bool {
	return h.hasPlayer
}

// Player returns a copy of the player critter. It panics if there is none.
func (h *Herd) Player() Critter {
	if !h.hasPlayer {
		panic("pasture: herd has no player")
	}
	return h.critter(h.player)
}

// MovePlayer shifts the player by (dx, dy). It is a no-op without a player.
func (h *Herd) MovePlayer(dx, dy int) {
	if !h.hasPlayer {
		return
	}
	pos := positionComponent.Get(h.world.Entry(h.player))
	pos.X += dx
	pos.Y += dy
}

// Statics returns copies of the static critters in creation order.
func (h *Herd) Statics() []Critter {
	out := make([]Critter, len(h.statics))
	for i, e := range h.statics {
		out[i] = h.critter(e)
	}
	return out
}

// Len returns the number of critters, player included.
func (h *Herd) Len() int {
	return h.world.Len()
}

// Each calls fn for every critter in draw order.
func (h *Herd) Each(fn func(Critter)) {
	for _, e := range h.statics {
		fn(h.critter(e))
	}
	if h.hasPlayer {
		fn(h.critter(h.player))
	}
}

func (h *Herd) critter(e donburi.Entity) Critter {
	entry := h.world.Entry(e)
	pos := positionComponent.Get(entry)
	return Critter{X: pos.X, Y: pos.Y, Color: *colorComponent.Get(entry)}
}

// RandomCritter returns a critter at a random position inside a width x
// height area with random channel values in [0, 255).
func RandomCritter(rng *rand.Rand, width, height int) Critter {
	return Critter{
		X: rng.Intn(width),
		Y: rng.Intn(height),
		Color: Color{
			R: uint8(rng.Intn(255)),
			G: uint8(rng.Intn(255)),
			B: uint8(rng.Intn(255)),
		},
	}
}

// Scatter adds n random static critters to h.
func Scatter(h *Herd, rng *rand.Rand, n, width, height int) {
	for i := 0; i < n; i++ {
		h.Add(RandomCritter(rng, width, height))
	}
}
