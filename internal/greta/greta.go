// Package greta holds the greta scene shared by the greta example programs:
// Greta the brown cow in the middle of a green field, surrounded by a herd
// of randomly colored cows that never move.
package greta

import (
	"time"

	"github.com/phanxgames/pasture"
	"golang.org/x/exp/rand"
)

const (
	WindowTitle  = "All your grass are belong to Greta"
	ScreenWidth  = 1024
	ScreenHeight = 576
	HerdSize     = 10
)

var (
	// Grass is the field's background color.
	Grass = pasture.Color{R: 39, G: 174, B: 96}
	// Brown is Greta's fur color.
	Brown = pasture.Color{R: 135, G: 54, B: 0}
)

// Config returns the run configuration for the greta window.
func Config() pasture.RunConfig {
	return pasture.RunConfig{
		Title:      WindowTitle,
		Width:      ScreenWidth,
		Height:     ScreenHeight,
		ClearColor: Grass,
	}
}

// NewScene builds the field with a herd placed from seed. Greta is the
// player, drawn on top of the herd.
func NewScene(seed uint64) *pasture.Pasture {
	rng := rand.New(rand.NewSource(seed))
	herd := pasture.NewHerd()
	pasture.Scatter(herd, rng, HerdSize, ScreenWidth, ScreenHeight)
	herd.SetPlayer(pasture.Critter{X: ScreenWidth / 2, Y: ScreenHeight / 2, Color: Brown})
	return pasture.NewPasture(herd)
}

// Seed returns a seed derived from the current time.
func Seed() uint64 {
	return uint64(time.Now().UnixNano())
}
