// Package pasture runs tiny fixed-timestep 2D scenes: a window that clears
// itself every frame, and a field of cows where one of them follows the
// arrow keys.
//
// # Quick start
//
// A [Scene] handles input events and issues draw calls. [RunLoop] drives it
// on any pull-model [Backend]:
//
//	herd := pasture.NewHerd()
//	herd.SetPlayer(pasture.Critter{X: 512, Y: 288, Color: pasture.Color{R: 135, G: 54}})
//	err := pasture.RunLoop(sdl2.New(), pasture.NewPasture(herd), pasture.RunConfig{
//		Title: "My Field", Width: 1024, Height: 576,
//	})
//
// Each frame drains every pending event, clears the backbuffer to
// [RunConfig.ClearColor], lets the scene draw, presents, and sleeps
// [RunConfig.FrameDelay]. A scene ends the loop by returning [ErrQuit].
//
// [Run] drives the same scene with Ebitengine's own game loop instead.
//
// # Backends
//
// The sdl2, term and raylib packages provide windowed and terminal backends.
// [ScriptBackend] runs headless from a JSON script and can write PNG
// screenshots, which is how the scenes are tested end to end.
//
// # Critters
//
// A [Critter] is seven filled rectangles at a pixel position. A [Herd]
// keeps critters in a [Donburi] world; static critters are drawn in creation
// order and the player last.
//
// [Donburi]: https://github.com/yohamta/donburi
package pasture
