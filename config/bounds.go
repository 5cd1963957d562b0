package config

import (
	"github.com/lixenwraith/mirrorvis/surface"
)

// ScreenBounds and EdgeReflectivity are the screen-boundary input of
// spec.md §6 ("ScreenBounds ... or a screen-boundary Chain"); the
// types themselves live in surface (NewBoundsChain), aliased here so
// callers configuring an EngineConfig don't need a second import.
type ScreenBounds = surface.ScreenBounds
type EdgeReflectivity = surface.EdgeReflectivity

// BuildBoundaryChain turns a ScreenBounds rectangle into a closed Chain
// wound ceiling -> right -> floor -> left, delegating to
// surface.NewBoundsChain for the actual vertex/winding construction.
func BuildBoundaryChain(id string, b ScreenBounds, edges EdgeReflectivity) (*surface.Chain, error) {
	return surface.NewBoundsChain(id, b, edges)
}

// StandardScenario returns the concrete bounds and boundary reflectivity
// of spec.md §8's worked end-to-end scenarios: screen 1280x720, room
// (20,80)-(1260,80)-(1260,700)-(20,700), ceiling and left wall
// reflective, right wall and floor absorbing.
func StandardScenario() (ScreenBounds, EdgeReflectivity) {
	return ScreenBounds{MinX: 20, MaxX: 1260, MinY: 80, MaxY: 700},
		EdgeReflectivity{Ceiling: surface.Mirror, RightWall: surface.Wall, Floor: surface.Wall, LeftWall: surface.Mirror}
}
