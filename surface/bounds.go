package surface

import "github.com/lixenwraith/mirrorvis/geom"

// ScreenBounds is the rectangular playfield boundary (spec.md §6).
type ScreenBounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// EdgeReflectivity names the four edges of a screen-bounds rectangle
// in the order NewBoundsChain expects them: ceiling, right wall,
// floor, left wall.
type EdgeReflectivity struct {
	Ceiling, RightWall, Floor, LeftWall Reflectivity
}

// NewBoundsChain builds the closed chain implied by screen bounds
// (spec.md §4.7: "optional screen bounds, treated as an implicit
// closed wall chain if not already included"). Vertices run
// (minX,minY) -> (maxX,minY) -> (maxX,maxY) -> (minX,maxY), CCW in a
// coordinate frame where Y increases downward, matching spec.md §8's
// worked scenarios (ceiling at the smaller Y).
func NewBoundsChain(id string, b ScreenBounds, edges EdgeReflectivity) (*Chain, error) {
	verts := []geom.Point{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MinX, Y: b.MaxY},
	}
	refl := []Reflectivity{edges.Ceiling, edges.RightWall, edges.Floor, edges.LeftWall}
	return NewChain(id, verts, refl, true)
}
