package cascade

import (
	"github.com/lixenwraith/mirrorvis/constants"
	"github.com/lixenwraith/mirrorvis/source"
	"github.com/lixenwraith/mirrorvis/surface"
)

// onSurfaceTolerance is the absolute coordinate tolerance used only by
// the junction-coincidence check below — the one documented exception
// to "never compare SourcePoints by coordinate" (spec.md §4.8: "the
// junction bug fix"). A window boundary landing exactly on a chain
// junction is a real geometric event the extraction must recognize
// even though the OriginPoint's own provenance names the *previous*
// stage's cut surface, not this one.
const onSurfaceTolerance = constants.CoincidenceTolerance

// isOnSurface reports whether SourcePoint p belongs to the maximal run
// being extracted for surf, per spec.md §4.8's membership rules.
func isOnSurface(p source.Point, surf surface.Surface, scene *surface.Scene) bool {
	switch v := p.(type) {
	case source.Endpoint:
		return v.SurfaceID == surf.ID
	case source.HitPoint:
		return v.HitSurfaceID == surf.ID
	case source.ArcIntersection:
		return v.SurfaceID == surf.ID
	case source.JunctionPoint:
		return junctionAdjacentTo(v, surf, scene)
	case source.OriginPoint:
		return originCoincidesWithJunctionOn(v, surf, scene)
	default:
		return false
	}
}

func junctionAdjacentTo(j source.JunctionPoint, surf surface.Surface, scene *surface.Scene) bool {
	for _, c := range scene.Chains {
		if c.ID != j.ChainID {
			continue
		}
		prev, next, ok := c.JunctionAdjacentSurfaceIDs(j.VertexIndex)
		return ok && (prev == surf.ID || next == surf.ID)
	}
	return false
}

// originCoincidesWithJunctionOn implements the junction-bug fix: an
// OriginPoint (a windowed cone's boundary, provenance-tagged to the
// *previous* stage's cut surface) is still treated as lying on surf if
// its coordinate exactly coincides with a chain junction adjacent to
// surf. This is the one place the engine compares SourcePoints by
// coordinate instead of provenance, and it is narrowly scoped to this
// check alone.
func originCoincidesWithJunctionOn(o source.OriginPoint, surf surface.Surface, scene *surface.Scene) bool {
	for _, c := range scene.Chains {
		for i := 0; i < len(c.Vertices); i++ {
			if !c.Vertices[i].AlmostEqual(o.XY(), onSurfaceTolerance) {
				continue
			}
			if prev, next, ok := c.JunctionAdjacentSurfaceIDs(i); ok && (prev == surf.ID || next == surf.ID) {
				return true
			}
		}
	}
	return false
}

// extractWindows collects every maximal run of consecutive polygon
// vertices lying on surf (spec.md §4.8 "Extract windows"), returning
// one Window per run with Right/Left set to the run's first/last
// vertex in the polygon's CCW order.
func extractWindows(polygon []source.Point, surf surface.Surface, scene *surface.Scene) []Window {
	n := len(polygon)
	if n == 0 {
		return nil
	}
	onSurf := make([]bool, n)
	allOn := true
	for i, p := range polygon {
		onSurf[i] = isOnSurface(p, surf, scene)
		if !onSurf[i] {
			allOn = false
		}
	}
	if allOn {
		return []Window{{Right: polygon[0], Left: polygon[n-1]}}
	}

	start := 0
	for i, on := range onSurf {
		if !on {
			start = i
			break
		}
	}

	var windows []Window
	i := 0
	for i < n {
		idx := (start + 1 + i) % n
		if !onSurf[idx] {
			i++
			continue
		}
		j := i
		for j < n && onSurf[(start+1+j)%n] {
			j++
		}
		runStart := (start + 1 + i) % n
		runEnd := (start + 1 + j - 1) % n
		windows = append(windows, Window{Right: polygon[runStart], Left: polygon[runEnd]})
		i = j
	}
	return windows
}
