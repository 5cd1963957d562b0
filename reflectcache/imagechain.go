// Package reflectcache implements the ReflectionCache / ImageChain of
// spec.md §4.4: the chain of reflected positions of player and cursor
// through an ordered list of planned surfaces, and the unique
// reflection points that chain implies on each surface.
//
// An ImageChain is query-local: it is built once per query and
// discarded afterwards (spec.md §5 — "the ReflectionCache is the only
// memoization layer; it is query-local and discarded between
// queries").
package reflectcache

import (
	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/surface"
)

// ImageChain holds the reflected position sequences of the player and
// cursor through an ordered planned-surface list, and the derived
// reflection point on each surface.
type ImageChain struct {
	Planned []surface.Surface

	// PlayerImages[k] is the player reflected successively through
	// Planned[0..k-1]; PlayerImages[0] is the player itself.
	PlayerImages []geom.Point

	// CursorImages[k] is the cursor reflected successively through
	// Planned[n-1..k]; CursorImages[n] is the cursor itself (n = len(Planned)).
	CursorImages []geom.Point

	// ReflectionPoints[i] is Rᵢ, the point on Planned[i]'s supporting
	// line where the planned path touches.
	ReflectionPoints []geom.Point

	// onSegment[i] records whether ReflectionPoints[i] lies within
	// Planned[i]'s segment bounds.
	onSegment []bool
	// paramS[i] is Rᵢ's parameter along Planned[i].Seg (may be outside [0,1]).
	paramS []float64
	// parallel[i] is true if no reflection point exists because the
	// player/cursor image segment is parallel to Planned[i]'s line.
	parallel []bool
}

// Build constructs an ImageChain for player P, cursor C, and an
// ordered list of planned surfaces (spec.md §4.4).
func Build(player, cursor geom.Point, planned []surface.Surface) *ImageChain {
	n := len(planned)
	ic := &ImageChain{
		Planned:           planned,
		PlayerImages:      make([]geom.Point, n+1),
		CursorImages:      make([]geom.Point, n+1),
		ReflectionPoints:  make([]geom.Point, n),
		onSegment:         make([]bool, n),
		paramS:            make([]float64, n),
		parallel:          make([]bool, n),
	}

	ic.PlayerImages[0] = player
	for i := 0; i < n; i++ {
		ic.PlayerImages[i+1] = geom.ReflectPointThroughLine(ic.PlayerImages[i], planned[i].Seg.SupportingLine())
	}

	ic.CursorImages[n] = cursor
	for i := n - 1; i >= 0; i-- {
		ic.CursorImages[i] = geom.ReflectPointThroughLine(ic.CursorImages[i+1], planned[i].Seg.SupportingLine())
	}

	for i := 0; i < n; i++ {
		from := ic.PlayerImages[i]
		to := ic.CursorImages[i]
		dir := to.Sub(from)
		t, s, ok := geom.RayLineIntersect(from, dir, planned[i].Seg)
		if !ok || dir.Len() == 0 {
			ic.parallel[i] = true
			ic.ReflectionPoints[i] = planned[i].Seg.Start // undefined; placeholder, never trusted when parallel[i]
			continue
		}
		_ = t
		ic.paramS[i] = s
		ic.ReflectionPoints[i] = planned[i].Seg.Start.Add(planned[i].Seg.Vector().Scale(s))
		ic.onSegment[i] = geom.OnSegmentTolerance(s, planned[i].Seg)
	}

	return ic
}

// IsReflectionOnSegment answers whether Rᵢ lies within [start, end] of
// Planned[i] (spec.md §4.4).
func (ic *ImageChain) IsReflectionOnSegment(i int) bool {
	if ic.parallel[i] {
		return false
	}
	return ic.onSegment[i]
}

// IsParallel reports whether no reflection point exists for surface i
// because the implied path segment is parallel to its supporting line.
func (ic *ImageChain) IsParallel(i int) bool {
	return ic.parallel[i]
}

// PlanValid reports whether every reflection point lies on its
// segment — the definition of a fully valid plan (spec.md §8, V5).
func (ic *ImageChain) PlanValid() bool {
	for i := range ic.ReflectionPoints {
		if !ic.IsReflectionOnSegment(i) {
			return false
		}
	}
	return true
}

// Waypoints returns [P, R0, ..., Rn-1, C], length n+2 for n planned
// surfaces (spec.md §3, invariants S1/S2/S3).
func (ic *ImageChain) Waypoints() []geom.Point {
	n := len(ic.Planned)
	out := make([]geom.Point, 0, n+2)
	out = append(out, ic.PlayerImages[0])
	out = append(out, ic.ReflectionPoints...)
	out = append(out, ic.CursorImages[n])
	return out
}
