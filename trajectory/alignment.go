package trajectory

import (
	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/pathtrace"
	"github.com/lixenwraith/mirrorvis/surface"
)

// Alignment is the lock-step comparison of spec.md §4.10: the planned
// path (waypoints derived from the ImageChain) against the actual
// traced path, segment by segment.
type Alignment struct {
	// DivergenceIndex is the index of the first segment whose endpoint
	// or surface disagrees with the plan, or -1 if none diverged.
	DivergenceIndex int
	// FullyAligned iff both paths reach the cursor with no divergence.
	FullyAligned bool
	// AlignedSegmentCount is the number of leading segments that agreed
	// with the plan before divergence (or all segments, if fully
	// aligned) — spec.md §3/§4.10's alignedSegmentCount.
	AlignedSegmentCount int
	// DivergencePoint is where the actual path first disagreed with the
	// plan, unset when FullyAligned.
	DivergencePoint geom.Point
	// DivergenceSurface is the surface the actual path hit at the
	// diverging step, unset when FullyAligned or when the divergence
	// struck no surface at all (the actual path ran out of steps).
	DivergenceSurface surface.Surface
	// HasDivergencePoint/HasDivergenceSurface report whether the
	// corresponding optional field above was populated.
	HasDivergencePoint   bool
	HasDivergenceSurface bool
}

// ComputeAlignment walks waypoints (spec.md §3, [P, R0..Rn-1, C]) and
// active (the bypass-surviving planned surfaces, one per reflection
// segment) in lock-step against actual's recorded Steps. Two segments
// match iff their endpoint agrees with the waypoint to tolerance and,
// for a reflection segment, the surface hit is the same one planned.
// scene resolves DivergenceSurface from the diverging step's SurfaceID.
func ComputeAlignment(waypoints []geom.Point, active []surface.Surface, actual *pathtrace.Path, tolerance float64, scene *surface.Scene) Alignment {
	segments := len(waypoints) - 1
	for j := 0; j < segments; j++ {
		wantEnd := waypoints[j+1]
		wantSurfaceID := ""
		if j < len(active) {
			wantSurfaceID = active[j].ID
		}

		if j >= len(actual.Steps) {
			return diverged(j)
		}
		step := actual.Steps[j]

		if wantSurfaceID == "" {
			if step.Status != pathtrace.StatusCursor || !step.To.AlmostEqual(wantEnd, tolerance) {
				return divergedAt(j, step, scene)
			}
			continue
		}
		if step.Status != pathtrace.StatusReflect || step.SurfaceID != wantSurfaceID || !step.To.AlmostEqual(wantEnd, tolerance) {
			return divergedAt(j, step, scene)
		}
	}

	fullyAligned := actual.Status == pathtrace.StatusCursor && len(actual.Steps) == segments
	return Alignment{DivergenceIndex: -1, FullyAligned: fullyAligned, AlignedSegmentCount: segments}
}

// diverged reports a divergence with no recorded step to point at (the
// actual path ran out of steps before segment j).
func diverged(j int) Alignment {
	return Alignment{DivergenceIndex: j, FullyAligned: false, AlignedSegmentCount: j}
}

// divergedAt reports a divergence at a recorded step, populating
// DivergencePoint/DivergenceSurface from it.
func divergedAt(j int, step pathtrace.Step, scene *surface.Scene) Alignment {
	a := Alignment{
		DivergenceIndex:     j,
		FullyAligned:        false,
		AlignedSegmentCount: j,
		DivergencePoint:     step.To,
		HasDivergencePoint:  true,
	}
	if step.SurfaceID != "" {
		if surf, ok := scene.Surface(step.SurfaceID); ok {
			a.DivergenceSurface = surf
			a.HasDivergenceSurface = true
		}
	}
	return a
}
