// Package pathtrace implements PathBuilder / RayPropagator / PathTracer
// (spec.md §4.9): stepping a ray through the scene under one of three
// strategies, producing a Path with a termination taxonomy.
package pathtrace

import (
	"math"

	"github.com/lixenwraith/mirrorvis/constants"
	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/surface"
)

// Strategy selects which surfaces a step is allowed to hit.
type Strategy int

const (
	// StrategyPhysical intersects every non-just-reflected-off scene
	// surface and takes the nearest hit.
	StrategyPhysical Strategy = iota
	// StrategyPlanned only ever targets the depth-indexed planned
	// surface; every other surface (even a wall) is transparent.
	StrategyPlanned
	// StrategyMerged behaves like StrategyPlanned until the physical-
	// nearest hit first differs from the planned target, then behaves
	// like StrategyPhysical for the remainder of the trace.
	StrategyMerged
)

func (s Strategy) String() string {
	switch s {
	case StrategyPlanned:
		return "planned"
	case StrategyMerged:
		return "merged"
	default:
		return "physical"
	}
}

// Status is the per-step termination taxonomy (spec.md §4.9).
type Status int

const (
	StatusContinue Status = iota
	StatusReflect
	StatusAbsorbWall
	StatusEscape
	StatusCursor
	StatusCap
)

func (s Status) String() string {
	switch s {
	case StatusReflect:
		return "reflect"
	case StatusAbsorbWall:
		return "absorb-wall"
	case StatusEscape:
		return "escape"
	case StatusCursor:
		return "cursor"
	case StatusCap:
		return "cap"
	default:
		return "continue"
	}
}

// Step records one ray segment of a trace and how it ended.
type Step struct {
	From, To  geom.Point
	SurfaceID string
	Status    Status
}

// Path is the full result of a Trace call.
type Path struct {
	Points []geom.Point
	Steps  []Step
	Status Status

	// DivergedAtIndex is the Steps index where a StrategyMerged trace
	// first fell back to physical behavior, or -1 if it never diverged.
	DivergedAtIndex int

	// ForwardProjection holds the extra waypoints traced physically
	// past the cursor, once the trace reaches StatusCursor (spec.md
	// §4.9 "Forward projection"). Never populated for any other
	// terminal status.
	ForwardProjection []geom.Point
}

// Config bundles Trace's common rules (spec.md §4.9 "Common rules").
type Config struct {
	MaxReflections  int
	CursorTolerance float64
}

// DefaultConfig returns spec.md §6's documented defaults.
func DefaultConfig() Config {
	return Config{MaxReflections: constants.DefaultMaxReflections, CursorTolerance: constants.DefaultCursorTolerance}
}

// Trace steps a ray from origin in direction dir through scene under
// strategy, stopping at the cursor, a wall, an escape, or the
// reflection cap — whichever comes first (spec.md §4.9). planned is
// only consulted by StrategyPlanned and StrategyMerged.
func Trace(origin, dir geom.Point, cursor geom.Point, scene *surface.Scene, strategy Strategy, planned []surface.Surface, cfg Config) *Path {
	path := &Path{Points: []geom.Point{origin}, DivergedAtIndex: -1}
	currentOrigin := origin
	currentDir := dir
	lastSurfaceID := ""
	depth := 0
	diverged := false

	for {
		if t, ok := cursorStopParam(currentOrigin, currentDir, cursor, cfg.CursorTolerance); ok {
			chosenSurf, chosenPt, chosenOK, divergedHere := chooseTarget(currentOrigin, currentDir, scene, planned, depth, strategy, diverged, lastSurfaceID)
			if !chosenOK || t < chosenPt.DistTo(currentOrigin) {
				path.Steps = append(path.Steps, Step{From: currentOrigin, To: cursor, Status: StatusCursor})
				path.Points = append(path.Points, cursor)
				path.Status = StatusCursor
				remaining := cfg.MaxReflections - depth
				path.ForwardProjection = physicalOnly(cursor, currentDir, scene, lastSurfaceID, remaining)
				return path
			}
			_ = chosenSurf
			_ = divergedHere
		}

		if depth >= cfg.MaxReflections {
			path.Status = StatusCap
			return path
		}

		chosenSurf, chosenPt, chosenOK, divergedHere := chooseTarget(currentOrigin, currentDir, scene, planned, depth, strategy, diverged, lastSurfaceID)
		if divergedHere {
			diverged = true
			path.DivergedAtIndex = len(path.Steps)
		}
		if !chosenOK {
			path.Status = StatusEscape
			return path
		}

		depth++
		path.Points = append(path.Points, chosenPt)

		if !chosenSurf.IsPlannable() {
			path.Steps = append(path.Steps, Step{From: currentOrigin, To: chosenPt, SurfaceID: chosenSurf.ID, Status: StatusAbsorbWall})
			path.Status = StatusAbsorbWall
			return path
		}

		outgoing, _ := chosenSurf.OnArrowHit(currentDir)
		path.Steps = append(path.Steps, Step{From: currentOrigin, To: chosenPt, SurfaceID: chosenSurf.ID, Status: StatusReflect})
		currentOrigin = chosenPt
		currentDir = outgoing
		lastSurfaceID = chosenSurf.ID
	}
}

// chooseTarget resolves the next candidate hit for the active
// strategy, reporting whether a physical/planned mismatch occurred
// this step (only meaningful for StrategyMerged).
func chooseTarget(origin, dir geom.Point, scene *surface.Scene, planned []surface.Surface, depth int, strategy Strategy, alreadyDiverged bool, excludeID string) (surface.Surface, geom.Point, bool, bool) {
	var targetSurf surface.Surface
	var targetPt geom.Point
	var targetOK bool
	if strategy != StrategyPhysical && depth < len(planned) {
		targetSurf = planned[depth]
		if t, s, ok := geom.RaySegmentIntersect(origin, dir, targetSurf.Seg); ok {
			_ = t
			targetPt = targetSurf.Seg.Start.Add(targetSurf.Seg.Vector().Scale(s))
			targetOK = true
		}
	}

	var physSurf surface.Surface
	var physPt geom.Point
	var physOK bool
	if strategy != StrategyPlanned {
		physSurf, physPt, physOK = castNearest(origin, dir, scene, excludeID)
	}

	switch strategy {
	case StrategyPlanned:
		return targetSurf, targetPt, targetOK, false
	case StrategyPhysical:
		return physSurf, physPt, physOK, false
	default: // StrategyMerged
		if alreadyDiverged || depth >= len(planned) {
			// Either already fell back to physical, or the plan is
			// exhausted — falling off the end of the plan is not
			// itself a divergence (spec.md §4.9: divergence is a
			// physical/planned *mismatch*, not plan exhaustion).
			return physSurf, physPt, physOK, false
		}
		if targetOK && physOK && targetSurf.ID == physSurf.ID && targetPt.AlmostEqual(physPt, constants.KeyStabilityTolerance) {
			return targetSurf, targetPt, targetOK, false
		}
		return physSurf, physPt, physOK, true
	}
}

// castNearest finds the nearest forward hit among every scene surface
// except excludeID (the surface just reflected off, avoiding a
// self-hit at t≈0).
func castNearest(origin, dir geom.Point, scene *surface.Scene, excludeID string) (surface.Surface, geom.Point, bool) {
	bestT := math.Inf(1)
	var bestSurf surface.Surface
	var bestPt geom.Point
	found := false
	for _, surf := range scene.AllSurfaces() {
		if surf.ID == excludeID {
			continue
		}
		t, s, ok := geom.RaySegmentIntersect(origin, dir, surf.Seg)
		if ok && t < bestT {
			bestT, bestSurf, found = t, surf, true
			bestPt = surf.Seg.Start.Add(surf.Seg.Vector().Scale(s))
		}
	}
	return bestSurf, bestPt, found
}

// cursorStopParam reports the distance along dir at which cursor lies
// within tol of the ray, or ok=false if it never comes that close.
// perp>tol is the collinearity bound; t<=0 here and the caller's
// t<chosenPt.DistTo(origin) together are spec.md §4.9's bounds check,
// ruling out a cursor behind the ray's origin or past the next surface hit.
func cursorStopParam(origin, dir, cursor geom.Point, tol float64) (t float64, ok bool) {
	u := dir.Normalized()
	if u.Len() == 0 {
		return 0, false
	}
	w := cursor.Sub(origin)
	t = w.Dot(u)
	if t <= 0 {
		return 0, false
	}
	perp := math.Abs(u.X*w.Y - u.Y*w.X)
	if perp > tol {
		return 0, false
	}
	return t, true
}

// physicalOnly traces forward from a cursor stop purely physically
// (spec.md §4.9 "Forward projection"), up to cap extra reflections,
// returning the additional waypoints (not including the cursor itself).
func physicalOnly(origin, dir geom.Point, scene *surface.Scene, excludeID string, cap int) []geom.Point {
	var out []geom.Point
	currentOrigin, currentDir, exclude := origin, dir, excludeID
	for i := 0; i < cap; i++ {
		surf, pt, ok := castNearest(currentOrigin, currentDir, scene, exclude)
		if !ok {
			return out
		}
		out = append(out, pt)
		if !surf.IsPlannable() {
			return out
		}
		outgoing, _ := surf.OnArrowHit(currentDir)
		currentOrigin, currentDir, exclude = pt, outgoing, surf.ID
	}
	return out
}
