// Package cascade implements VisibilityCascade (spec.md §4.8): given
// the player, an ordered list of planned (reflective) surfaces, and
// the scene, it drives a chain of windowed ConeProjections — one
// reflection per planned surface — each seeded by the window the
// previous polygon cut into the next planned surface.
package cascade

import (
	"fmt"
	"math"

	"github.com/lixenwraith/mirrorvis/cone"
	"github.com/lixenwraith/mirrorvis/constants"
	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/reflectcache"
	"github.com/lixenwraith/mirrorvis/source"
	"github.com/lixenwraith/mirrorvis/surface"
)

// Window is the visible sub-segment a cascade stage found on the next
// planned surface: Right/Left are the SourcePoints bounding the run,
// in CCW order (Right precedes Left, per cone.RaySector's convention).
type Window struct {
	Right, Left source.Point
}

func (w Window) segment() geom.Segment {
	return geom.Segment{Start: w.Right.XY(), End: w.Left.XY()}
}

// Branch is one windowed ConeProjection spawned from a single window
// found on the planned surface at a stage.
type Branch struct {
	Window  Window
	Origin  geom.Point
	Polygon []source.Point
}

// Stage is one step of the cascade: the polygon it extracted windows
// from, and every branch those windows produced. SurfaceIndex is -1
// for the root stage (the full cone at the player), and i for the
// stage whose polygon was projected through a window on planned[i].
// A stage's Branches come from the windows it found on the next
// planned surface: planned[0] for the root, planned[i+1] for stage i.
type Stage struct {
	SurfaceIndex int
	Origin       geom.Point
	Polygon      []source.Point
	Branches     []Branch
	// Continued indexes the Branch chosen to carry the cascade to the
	// next stage (the window containing the image chain's reflection
	// point for this surface), or -1 if Branches is empty (terminal).
	Continued int
}

// Result is the full polygon series of a cascade run (spec.md §4.8).
type Result struct {
	Stages []Stage
}

// Config bundles VisibilityCascade's optional, query-wide parameters.
type Config struct {
	RangeLimit       *cone.RangeLimit
	ProvenanceStrict bool
}

// Run executes the cascade for ic.Planned (spec.md §4.8), using ic's
// already-computed reflection points to select, at each stage, which
// window's branch carries the cascade forward (DESIGN.md's resolution
// of the multi-window branch-selection Open Question).
func Run(player geom.Point, ic *reflectcache.ImageChain, scene *surface.Scene, cfg Config) (*Result, error) {
	stage0, err := cone.Project(cone.Full360(player), scene, nil, cone.Config{
		ConeID: "stage:0", RangeLimit: cfg.RangeLimit, ProvenanceStrict: cfg.ProvenanceStrict,
	})
	if err != nil {
		return nil, err
	}

	stages := []Stage{{SurfaceIndex: -1, Origin: player, Polygon: stage0, Continued: -1}}
	currentOrigin := player
	currentPolygon := stage0

	for i, surf := range ic.Planned {
		windows := extractWindows(currentPolygon, surf, scene)
		if len(windows) == 0 {
			break
		}

		nextOrigin := geom.ReflectPointThroughLine(currentOrigin, surf.Seg.SupportingLine())
		branches := make([]Branch, len(windows))
		for wi, w := range windows {
			coneID := fmt.Sprintf("cascade:%d:%d", i, wi)
			rightOrigin := source.NewOriginPoint(coneID, source.Right, w.Right.XY())
			leftOrigin := source.NewOriginPoint(coneID, source.Left, w.Left.XY())
			sector := cone.Windowed(nextOrigin, rightOrigin.XY(), leftOrigin.XY())
			winCfg := &cone.Window{
				Right: rightOrigin, Left: leftOrigin,
				RightOwnSurfaceIDs: []string{surf.ID}, LeftOwnSurfaceIDs: []string{surf.ID},
			}
			poly, err := cone.Project(sector, scene, winCfg, cone.Config{
				ConeID: coneID, ExcludedSurfaceID: surf.ID,
				RangeLimit: cfg.RangeLimit, ProvenanceStrict: cfg.ProvenanceStrict,
			})
			if err != nil {
				return nil, err
			}
			branches[wi] = Branch{Window: Window{Right: rightOrigin, Left: leftOrigin}, Origin: nextOrigin, Polygon: poly}
		}

		chosen := selectContinuation(windows, ic.ReflectionPoints[i])
		stages[len(stages)-1].Branches = branches
		stages[len(stages)-1].Continued = chosen

		currentOrigin = branches[chosen].Origin
		currentPolygon = branches[chosen].Polygon
		stages = append(stages, Stage{SurfaceIndex: i, Origin: currentOrigin, Polygon: currentPolygon, Continued: -1})
	}

	return &Result{Stages: stages}, nil
}

// selectContinuation picks the window whose sub-segment on the
// planned surface is nearest to r (the image chain's reflection point
// for this surface) — the branch that actually corresponds to the
// planned shot. Ties (r equidistant, or exactly on a window boundary)
// favor the window whose Right SourcePoint has the lexicographically
// lower provenance key, for determinism (spec.md D1).
func selectContinuation(windows []Window, r geom.Point) int {
	best := -1
	bestDist := math.Inf(1)
	for i, w := range windows {
		_, proj := geom.ProjectPointOntoSegment(r, w.segment())
		d := proj.DistTo(r)
		switch {
		case best < 0 || d < bestDist-constants.CoincidenceTolerance:
			best, bestDist = i, d
		case math.Abs(d-bestDist) <= constants.CoincidenceTolerance && windows[i].Right.Key().Less(windows[best].Right.Key()):
			best = i
		}
	}
	return best
}
