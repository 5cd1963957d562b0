// Package trajectory implements the TrajectoryEngine façade of spec.md
// §6: the single entry point that wires BypassEvaluator, ReflectionCache,
// VisibilityCascade, and PathTracer together into one EngineResult per
// query. No state survives between Evaluate calls (spec.md §5).
package trajectory

import (
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/mirrorvis/bypass"
	"github.com/lixenwraith/mirrorvis/cascade"
	"github.com/lixenwraith/mirrorvis/cone"
	"github.com/lixenwraith/mirrorvis/constants"
	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/pathtrace"
	"github.com/lixenwraith/mirrorvis/reflectcache"
	"github.com/lixenwraith/mirrorvis/surface"
)

// Config bundles the optional per-query settings of spec.md §6.
type Config struct {
	MaxReflections     int
	CursorTolerance    float64
	AlignmentTolerance float64
	ProvenanceStrict   bool
	RangeLimit         *cone.RangeLimit
}

// DefaultConfig returns spec.md §6's documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxReflections:     constants.DefaultMaxReflections,
		CursorTolerance:    constants.DefaultCursorTolerance,
		AlignmentTolerance: constants.DefaultAlignmentTolerance,
		ProvenanceStrict:   true,
	}
}

// Result is the EngineResult of spec.md §6.
type Result struct {
	QueryID string

	PlannedPath []geom.Point
	ActualPath  *pathtrace.Path
	Alignment   Alignment

	// Polygons is the visibility polygon series, one stage per
	// successive planned surface plus the root (spec.md §6).
	Polygons []cascade.Stage

	// Bypass is the bypass report: activeSurfaces with order,
	// bypassedSurfaces with reason (spec.md §6).
	Bypass bypass.Result

	// ArrowWaypoints is actualPath.points concatenated with
	// actualPath.forwardProjection (spec.md §6).
	ArrowWaypoints []geom.Point

	// CursorCoincidesWithPlayer flags the trivial query of spec.md §6:
	// player and cursor coincide, so alignment and paths are produced
	// as a single degenerate waypoint instead of being traced.
	CursorCoincidesWithPlayer bool
}

// Engine evaluates trajectory queries against one fixed, immutable
// scene (spec.md §5: "Surfaces and Chains are immutable once built").
type Engine struct {
	Scene *surface.Scene
}

// NewEngine builds an Engine over scene.
func NewEngine(scene *surface.Scene) *Engine {
	return &Engine{Scene: scene}
}

// coincidenceTolerance is how close player and cursor must be to
// trigger the CursorCoincidesWithPlayer trivial case (spec.md §6).
const coincidenceTolerance = constants.CoincidenceTolerance

// Evaluate runs one query to completion: no suspension points, no
// shared mutable state, a fresh query-local ReflectionCache every call
// (spec.md §5).
func (e *Engine) Evaluate(player, cursor geom.Point, planned []surface.Surface, cfg Config) (*Result, error) {
	queryID := uuid.NewString()

	if player.AlmostEqual(cursor, coincidenceTolerance) {
		return &Result{
			QueryID:     queryID,
			PlannedPath: []geom.Point{player, cursor},
			ActualPath: &pathtrace.Path{
				Points:          []geom.Point{player},
				Status:          pathtrace.StatusCursor,
				DivergedAtIndex: -1,
			},
			Alignment:                 Alignment{DivergenceIndex: -1, FullyAligned: true, AlignedSegmentCount: 1},
			ArrowWaypoints:            []geom.Point{player},
			CursorCoincidesWithPlayer: true,
		}, nil
	}

	if err := validatePlan(planned); err != nil {
		return nil, errors.Wrapf(err, "query %s", queryID)
	}

	report := bypass.Evaluate(player, cursor, planned)
	ic := reflectcache.Build(player, cursor, report.Active)

	cascadeResult, err := cascade.Run(player, ic, e.Scene, cascade.Config{
		RangeLimit:       cfg.RangeLimit,
		ProvenanceStrict: cfg.ProvenanceStrict,
	})
	if err != nil {
		if stderrors.Is(err, cone.ErrCollinearWithoutProvenance) {
			return nil, &CollinearError{QueryID: queryID, Err: err}
		}
		return nil, errors.Wrapf(err, "query %s: cascade", queryID)
	}

	dir := cursor.Sub(player)
	if len(ic.ReflectionPoints) > 0 {
		dir = ic.ReflectionPoints[0].Sub(player)
	}

	actual := pathtrace.Trace(player, dir, cursor, e.Scene, pathtrace.StrategyMerged, report.Active, pathtrace.Config{
		MaxReflections:  cfg.MaxReflections,
		CursorTolerance: cfg.CursorTolerance,
	})

	alignment := ComputeAlignment(ic.Waypoints(), report.Active, actual, cfg.AlignmentTolerance, e.Scene)

	arrowWaypoints := append([]geom.Point(nil), actual.Points...)
	arrowWaypoints = append(arrowWaypoints, actual.ForwardProjection...)

	return &Result{
		QueryID:        queryID,
		PlannedPath:    ic.Waypoints(),
		ActualPath:     actual,
		Alignment:      alignment,
		Polygons:       cascadeResult.Stages,
		Bypass:         report,
		ArrowWaypoints: arrowWaypoints,
	}, nil
}

// validatePlan enforces the DegeneratePlan precondition of spec.md §6
// that ConeProjection and the ImageChain assume already holds: no two
// consecutive planned surfaces may share a supporting line with
// matching orientation. Zero-length surfaces are already ruled out at
// surface.New, which every Surface in planned must have passed through.
func validatePlan(planned []surface.Surface) error {
	if len(planned) > constants.MaxPlannedSurfaces {
		return &DegeneratePlanError{
			Index:  len(planned),
			Reason: fmt.Sprintf("plan length %d exceeds the engine's %d-surface ceiling", len(planned), constants.MaxPlannedSurfaces),
		}
	}
	for i := 0; i+1 < len(planned); i++ {
		a, b := planned[i], planned[i+1]
		if surface.SameSupportingLine(a, b) && surface.MatchingOrientation(a, b) {
			return &DegeneratePlanError{
				Index:  i,
				Reason: fmt.Sprintf("surfaces %q and %q share a supporting line with matching orientation", a.ID, b.ID),
			}
		}
	}
	return nil
}
