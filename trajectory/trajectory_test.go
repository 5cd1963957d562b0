package trajectory

import (
	"testing"

	"github.com/lixenwraith/mirrorvis/constants"
	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/pathtrace"
	"github.com/lixenwraith/mirrorvis/surface"
)

func emptyScene(t *testing.T) *surface.Scene {
	t.Helper()
	scene, err := surface.NewScene(nil)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return scene
}

// Scenario 1 (spec.md §8): empty scene, cursor ahead, no plan.
func TestEvaluateEmptySceneCursorAhead(t *testing.T) {
	engine := NewEngine(emptyScene(t))
	player := geom.Point{X: 100, Y: 300}
	cursor := geom.Point{X: 500, Y: 300}

	result, err := engine.Evaluate(player, cursor, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(result.PlannedPath) != 2 {
		t.Fatalf("expected planned path of length 2, got %d", len(result.PlannedPath))
	}
	if !result.PlannedPath[0].AlmostEqual(player, 1e-9) || !result.PlannedPath[1].AlmostEqual(cursor, 1e-9) {
		t.Fatalf("expected planned path [P, C], got %+v", result.PlannedPath)
	}
	if result.ActualPath.Status != pathtrace.StatusCursor {
		t.Fatalf("expected actual path to reach the cursor, got status %s", result.ActualPath.Status)
	}
	if !result.Alignment.FullyAligned {
		t.Fatal("expected full alignment")
	}
	if result.QueryID == "" {
		t.Fatal("expected a non-empty QueryID")
	}
}

// Scenario 2 (spec.md §8): a wall interposed before the planned mirror
// makes the actual ray diverge from the plan before reaching it.
func TestEvaluateWallObstacleDivergence(t *testing.T) {
	mirror, err := surface.NewChain("h1", []geom.Point{{X: 540, Y: 300}, {X: 740, Y: 300}}, []surface.Reflectivity{surface.Mirror}, false)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	wall, err := surface.NewChain("wall", []geom.Point{{X: 300, Y: 450}, {X: 500, Y: 450}}, []surface.Reflectivity{surface.Wall}, false)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	scene, err := surface.NewScene([]*surface.Chain{mirror, wall})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}

	engine := NewEngine(scene)
	player := geom.Point{X: 345, Y: 515}
	cursor := geom.Point{X: 581, Y: 329}
	planned := []surface.Surface{mirror.Surfaces()[0]}

	result, err := engine.Evaluate(player, cursor, planned, DefaultConfig())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if result.Alignment.FullyAligned {
		t.Fatal("expected misalignment: the wall blocks the planned ricochet")
	}
	if result.Alignment.DivergenceIndex != 0 {
		t.Fatalf("expected divergence at segment 0, got %d", result.Alignment.DivergenceIndex)
	}
	if result.ActualPath.Status != pathtrace.StatusAbsorbWall {
		t.Fatalf("expected the actual path to absorb at the wall, got %s", result.ActualPath.Status)
	}
	if result.Alignment.AlignedSegmentCount != 0 {
		t.Fatalf("expected zero aligned segments before the divergence, got %d", result.Alignment.AlignedSegmentCount)
	}
	if !result.Alignment.HasDivergencePoint {
		t.Fatal("expected a divergence point")
	}
	if !result.Alignment.HasDivergenceSurface || result.Alignment.DivergenceSurface.ID != "wall#0" {
		t.Fatalf("expected the divergence point to lie on the wall, got surface %q", result.Alignment.DivergenceSurface.ID)
	}
}

func TestEvaluateCursorCoincidesWithPlayer(t *testing.T) {
	engine := NewEngine(emptyScene(t))
	p := geom.Point{X: 10, Y: 10}
	result, err := engine.Evaluate(p, p, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !result.CursorCoincidesWithPlayer {
		t.Fatal("expected CursorCoincidesWithPlayer to be flagged")
	}
	if !result.Alignment.FullyAligned {
		t.Fatal("expected the trivial case to report full alignment")
	}
}

func TestEvaluateDegeneratePlanRejected(t *testing.T) {
	a, err := surface.New("a", geom.Segment{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 10, Y: 0}}, surface.Mirror)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := surface.New("b", geom.Segment{Start: geom.Point{X: 10, Y: 0}, End: geom.Point{X: 20, Y: 0}}, surface.Mirror)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	engine := NewEngine(emptyScene(t))
	_, err = engine.Evaluate(geom.Point{X: 0, Y: 5}, geom.Point{X: 0, Y: -5}, []surface.Surface{a, b}, DefaultConfig())
	if err == nil {
		t.Fatal("expected a DegeneratePlan error")
	}
}

func TestEvaluateRejectsOversizedPlan(t *testing.T) {
	planned := make([]surface.Surface, constants.MaxPlannedSurfaces+1)
	for i := range planned {
		s, err := surface.New(string(rune('a'+i)), geom.Segment{Start: geom.Point{X: float64(i), Y: 0}, End: geom.Point{X: float64(i), Y: 1}}, surface.Mirror)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		planned[i] = s
	}

	engine := NewEngine(emptyScene(t))
	_, err := engine.Evaluate(geom.Point{X: -10, Y: 0}, geom.Point{X: -10, Y: 1}, planned, DefaultConfig())
	if err == nil {
		t.Fatal("expected a DegeneratePlan error for an oversized plan")
	}
}
