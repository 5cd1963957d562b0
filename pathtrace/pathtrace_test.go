package pathtrace

import (
	"testing"

	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/surface"
)

func wallScene(t *testing.T) *surface.Scene {
	t.Helper()
	chain, err := surface.NewChain("w", []geom.Point{{X: 10, Y: -5}, {X: 10, Y: 5}}, []surface.Reflectivity{surface.Wall}, false)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	scene, err := surface.NewScene([]*surface.Chain{chain})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return scene
}

func TestTracePhysicalAbsorbsAtWall(t *testing.T) {
	scene := wallScene(t)
	path := Trace(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 100, Y: 100}, scene, StrategyPhysical, nil, DefaultConfig())
	if path.Status != StatusAbsorbWall {
		t.Fatalf("expected absorb-wall, got %s", path.Status)
	}
	if err := Replay(path); err != nil {
		t.Fatalf("Replay: %v", err)
	}
}

func TestTracePhysicalEscapesWithNoSurfaces(t *testing.T) {
	chain, err := surface.NewChain("w", []geom.Point{{X: 10, Y: 50}, {X: 10, Y: 60}}, []surface.Reflectivity{surface.Wall}, false)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	scene, err := surface.NewScene([]*surface.Chain{chain})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	path := Trace(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 1000, Y: 1000}, scene, StrategyPhysical, nil, DefaultConfig())
	if path.Status != StatusEscape {
		t.Fatalf("expected escape, got %s", path.Status)
	}
}

func TestTraceStopsAtCursorAndProjectsForward(t *testing.T) {
	scene := wallScene(t)
	cursor := geom.Point{X: 5, Y: 0}
	path := Trace(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, cursor, scene, StrategyPhysical, nil, DefaultConfig())
	if path.Status != StatusCursor {
		t.Fatalf("expected cursor, got %s", path.Status)
	}
	if len(path.ForwardProjection) == 0 {
		t.Fatal("expected a forward-projected wall hit beyond the cursor")
	}
	if !path.ForwardProjection[0].AlmostEqual(geom.Point{X: 10, Y: 0}, 1e-9) {
		t.Fatalf("expected forward projection to reach the wall at (10,0), got %+v", path.ForwardProjection[0])
	}
}

func TestTraceMaxReflectionsCap(t *testing.T) {
	chain, err := surface.NewChain("box", []geom.Point{{X: -10, Y: -10}, {X: 10, Y: -10}, {X: 10, Y: 10}, {X: -10, Y: 10}},
		[]surface.Reflectivity{surface.Mirror, surface.Mirror, surface.Mirror, surface.Mirror}, true)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	scene, err := surface.NewScene([]*surface.Chain{chain})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	cfg := Config{MaxReflections: 3, CursorTolerance: 2}
	path := Trace(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0.37}, geom.Point{X: 1e6, Y: 1e6}, scene, StrategyPhysical, nil, cfg)
	if path.Status != StatusCap {
		t.Fatalf("expected cap, got %s", path.Status)
	}
	if len(path.Steps) > cfg.MaxReflections {
		t.Fatalf("expected at most %d steps, got %d", cfg.MaxReflections, len(path.Steps))
	}
}

func TestTraceMergedFlagsDivergence(t *testing.T) {
	chain, err := surface.NewChain("mirrors", []geom.Point{{X: 10, Y: -5}, {X: 10, Y: 5}}, []surface.Reflectivity{surface.Mirror}, false)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	obstacle, err := surface.NewChain("obstacle", []geom.Point{{X: 5, Y: -1}, {X: 5, Y: 1}}, []surface.Reflectivity{surface.Wall}, false)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	scene, err := surface.NewScene([]*surface.Chain{chain, obstacle})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	planned := []surface.Surface{chain.Surfaces()[0]}

	path := Trace(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 100, Y: 100}, scene, StrategyMerged, planned, DefaultConfig())
	if path.DivergedAtIndex != 0 {
		t.Fatalf("expected divergence at step 0 (obstacle blocks the planned mirror), got %d", path.DivergedAtIndex)
	}
	if path.Status != StatusAbsorbWall {
		t.Fatalf("expected the merged trace to absorb at the obstacle wall, got %s", path.Status)
	}
}
