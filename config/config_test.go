package config

import (
	"path/filepath"
	"testing"
)

func TestStandardScenarioBuildsFourEdges(t *testing.T) {
	bounds, edges := StandardScenario()
	chain, err := BuildBoundaryChain("room", bounds, edges)
	if err != nil {
		t.Fatalf("BuildBoundaryChain: %v", err)
	}
	if got := len(chain.Surfaces()); got != 4 {
		t.Fatalf("expected 4 boundary surfaces, got %d", got)
	}
	surfaces := chain.Surfaces()
	if !surfaces[0].IsPlannable() {
		t.Fatal("expected the ceiling edge to be a mirror")
	}
	if surfaces[1].IsPlannable() {
		t.Fatal("expected the right-wall edge to be non-reflective")
	}
	if surfaces[2].IsPlannable() {
		t.Fatal("expected the floor edge to be non-reflective")
	}
	if !surfaces[3].IsPlannable() {
		t.Fatal("expected the left-wall edge to be a mirror")
	}
}

func TestDebugConfigRelaxesProvenance(t *testing.T) {
	if DefaultConfig().ToTrajectoryConfig().ProvenanceStrict != true {
		t.Fatal("expected DefaultConfig to be provenance-strict")
	}
	if DebugConfig().ToTrajectoryConfig().ProvenanceStrict {
		t.Fatal("expected DebugConfig to relax provenance-strict mode")
	}
}

func TestSaveLoadFileRoundTrips(t *testing.T) {
	cfg := DebugConfig()
	cfg.MaxReflections = 4
	path := filepath.Join(t.TempDir(), "mirrorvis.toml")

	if err := SaveFile(path, cfg); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.MaxReflections != 4 {
		t.Fatalf("expected MaxReflections=4, got %d", loaded.MaxReflections)
	}
	if loaded.ProvenanceStrict {
		t.Fatal("expected ProvenanceStrict=false to round-trip")
	}
	if loaded.RangeLimit != nil {
		t.Fatal("expected RangeLimit to stay nil across a file round-trip")
	}
}
