package source

import (
	"testing"

	"github.com/lixenwraith/mirrorvis/geom"
)

func TestKeyStability(t *testing.T) {
	a := NewEndpoint("h1", Start, geom.Point{1, 2})
	b := NewEndpoint("h1", Start, geom.Point{1.0000001, 2})
	if !Equivalent(a, b) {
		t.Fatalf("expected endpoints with same tuple to be equivalent regardless of coordinate jitter")
	}
}

func TestKeyDistinguishesVariantsAndFields(t *testing.T) {
	ep := NewEndpoint("h1", Start, geom.Point{0, 0})
	junc := NewJunctionPoint("h1", 0, geom.Point{0, 0})
	if Equivalent(ep, junc) {
		t.Errorf("endpoint and junction at the same coordinate must not be equivalent")
	}

	epEnd := NewEndpoint("h1", EndEnd, geom.Point{0, 0})
	if Equivalent(ep, epEnd) {
		t.Errorf("start and end of the same surface must have distinct keys")
	}
}

func TestHitKeyDependsOnRaySource(t *testing.T) {
	src1 := NewEndpoint("h1", Start, geom.Point{0, 0}).Key()
	src2 := NewEndpoint("h2", Start, geom.Point{0, 0}).Key()
	h1 := NewHitPoint(src1, "w1", 0.5, geom.Point{5, 5})
	h2 := NewHitPoint(src2, "w1", 0.5, geom.Point{5, 5})
	if Equivalent(h1, h2) {
		t.Errorf("hit points from different ray sources must not be equivalent even if coincident")
	}
}

func TestKeyOrderingIsDeterministic(t *testing.T) {
	a := NewEndpoint("h1", Start, geom.Point{0, 0}).Key()
	b := NewEndpoint("h2", Start, geom.Point{0, 0}).Key()
	first := a.Less(b)
	for i := 0; i < 100; i++ {
		a2 := NewEndpoint("h1", Start, geom.Point{0, 0}).Key()
		b2 := NewEndpoint("h2", Start, geom.Point{0, 0}).Key()
		if a2.Less(b2) != first {
			t.Fatalf("key ordering is not deterministic across reconstruction")
		}
	}
}
