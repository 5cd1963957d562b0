package reflectcache

import (
	"math"
	"testing"

	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/surface"
)

func mustSurface(t *testing.T, id string, seg geom.Segment, r surface.Reflectivity) surface.Surface {
	t.Helper()
	s, err := surface.New(id, seg, r)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestWaypointCountS1S2S3(t *testing.T) {
	h1 := mustSurface(t, "h1", geom.Segment{Start: geom.Point{540, 300}, End: geom.Point{740, 300}}, surface.Mirror)
	h2 := mustSurface(t, "h2", geom.Segment{Start: geom.Point{900, 100}, End: geom.Point{1100, 100}}, surface.Mirror)

	player := geom.Point{345, 515}
	cursor := geom.Point{581, 329}

	for n := 0; n <= 2; n++ {
		planned := []surface.Surface{h1, h2}[:n]
		ic := Build(player, cursor, planned)
		wp := ic.Waypoints()
		if len(wp) != n+2 {
			t.Errorf("n=%d: waypoint count = %d, want %d", n, len(wp), n+2)
		}
		if wp[0] != player {
			t.Errorf("n=%d: waypoints[0] = %v, want player %v", n, wp[0], player)
		}
		if wp[len(wp)-1] != cursor {
			t.Errorf("n=%d: waypoints[last] = %v, want cursor %v", n, wp[len(wp)-1], cursor)
		}
	}
}

func TestReflectionOnSegmentForSimpleMirror(t *testing.T) {
	h1 := mustSurface(t, "h1", geom.Segment{Start: geom.Point{540, 300}, End: geom.Point{740, 300}}, surface.Mirror)
	player := geom.Point{345, 515}
	cursor := geom.Point{581, 329}
	ic := Build(player, cursor, []surface.Surface{h1})
	if !ic.IsReflectionOnSegment(0) {
		t.Errorf("expected R0 on segment for scenario 2 of spec.md §8")
	}
}

func TestReflectReversibilityThroughImageChain(t *testing.T) {
	h1 := mustSurface(t, "h1", geom.Segment{Start: geom.Point{300, 0}, End: geom.Point{300, 400}}, surface.Mirror)
	p := geom.Point{100, 100}
	r1 := geom.ReflectPointThroughLine(p, h1.Seg.SupportingLine())
	r2 := geom.ReflectPointThroughLine(r1, h1.Seg.SupportingLine())
	if math.Abs(r2.X-p.X) > 1e-10 || math.Abs(r2.Y-p.Y) > 1e-10 {
		t.Errorf("R1 invariant violated: got %v, want %v", r2, p)
	}
}

func TestEmptyPlanTrivial(t *testing.T) {
	ic := Build(geom.Point{100, 300}, geom.Point{500, 300}, nil)
	wp := ic.Waypoints()
	if len(wp) != 2 {
		t.Fatalf("expected 2 waypoints for empty plan, got %d", len(wp))
	}
	if !ic.PlanValid() {
		t.Errorf("empty plan must be trivially valid")
	}
}
