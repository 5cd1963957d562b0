package geom

import (
	"math"
	"testing"
)

func TestReflectPointThroughLineReversible(t *testing.T) {
	cases := []struct {
		p Point
		l Line
	}{
		{Point{3, 4}, Line{Point{0, 0}, Point{1, 0}}},
		{Point{-2, 7}, Line{Point{1, 1}, Point{1, 1}}},
		{Point{1000.5, -33.25}, Line{Point{10, -5}, Point{3, 4}}},
	}
	for _, c := range cases {
		r := ReflectPointThroughLine(c.p, c.l)
		back := ReflectPointThroughLine(r, c.l)
		if math.Abs(back.X-c.p.X) > 1e-10 || math.Abs(back.Y-c.p.Y) > 1e-10 {
			t.Errorf("reflect(reflect(%v)) = %v, want %v", c.p, back, c.p)
		}
	}
}

func TestRaySegmentIntersect(t *testing.T) {
	seg := Segment{Point{0, 0}, Point{10, 0}}
	tt, s, ok := RaySegmentIntersect(Point{5, 5}, Point{0, -1}, seg)
	if !ok {
		t.Fatalf("expected intersection")
	}
	if math.Abs(tt-5) > 1e-9 || math.Abs(s-0.5) > 1e-9 {
		t.Errorf("got t=%v s=%v, want t=5 s=0.5", tt, s)
	}
}

func TestRaySegmentIntersectCollinearNoHit(t *testing.T) {
	seg := Segment{Point{0, 0}, Point{10, 0}}
	_, _, ok := RaySegmentIntersect(Point{-5, 0}, Point{1, 0}, seg)
	if ok {
		t.Errorf("collinear ray must yield no intersection")
	}
}

func TestRaySegmentIntersectBehindOrigin(t *testing.T) {
	seg := Segment{Point{0, 0}, Point{10, 0}}
	_, _, ok := RaySegmentIntersect(Point{5, -5}, Point{0, -1}, seg)
	if ok {
		t.Errorf("ray pointing away from segment must not intersect")
	}
}

func TestSignedCross(t *testing.T) {
	if got := SignedCross(Point{0, 0}, Point{1, 0}, Point{0, 1}); got <= 0 {
		t.Errorf("expected positive cross for CCW triple, got %v", got)
	}
	if got := SignedCross(Point{0, 0}, Point{0, 1}, Point{1, 0}); got >= 0 {
		t.Errorf("expected negative cross for CW triple, got %v", got)
	}
}

func TestReflectDirection(t *testing.T) {
	v := Point{1, -1}
	n := Point{0, 1} // horizontal surface normal points up
	r := ReflectDirection(v, n)
	want := Point{1, 1}
	if math.Abs(r.X-want.X) > 1e-12 || math.Abs(r.Y-want.Y) > 1e-12 {
		t.Errorf("ReflectDirection = %v, want %v", r, want)
	}
}

func TestSegmentNormalConvention(t *testing.T) {
	s := Segment{Point{0, 0}, Point{1, 0}}
	n := s.Normal()
	want := Point{0, 1}
	if math.Abs(n.X-want.X) > 1e-12 || math.Abs(n.Y-want.Y) > 1e-12 {
		t.Errorf("Normal() = %v, want %v (end-start rotated +90)", n, want)
	}
}

func TestProjectPointOntoSegmentClamps(t *testing.T) {
	seg := Segment{Point{0, 0}, Point{10, 0}}
	s, proj := ProjectPointOntoSegment(Point{20, 5}, seg)
	if s != 1 || proj != (Point{10, 0}) {
		t.Errorf("expected clamp to end, got s=%v proj=%v", s, proj)
	}
}
