package geom

import "math"

// Segment is an ordered pair of points (Start, End), Start != End.
// Its supporting Line is the infinite line through both points.
type Segment struct {
	Start, End Point
}

// Vector returns End - Start.
func (s Segment) Vector() Point {
	return s.End.Sub(s.Start)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Vector().Len()
}

// LengthSq returns the squared length, avoiding a sqrt.
func (s Segment) LengthSq() float64 {
	v := s.Vector()
	return v.X*v.X + v.Y*v.Y
}

// Degenerate reports whether Start and End coincide (zero length).
func (s Segment) Degenerate() bool {
	return s.Vector().Len() == 0
}

// Normal returns the segment's fixed-convention normal: rotating
// End-Start by +90 degrees. By the convention in spec.md §3, this is
// the "reflective side" direction.
func (s Segment) Normal() Point {
	v := s.Vector()
	return Point{-v.Y, v.X}.Normalized()
}

// Line is the infinite line supporting a Segment, described as a point
// on the line plus a direction vector (not necessarily unit length).
type Line struct {
	Point Point
	Dir   Point
}

// SupportingLine returns the infinite line through s.Start and s.End.
func (s Segment) SupportingLine() Line {
	return Line{Point: s.Start, Dir: s.Vector()}
}

// PointAt evaluates the line at parameter t: Point + t*Dir.
func (l Line) PointAt(t float64) Point {
	return l.Point.Add(l.Dir.Scale(t))
}

// ReflectPointThroughLine reflects p across l. Reversible to exact
// machine equality only when p originated from l itself; otherwise
// reversible within one ulp (spec.md §4.1).
func ReflectPointThroughLine(p Point, l Line) Point {
	d := l.Dir
	dd := d.Dot(d)
	if dd == 0 {
		return p
	}
	w := p.Sub(l.Point)
	t := w.Dot(d) / dd
	proj := l.Point.Add(d.Scale(t))
	// p' = proj - (p - proj) = 2*proj - p
	return proj.Scale(2).Sub(p)
}

// ProjectPointOntoSegment returns the parameter s in [0,1] of the
// closest point on segment seg to p, clamped to the segment, and the
// projected point itself.
func ProjectPointOntoSegment(p Point, seg Segment) (s float64, proj Point) {
	v := seg.Vector()
	vv := v.Dot(v)
	if vv == 0 {
		return 0, seg.Start
	}
	t := p.Sub(seg.Start).Dot(v) / vv
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t, seg.Start.Add(v.Scale(t))
}

// segParamFromLineIntersection returns the ray parameter t and the
// parameter s along seg at which the ray's line crosses seg's
// supporting line. s is neither clamped nor checked against [0,1];
// ok is false only when the ray is parallel or collinear to the line,
// so callers that need on-segment membership must check s themselves.
func segParamFromLineIntersection(origin, dir Point, seg Segment) (t, s float64, ok bool) {
	v := seg.Vector()
	denom := dir.X*v.Y - dir.Y*v.X
	if denom == 0 {
		return 0, 0, false // parallel or collinear: caller handles via provenance
	}
	w := seg.Start.Sub(origin)
	t = (w.X*v.Y - w.Y*v.X) / denom
	s = (w.X*dir.Y - w.Y*dir.X) / denom
	return t, s, true
}

// RaySegmentIntersect intersects a ray (origin, dir) with seg and
// returns t in (0, +Inf) and s in [0, 1] on success. Collinear rays
// (dir parallel to seg) yield no intersection; the caller is expected
// to supply a provenance-based tie-break per spec.md §4.1.
func RaySegmentIntersect(origin, dir Point, seg Segment) (t, s float64, ok bool) {
	t, s, ok = segParamFromLineIntersection(origin, dir, seg)
	if !ok {
		return 0, 0, false
	}
	if t <= 0 || math.IsInf(t, 0) || math.IsNaN(t) {
		return 0, 0, false
	}
	if s < 0 || s > 1 {
		return 0, 0, false
	}
	return t, s, true
}

// RayLineIntersect intersects a ray (origin, dir) with the infinite
// supporting line of seg, ignoring segment bounds. Used by ImageChain
// to compute reflection points that may fall off-segment (spec.md §4.4).
func RayLineIntersect(origin, dir Point, seg Segment) (t, s float64, ok bool) {
	return segParamFromLineIntersection(origin, dir, seg)
}

// SignedCross computes (a.x-o.x)(b.y-o.y) - (a.y-o.y)(b.x-o.x).
func SignedCross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// ReflectDirection returns v reflected about unit normal n: v - 2(v.n)n.
func ReflectDirection(v, n Point) Point {
	d := v.Dot(n)
	return v.Sub(n.Scale(2 * d))
}

// OnSegmentTolerance classifies whether a point known to lie on seg's
// supporting line (parameter s) is within [0,1] using a documented
// absolute tolerance, for use only when no provenance is available
// (spec.md §4.1: "no epsilon thresholds are used for ordering").
func OnSegmentTolerance(s float64, seg Segment) bool {
	segLenSq := seg.LengthSq()
	if segLenSq == 0 {
		return false
	}
	// |cross| < 1e-8 * |seg|^2 translated into a parametric slack.
	const eps = 1e-8
	slack := eps
	return s >= -slack && s <= 1+slack
}
