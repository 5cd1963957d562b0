// Package cone implements the angular-region algebra of spec.md §4.6
// (RaySector, the preferred model; ConeSection, the interval-based
// alternative) and the ConeProjection workhorse of spec.md §4.7.
package cone

import "github.com/lixenwraith/mirrorvis/geom"

// RaySector is a cone {origin, leftBoundary, rightBoundary} where the
// visible wedge sweeps from Right to Left in CCW order (spec.md §4.6).
// Predicates use only signed cross products, never atan2. Full
// distinguishes a 360-degree cone from a narrow one, never by angle
// equality.
type RaySector struct {
	Origin Point
	Left   Point
	Right  Point
	Full   bool
}

// Point is a lightweight alias avoiding an import cycle with geom in
// doc comments; RaySector's boundaries are stored as points (not bare
// directions) because Reflect must carry them through a line
// reflection, which is only defined on points.
type Point = geom.Point

// DirContains reports whether the ray from Origin through p falls
// within the sector. Only valid for sectors with angular width < pi;
// cascade windows and reflected cones always satisfy this in practice
// (a window is the finite span of a line segment as seen from a
// point, which subtends less than a half-turn).
func (s RaySector) DirContains(p geom.Point) bool {
	if s.Full {
		return true
	}
	dr := s.Right.Sub(s.Origin)
	dl := s.Left.Sub(s.Origin)
	dp := p.Sub(s.Origin)
	return cross(dr, dp) >= 0 && cross(dp, dl) >= 0
}

func cross(a, b geom.Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Reflect reflects the sector's origin and both boundary points
// through line l. Left and Right swap because reflection reverses
// orientation (spec.md §4.6).
func (s RaySector) Reflect(l geom.Line) RaySector {
	return RaySector{
		Origin: geom.ReflectPointThroughLine(s.Origin, l),
		Left:   geom.ReflectPointThroughLine(s.Right, l),
		Right:  geom.ReflectPointThroughLine(s.Left, l),
		Full:   s.Full,
	}
}

// Full360 returns the unbounded, full-plane sector at origin.
func Full360(origin geom.Point) RaySector {
	return RaySector{Origin: origin, Full: true}
}

// Windowed returns a sector bounded by the two given boundary points,
// in CCW right-to-left order.
func Windowed(origin, right, left geom.Point) RaySector {
	return RaySector{Origin: origin, Left: left, Right: right}
}

// Trim restricts the sector to the wedge subtended by segment seg as
// seen from the origin (the narrower of the sector and the segment's
// own angular span).
func (s RaySector) Trim(seg geom.Segment) RaySector {
	segRight, segLeft := seg.Start, seg.End
	if cross(segRight.Sub(s.Origin), segLeft.Sub(s.Origin)) < 0 {
		segRight, segLeft = segLeft, segRight
	}
	out := s
	if s.Full || cross(segRight.Sub(s.Origin), s.Right.Sub(s.Origin)) < 0 {
		out.Right = segRight
	}
	if s.Full || cross(s.Left.Sub(s.Origin), segLeft.Sub(s.Origin)) < 0 {
		out.Left = segLeft
	}
	out.Full = false
	return out
}

// Block removes the wedge occluded by seg from the sector, returning
// the surviving sub-sectors (zero, one, or two). Implemented via the
// ConeSection (angular-interval) representation since a single
// RaySector cannot itself represent a disjoint union — this is the
// documented point of contact between the two interchangeable models
// (spec.md §9 Open Questions).
func (s RaySector) Block(seg geom.Segment) []RaySector {
	blocked := FromSector(s).Block(seg)
	out := make([]RaySector, 0, len(blocked.Intervals))
	for _, iv := range blocked.Intervals {
		sub := ConeSection{Origin: s.Origin, Intervals: []Interval{iv}}
		if sec, ok := sub.ToSector(); ok {
			out = append(out, sec)
		}
	}
	return out
}

// Intersect returns the overlap of two sectors sharing the same
// origin, or (zero, false) if they don't overlap.
func (s RaySector) Intersect(o RaySector) (RaySector, bool) {
	if s.Full {
		return o, true
	}
	if o.Full {
		return s, true
	}
	right := s.Right
	if cross(o.Right.Sub(s.Origin), right.Sub(s.Origin)) < 0 {
		right = o.Right
	}
	left := s.Left
	if cross(left.Sub(s.Origin), o.Left.Sub(s.Origin)) < 0 {
		left = o.Left
	}
	if cross(right.Sub(s.Origin), left.Sub(s.Origin)) < 0 {
		return RaySector{}, false
	}
	return RaySector{Origin: s.Origin, Right: right, Left: left}, true
}
