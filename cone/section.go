package cone

import (
	"math"
	"sort"

	"github.com/lixenwraith/mirrorvis/geom"
)

// Interval is an angular span [Lo, Hi] in radians, Lo <= Hi, possibly
// exceeding 2*pi in Hi to represent a span that wraps past 0 without
// a separate wraparound case.
type Interval struct {
	Lo, Hi float64
}

// ConeSection is a disjoint union of angular intervals in normalized
// [0, 2*pi), the alternative representation of spec.md §4.6: "used
// where polygonal splitting and merging by angle is natural." Unlike
// RaySector it freely uses atan2, since its whole purpose is
// angle-interval arithmetic.
type ConeSection struct {
	Origin    geom.Point
	Intervals []Interval // normalized, sorted, non-overlapping
}

func angleOf(origin, p geom.Point) float64 {
	v := p.Sub(origin)
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// FullSection returns the unbounded 360-degree section at origin.
func FullSection(origin geom.Point) ConeSection {
	return ConeSection{Origin: origin, Intervals: []Interval{{0, 2 * math.Pi}}}
}

// FromSector converts a RaySector to its ConeSection representation.
// A full sector maps to the full 2*pi interval; a windowed sector maps
// to the CCW span from Right to Left, splitting at 2*pi if it wraps.
func FromSector(s RaySector) ConeSection {
	if s.Full {
		return FullSection(s.Origin)
	}
	lo := angleOf(s.Origin, s.Right)
	hi := angleOf(s.Origin, s.Left)
	if hi < lo {
		hi += 2 * math.Pi
	}
	return ConeSection{Origin: s.Origin, Intervals: normalize([]Interval{{lo, hi}})}
}

// ToSector converts a single-interval ConeSection back to a RaySector,
// picking boundary points at unit distance along the interval's
// endpoints. ok is false for a section with more than one interval
// (no single RaySector can represent a disjoint union).
func (c ConeSection) ToSector() (RaySector, bool) {
	if len(c.Intervals) != 1 {
		return RaySector{}, false
	}
	iv := c.Intervals[0]
	if iv.Hi-iv.Lo >= 2*math.Pi-1e-12 {
		return Full360(c.Origin), true
	}
	right := c.Origin.Add(geom.Point{X: math.Cos(iv.Lo), Y: math.Sin(iv.Lo)})
	left := c.Origin.Add(geom.Point{X: math.Cos(iv.Hi), Y: math.Sin(iv.Hi)})
	return Windowed(c.Origin, right, left), true
}

func normalize(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return ivs
	}
	sort.Slice(ivs, func(i, j int) bool { return ivs[i].Lo < ivs[j].Lo })
	out := ivs[:1]
	for _, iv := range ivs[1:] {
		last := &out[len(out)-1]
		if iv.Lo <= last.Hi {
			if iv.Hi > last.Hi {
				last.Hi = iv.Hi
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Intersect returns the set intersection of two sections at the same origin.
func (c ConeSection) Intersect(o ConeSection) ConeSection {
	var out []Interval
	for _, a := range c.Intervals {
		for _, b := range o.Intervals {
			lo := math.Max(a.Lo, b.Lo)
			hi := math.Min(a.Hi, b.Hi)
			if lo < hi {
				out = append(out, Interval{lo, hi})
			}
		}
	}
	return ConeSection{Origin: c.Origin, Intervals: normalize(out)}
}

// angleSpanOf returns the angular interval subtended by seg as seen
// from origin, with Lo/Hi chosen so Hi >= Lo (splitting at 2*pi if the
// segment's CCW span wraps).
func angleSpanOf(origin geom.Point, seg geom.Segment) Interval {
	a := angleOf(origin, seg.Start)
	b := angleOf(origin, seg.End)
	lo, hi := a, b
	if cross(seg.Start.Sub(origin), seg.End.Sub(origin)) < 0 {
		lo, hi = b, a
	}
	if hi < lo {
		hi += 2 * math.Pi
	}
	return Interval{lo, hi}
}

// Trim restricts the section to the wedge subtended by seg.
func (c ConeSection) Trim(seg geom.Segment) ConeSection {
	span := angleSpanOf(c.Origin, seg)
	out := c.Intersect(ConeSection{Origin: c.Origin, Intervals: []Interval{span, {span.Lo - 2 * math.Pi, span.Hi - 2 * math.Pi}}})
	// A span that wraps past 0 comes back as [0, x] and [y, 2*pi]; rejoin
	// the two pieces as the single wrapped interval [y, 2*pi+x].
	if n := len(out.Intervals); n >= 2 && out.Intervals[0].Lo == 0 && out.Intervals[n-1].Hi == 2*math.Pi {
		first, last := out.Intervals[0], out.Intervals[n-1]
		out.Intervals = append(out.Intervals[1:n-1:n-1], Interval{last.Lo, first.Hi + 2*math.Pi})
	}
	return out
}

// Block removes the wedge subtended by seg from the section, leaving
// zero, one, or two remaining intervals per surviving piece.
func (c ConeSection) Block(seg geom.Segment) ConeSection {
	span := angleSpanOf(c.Origin, seg)
	out := c.Intervals
	// Intervals and the span may both run past 2*pi, so the span is
	// removed at every 2*pi shift that can overlap a section interval.
	for _, shift := range []float64{-2 * math.Pi, 0, 2 * math.Pi} {
		bLo, bHi := span.Lo+shift, span.Hi+shift
		var next []Interval
		for _, a := range out {
			lo, hi := math.Max(a.Lo, bLo), math.Min(a.Hi, bHi)
			if lo >= hi {
				next = append(next, a)
				continue
			}
			if a.Lo < lo {
				next = append(next, Interval{a.Lo, lo})
			}
			if hi < a.Hi {
				next = append(next, Interval{hi, a.Hi})
			}
		}
		out = next
	}
	return ConeSection{Origin: c.Origin, Intervals: normalize(out)}
}

// Coverage returns the total angular measure covered by the section.
func (c ConeSection) Coverage() float64 {
	var total float64
	for _, iv := range c.Intervals {
		total += iv.Hi - iv.Lo
	}
	return total
}

// Reflect reflects the section's origin through l and re-derives
// angular intervals from the reflected boundary directions. Since
// reflection reverses orientation, each interval's sense flips; this
// is implemented by reflecting the interval endpoints as unit-distance
// points and re-deriving Lo/Hi from their reflected angles.
func (c ConeSection) Reflect(l geom.Line) ConeSection {
	newOrigin := geom.ReflectPointThroughLine(c.Origin, l)
	var out []Interval
	for _, iv := range c.Intervals {
		p0 := c.Origin.Add(geom.Point{X: math.Cos(iv.Lo), Y: math.Sin(iv.Lo)})
		p1 := c.Origin.Add(geom.Point{X: math.Cos(iv.Hi), Y: math.Sin(iv.Hi)})
		r0 := geom.ReflectPointThroughLine(p0, l)
		r1 := geom.ReflectPointThroughLine(p1, l)
		a0 := angleOf(newOrigin, r0)
		a1 := angleOf(newOrigin, r1)
		// orientation reversed: the reflected image of Lo becomes the
		// new Hi bound and vice versa.
		lo, hi := a1, a0
		if hi < lo {
			hi += 2 * math.Pi
		}
		out = append(out, Interval{lo, hi})
	}
	return ConeSection{Origin: newOrigin, Intervals: normalize(out)}
}
