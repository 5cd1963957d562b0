// Package surface implements the Surface & Chain model of spec.md §3/§4.3:
// immutable line-segment surfaces classified reflective or not, grouped
// into ordered Chains so that shared vertices (junctions) are first-class
// SourcePoints rather than coordinates that happen to coincide.
package surface

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/mirrorvis/constants"
	"github.com/lixenwraith/mirrorvis/geom"
)

// Reflectivity classifies a surface as a mirror (ricochet) or a wall.
// Design Note (spec.md §9): handled as a tagged variant with
// match-style dispatch over the two capabilities OnArrowHit and
// IsPlannable, rather than interface-based polymorphism.
type Reflectivity uint8

const (
	Wall Reflectivity = iota
	Mirror
)

func (r Reflectivity) String() string {
	if r == Mirror {
		return "mirror"
	}
	return "wall"
}

// Surface is an immutable tuple: stable id, segment, reflectivity, and
// derived normal. Never mutated after construction.
type Surface struct {
	ID           string
	Seg          geom.Segment
	Reflectivity Reflectivity
}

// New constructs a Surface. Returns ErrDegenerateSurface if seg has
// zero length (spec.md §7: "geometric preconditions violated").
func New(id string, seg geom.Segment, reflectivity Reflectivity) (Surface, error) {
	if seg.Degenerate() {
		return Surface{}, fmt.Errorf("%w: surface %q", ErrDegenerateSurface, id)
	}
	return Surface{ID: id, Seg: seg, Reflectivity: reflectivity}, nil
}

// ErrDegenerateSurface is returned when a surface's segment has zero length.
var ErrDegenerateSurface = errors.New("surface: degenerate segment")

// ErrEmptyChain is returned when a chain has fewer than two vertices.
var ErrEmptyChain = errors.New("surface: chain needs at least two vertices")

// ErrTooManyVertices is returned when a chain's vertex count exceeds
// constants.MaxChainVertices.
var ErrTooManyVertices = errors.New("surface: chain has too many vertices")

// ErrEdgeReflectivityMismatch is returned when a chain's per-edge
// reflectivity slice length doesn't match its edge count.
var ErrEdgeReflectivityMismatch = errors.New("surface: edge reflectivity count mismatch")

// Normal returns the surface's fixed-convention normal (rotate
// End-Start by +90 degrees; spec.md §3).
func (s Surface) Normal() geom.Point {
	return s.Seg.Normal()
}

// IsPlannable reports whether a projectile may be planned to bounce
// off this surface (only mirrors).
func (s Surface) IsPlannable() bool {
	return s.Reflectivity == Mirror
}

// Side returns a signed value: positive when p is on the reflective
// (normal) side of the surface's supporting line, negative on the
// non-reflective side, zero exactly on the line.
func (s Surface) Side(p geom.Point) float64 {
	n := s.Normal()
	return p.Sub(s.Seg.Start).Dot(n)
}

// OnReflectiveSide reports whether p is strictly on the reflective side.
func (s Surface) OnReflectiveSide(p geom.Point) bool {
	return s.Side(p) > 0
}

// OnArrowHit returns the outgoing direction when a ray with incoming
// direction dir strikes this surface, and whether a reflection
// actually occurred (false for a wall, which absorbs the ray).
func (s Surface) OnArrowHit(dir geom.Point) (outgoing geom.Point, reflected bool) {
	switch s.Reflectivity {
	case Mirror:
		return geom.ReflectDirection(dir, s.Normal()), true
	default:
		return dir, false
	}
}

// SameSupportingLine reports whether two surfaces' supporting lines
// are the same line (used by the DegeneratePlan precondition: "two
// consecutive surfaces share a supporting line with matching
// orientation", spec.md §6).
func SameSupportingLine(a, b Surface) bool {
	// Collinearity: b's endpoints both lie on a's line.
	cross1 := geom.SignedCross(a.Seg.Start, a.Seg.End, b.Seg.Start)
	cross2 := geom.SignedCross(a.Seg.Start, a.Seg.End, b.Seg.End)
	const eps = constants.SameSupportingLineTolerance
	denom := a.Seg.Length() * a.Seg.Length()
	if denom == 0 {
		return false
	}
	return abs(cross1) < eps*denom && abs(cross2) < eps*denom
}

// MatchingOrientation reports whether a and b point the same way
// along their (shared) supporting line.
func MatchingOrientation(a, b Surface) bool {
	av := a.Seg.Vector()
	bv := b.Seg.Vector()
	return av.Dot(bv) > 0
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
