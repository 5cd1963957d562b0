package source

import "github.com/lixenwraith/mirrorvis/geom"

// End distinguishes which end of a surface an Endpoint refers to.
type End uint8

const (
	Start End = iota
	EndEnd
)

func (e End) String() string {
	if e == Start {
		return "s"
	}
	return "e"
}

// Boundary distinguishes the left/right boundary of a windowed cone.
type Boundary uint8

const (
	Left Boundary = iota
	Right
)

func (b Boundary) String() string {
	if b == Left {
		return "l"
	}
	return "r"
}

// Root distinguishes the near/far root of a line-circle intersection.
type Root uint8

const (
	Near Root = iota
	Far
)

func (r Root) String() string {
	if r == Near {
		return "near"
	}
	return "far"
}

// Point is the common interface satisfied by every SourcePoint variant
// (spec.md §3 invariant I1): xy() is computed on demand (and may be
// cached internally by the variant), key() is provenance-only.
type Point interface {
	XY() geom.Point
	Key() Key
}

// Endpoint is a vertex lying on a surface's own endpoint.
type Endpoint struct {
	SurfaceID string
	Which     End
	xy        geom.Point
}

// NewEndpoint constructs an Endpoint whose coordinate is resolved once
// by the caller (the surface/chain model, which owns the geometry).
func NewEndpoint(surfaceID string, which End, xy geom.Point) Endpoint {
	return Endpoint{SurfaceID: surfaceID, Which: which, xy: xy}
}

func (e Endpoint) XY() geom.Point { return e.xy }
func (e Endpoint) Key() Key       { return EndpointKey(e.SurfaceID, e.Which) }

// JunctionPoint is a vertex shared between two surfaces of a closed or
// open chain.
type JunctionPoint struct {
	ChainID     string
	VertexIndex int
	xy          geom.Point
}

func NewJunctionPoint(chainID string, vertexIndex int, xy geom.Point) JunctionPoint {
	return JunctionPoint{ChainID: chainID, VertexIndex: vertexIndex, xy: xy}
}

func (j JunctionPoint) XY() geom.Point { return j.xy }
func (j JunctionPoint) Key() Key       { return JunctionKey(j.ChainID, j.VertexIndex) }

// HitPoint is where a ray from RaySource stopped on HitSurfaceID, at
// parameter S in (0,1) along the hit surface.
type HitPoint struct {
	RaySourceKey Key
	HitSurfaceID string
	S            float64
	xy           geom.Point
}

func NewHitPoint(raySource Key, hitSurfaceID string, s float64, xy geom.Point) HitPoint {
	return HitPoint{RaySourceKey: raySource, HitSurfaceID: hitSurfaceID, S: s, xy: xy}
}

func (h HitPoint) XY() geom.Point { return h.xy }
func (h HitPoint) Key() Key       { return HitKey(h.RaySourceKey, h.HitSurfaceID) }

// OriginPoint is a window-boundary endpoint of a windowed cone.
type OriginPoint struct {
	ConeID   string
	Boundary Boundary
	xy       geom.Point
}

func NewOriginPoint(coneID string, boundary Boundary, xy geom.Point) OriginPoint {
	return OriginPoint{ConeID: coneID, Boundary: boundary, xy: xy}
}

func (o OriginPoint) XY() geom.Point { return o.xy }
func (o OriginPoint) Key() Key       { return OriginKey(o.ConeID, o.Boundary) }

// ArcIntersection is where a surface's supporting line crosses the
// range-limit circle, constrained to the segment and the cone.
type ArcIntersection struct {
	SurfaceID string
	CircleID  string
	Which     Root
	xy        geom.Point
}

func NewArcIntersection(surfaceID, circleID string, which Root, xy geom.Point) ArcIntersection {
	return ArcIntersection{SurfaceID: surfaceID, CircleID: circleID, Which: which, xy: xy}
}

func (a ArcIntersection) XY() geom.Point { return a.xy }
func (a ArcIntersection) Key() Key       { return ArcIntersectionKey(a.SurfaceID, a.CircleID, a.Which) }

// ArcHitPoint is the end of a boundary ray that terminates on the
// range-limit arc rather than on any surface.
type ArcHitPoint struct {
	SourceEndpointKey Key
	CircleID          string
	xy                geom.Point
}

func NewArcHitPoint(sourceEndpointKey Key, circleID string, xy geom.Point) ArcHitPoint {
	return ArcHitPoint{SourceEndpointKey: sourceEndpointKey, CircleID: circleID, xy: xy}
}

func (a ArcHitPoint) XY() geom.Point { return a.xy }
func (a ArcHitPoint) Key() Key       { return ArcHitKey(a.SourceEndpointKey, a.CircleID) }

// Equivalent reports whether two SourcePoints share the same
// provenance (spec.md §4.2: "equal if and only if key() is equal").
func Equivalent(a, b Point) bool {
	return a.Key().Equal(b.Key())
}
