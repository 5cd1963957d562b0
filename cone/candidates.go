package cone

import (
	"math"
	"sort"

	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/source"
	"github.com/lixenwraith/mirrorvis/surface"
)

// RangeLimit is the optional circle that truncates a cone projection
// (spec.md §4.7(G), §6).
type RangeLimit struct {
	Center   geom.Point
	Radius   float64
	CircleID string
}

// Window is the pair of boundary SourcePoints for a windowed cone,
// supplied by the cascade so ConeProjection does not recompute them
// (spec.md §4.7). RightOwnSurfaceIDs/LeftOwnSurfaceIDs name the
// surface(s) each boundary already lies on, if any, so its
// continuation ray doesn't immediately re-hit its own origin surface.
type Window struct {
	Right, Left                           source.Point
	RightOwnSurfaceIDs, LeftOwnSurfaceIDs []string
}

// Config bundles ConeProjection's optional parameters.
type Config struct {
	ConeID            string
	ExcludedSurfaceID string
	RangeLimit        *RangeLimit
	ProvenanceStrict  bool
}

type candidateSet struct {
	order []source.Point
	seen  map[source.Key]bool
	pairs *PreComputedPairs
}

func newCandidateSet() *candidateSet {
	return &candidateSet{seen: make(map[source.Key]bool), pairs: NewPreComputedPairs()}
}

// add inserts v if its key hasn't been seen (provenance-keyed dedupe,
// spec.md §4.7(B): "Do NOT merge by coordinate proximity").
func (cs *candidateSet) add(v source.Point) {
	k := v.Key()
	if cs.seen[k] {
		return
	}
	cs.seen[k] = true
	cs.order = append(cs.order, v)
}

// castContinuation casts the continuation ray from origin through
// "through" (spec.md §4.7(A)/(E)): the ray's first forward hit on any
// non-excluded, non-own surface, or a range-limit ArcHitPoint if the
// ray would exit the circle first, or (nil,false) if the ray escapes
// to infinity with no range limit.
func castContinuation(origin geom.Point, sourceKey source.Key, through geom.Point, ownSurfaceIDs []string, scene *surface.Scene, excludedID string, rl *RangeLimit) (source.Point, bool) {
	dir := through.Sub(origin)
	if dir.Len() == 0 {
		return nil, false
	}

	bestT := math.Inf(1)
	var bestSurf surface.Surface
	var bestS float64
	found := false

	for _, surf := range scene.AllSurfaces() {
		if surf.ID == excludedID || containsID(ownSurfaceIDs, surf.ID) {
			continue
		}
		t, s, ok := geom.RaySegmentIntersect(origin, dir, surf.Seg)
		if ok && t < bestT {
			bestT, bestSurf, bestS, found = t, surf, s, true
		}
	}

	if rl != nil {
		if tCircle, ok := rayCircleExitParam(origin, dir, rl.Center, rl.Radius); ok {
			if !found || tCircle < bestT {
				arcPt := origin.Add(dir.Scale(tCircle))
				return source.NewArcHitPoint(sourceKey, rl.CircleID, arcPt), true
			}
		}
	}

	if !found {
		return nil, false
	}
	hitPt := bestSurf.Seg.Start.Add(bestSurf.Seg.Vector().Scale(bestS))
	return source.NewHitPoint(sourceKey, bestSurf.ID, bestS, hitPt), true
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// rayCircleExitParam returns the largest positive t at which ray
// (origin, dir) crosses the circle (center, radius). This handles the
// common case of origin lying inside the range-limit disk (the only
// forward root is the exit point); a ray that never reaches the
// circle returns ok=false.
func rayCircleExitParam(origin, dir, center geom.Point, radius float64) (t float64, ok bool) {
	oc := origin.Sub(center)
	a := dir.Dot(dir)
	if a == 0 {
		return 0, false
	}
	b := 2 * oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	best := math.Inf(-1)
	found := false
	for _, cand := range []float64{t1, t2} {
		if cand > 0 && cand > best {
			best, found = cand, true
		}
	}
	return best, found
}

// lineCircleParams returns the (up to two) parameters t along seg's
// own direction (Start + t*(End-Start)) where the supporting line
// crosses the circle, sorted ascending.
func lineCircleParams(seg geom.Segment, center geom.Point, radius float64) []float64 {
	d := seg.Vector()
	oc := seg.Start.Sub(center)
	a := d.Dot(d)
	if a == 0 {
		return nil
	}
	b := 2 * oc.Dot(d)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return []float64{t1, t2}
}

// arcIntersectionsInCone collects ArcIntersection candidates: every
// surface-line/circle crossing that falls within the surface's
// segment bounds and inside the sector (spec.md §4.7(A)/(G)).
func arcIntersectionsInCone(sector RaySector, scene *surface.Scene, excludedID string, rl *RangeLimit) []source.ArcIntersection {
	if rl == nil {
		return nil
	}
	var out []source.ArcIntersection
	for _, surf := range scene.AllSurfaces() {
		if surf.ID == excludedID {
			continue
		}
		params := lineCircleParams(surf.Seg, rl.Center, rl.Radius)
		for i, s := range params {
			if s < 0 || s > 1 {
				continue
			}
			p := surf.Seg.Start.Add(surf.Seg.Vector().Scale(s))
			if !sector.DirContains(p) {
				continue
			}
			root := source.Near
			if i == 1 {
				root = source.Far
			}
			out = append(out, source.NewArcIntersection(surf.ID, rl.CircleID, root, p))
		}
	}
	return out
}

// orderArcIntersectionsByCircleAngle records the CCW order of same-
// circle ArcIntersections by their signed angle from an arbitrary
// fixed reference direction, per spec.md §4.7(C).
func orderArcIntersectionsByCircleAngle(pairs *PreComputedPairs, center geom.Point, arcs []source.ArcIntersection) {
	if len(arcs) < 2 {
		return
	}
	type entry struct {
		k     source.Key
		angle float64
	}
	entries := make([]entry, len(arcs))
	ref := geom.Point{X: 1, Y: 0}
	for i, a := range arcs {
		v := a.XY().Sub(center)
		ang := math.Atan2(cross(ref, v), ref.Dot(v))
		if ang < 0 {
			ang += 2 * math.Pi
		}
		entries[i] = entry{a.Key(), ang}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].angle < entries[j].angle })
	keys := make([]source.Key, len(entries))
	for i, e := range entries {
		keys[i] = e.k
	}
	pairs.SetChain(keys...)
}
