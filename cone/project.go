package cone

import (
	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/source"
	"github.com/lixenwraith/mirrorvis/surface"
)

// Project computes the ordered SourcePoint boundary of the cone
// (ConeProjection, spec.md §4.7, "the workhorse"):
//
//  (A) collect every Endpoint/JunctionPoint inside the sector, plus,
//      for a windowed cone, the two window OriginPoints;
//  (B) dedupe candidates by provenance key, never by coordinate;
//  (C) for every collected vertex, cast its continuation ray and
//      record the shadow-extension pair and (for a window) the
//      four-point quadrilateral chain and same-circle arc-intersection
//      angular chain in pairs, all consumed by the CCW sort;
//  (D)-(F) suppress the excluded surface throughout: its Endpoints
//      are not collected, and castContinuation's excludedID filter
//      drops hits on it;
//  (G) cap continuation rays at the range-limit circle and collect
//      ArcIntersection candidates where the circle crosses a surface
//      inside the sector.
//
// A nil window means a full (unwindowed) cone from the query origin.
func Project(sector RaySector, scene *surface.Scene, window *Window, cfg Config) ([]source.Point, error) {
	cs := newCandidateSet()

	refDir := sector.Right.Sub(sector.Origin)
	if sector.Full {
		refDir = geom.Point{X: 1, Y: 0}
	}

	for _, chain := range scene.Chains {
		for i := 0; i < len(chain.Vertices); i++ {
			v := chain.VertexAt(i)
			if ep, ok := v.(source.Endpoint); ok && ep.SurfaceID == cfg.ExcludedSurfaceID {
				continue
			}
			if !sector.DirContains(v.XY()) {
				continue
			}
			cs.add(v)
			own := ownSurfacesOf(chain, i)
			if hit, ok := castContinuation(sector.Origin, v.Key(), v.XY(), own, scene, cfg.ExcludedSurfaceID, cfg.RangeLimit); ok {
				cs.add(hit)
				cs.pairs.Set(v.Key(), hit.Key())
			}
		}
	}

	if window != nil {
		cs.add(window.Right)
		cs.add(window.Left)

		chainKeys := []source.Key{window.Right.Key()}

		if rightHit, ok := castContinuation(sector.Origin, window.Right.Key(), window.Right.XY(), window.RightOwnSurfaceIDs, scene, cfg.ExcludedSurfaceID, cfg.RangeLimit); ok {
			cs.add(rightHit)
			cs.pairs.Set(window.Right.Key(), rightHit.Key())
			chainKeys = append(chainKeys, rightHit.Key())
		}
		if leftHit, ok := castContinuation(sector.Origin, window.Left.Key(), window.Left.XY(), window.LeftOwnSurfaceIDs, scene, cfg.ExcludedSurfaceID, cfg.RangeLimit); ok {
			cs.add(leftHit)
			cs.pairs.Set(window.Left.Key(), leftHit.Key())
			chainKeys = append(chainKeys, leftHit.Key())
		}
		chainKeys = append(chainKeys, window.Left.Key())
		cs.pairs.SetChain(chainKeys...)
	}

	if cfg.RangeLimit != nil {
		arcs := arcIntersectionsInCone(sector, scene, cfg.ExcludedSurfaceID, cfg.RangeLimit)
		for _, a := range arcs {
			cs.add(a)
		}
		orderArcIntersectionsByCircleAngle(cs.pairs, cfg.RangeLimit.Center, arcs)
	}

	return SortCCW(sector.Origin, refDir, cs.order, cs.pairs, cfg.ProvenanceStrict)
}

// ownSurfacesOf names the surface(s) vertex i of chain already lies
// on, matching Chain.VertexAt's Endpoint/JunctionPoint split, so
// castContinuation doesn't immediately re-hit the vertex's own surface.
func ownSurfacesOf(chain *surface.Chain, i int) []string {
	if prev, next, ok := chain.JunctionAdjacentSurfaceIDs(i); ok {
		return []string{prev, next}
	}
	n := len(chain.Vertices)
	if i == 0 {
		return []string{chain.SurfaceID(0)}
	}
	if i == n-1 {
		return []string{chain.SurfaceID(n - 2)}
	}
	return nil
}
