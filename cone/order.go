package cone

import (
	"sort"

	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/source"
)

// comparator orders SourcePoints CCW around an origin using only
// signed cross products (spec.md §4.7(D)): PreComputedPairs first,
// cross product second, distance third. half splits the plane at a
// reference direction so a total order can be built without atan2.
type comparator struct {
	origin  geom.Point
	refDir  geom.Point
	pairs   *PreComputedPairs
	ambErrA source.Key
	ambErrB source.Key
	ambErr  bool
}

func newComparator(origin, refDir geom.Point, pairs *PreComputedPairs) *comparator {
	return &comparator{origin: origin, refDir: refDir, pairs: pairs}
}

// half returns 0 if v lies in the closed CCW half-turn starting at
// refDir (cross(refDir, v) > 0, or collinear with positive dot), 1 otherwise.
func half(refDir, v geom.Point) int {
	c := cross(refDir, v)
	if c > 0 {
		return 0
	}
	if c < 0 {
		return 1
	}
	if refDir.Dot(v) >= 0 {
		return 0
	}
	return 1
}

// less reports whether a comes before b in CCW order starting at refDir.
// Returns ok=false (and records the ambiguity) only when no
// PreComputedPairs entry exists and the cross product is exactly zero
// with neither point strictly nearer (i.e. truly indeterminate).
func (c *comparator) less(a, b source.Point) (res bool, ok bool) {
	if before, found := c.pairs.Lookup(a.Key(), b.Key()); found {
		return before, true
	}
	if before, found := c.pairs.Lookup(b.Key(), a.Key()); found {
		return !before, true
	}

	da := a.XY().Sub(c.origin)
	db := b.XY().Sub(c.origin)
	ha, hb := half(c.refDir, da), half(c.refDir, db)
	if ha != hb {
		return ha < hb, true
	}
	cr := cross(da, db)
	if cr > 0 {
		return true, true
	}
	if cr < 0 {
		return false, true
	}
	// Exact zero cross with no precomputed entry: tie-break by
	// distance, closer first (spec.md §4.7(D)(3)).
	la, lb := da.Len(), db.Len()
	if la != lb {
		return la < lb, true
	}
	c.ambErrA, c.ambErrB, c.ambErr = a.Key(), b.Key(), true
	return false, false
}

// SortCCW sorts candidates in CCW order around origin starting at
// refDir, consulting pairs for ambiguous pairs. The distance
// tie-break applies in both modes; strict controls what happens to a
// pair it cannot order either (zero cross product, equal distance, no
// pairs entry): a hard error in provenance-strict mode (default on per
// spec.md §6), or the pair keeps its input order in non-strict mode (a
// documented SPEC_FULL.md supplement).
func SortCCW(origin, refDir geom.Point, candidates []source.Point, pairs *PreComputedPairs, strict bool) ([]source.Point, error) {
	out := append([]source.Point(nil), candidates...)
	c := newComparator(origin, refDir, pairs)
	var failure error

	sort.SliceStable(out, func(i, j int) bool {
		if failure != nil && strict {
			return false
		}
		res, ok := c.less(out[i], out[j])
		if !ok {
			if strict && failure == nil {
				failure = ErrCollinearWithoutProvenance
			}
			// Non-strict fallback already applied inside less() via
			// the distance tie-break before reporting !ok only on a
			// true zero-distance tie; treat as stable (no-op) order.
			return false
		}
		return res
	})
	if strict && failure != nil {
		return nil, failure
	}
	return out, nil
}
