package cone

import "github.com/lixenwraith/mirrorvis/source"

// PreComputedPairs records the correct CCW order for ambiguously
// collinear candidate pairs, keyed by provenance (spec.md §4.7(C)).
// These orderings override any cross-product comparison in the CCW
// sort comparator.
type PreComputedPairs struct {
	order map[pairKey]bool // true: first key precedes second key
}

type pairKey struct {
	a, b source.Key
}

// NewPreComputedPairs returns an empty pair-order table.
func NewPreComputedPairs() *PreComputedPairs {
	return &PreComputedPairs{order: make(map[pairKey]bool)}
}

// Set records that a precedes b in CCW order.
func (p *PreComputedPairs) Set(a, b source.Key) {
	p.order[pairKey{a, b}] = true
	p.order[pairKey{b, a}] = false
}

// Lookup reports whether a precedes b, and whether any entry exists
// for this pair at all.
func (p *PreComputedPairs) Lookup(a, b source.Key) (aBeforeB bool, found bool) {
	v, ok := p.order[pairKey{a, b}]
	return v, ok
}

// SetChain records a full CCW chain k0 -> k1 -> ... -> kn-1, i.e. every
// earlier key precedes every later key. Used for the four-point
// windowed-cone quadrilateral (spec.md §4.7(C)): rightOrigin ->
// rightHit -> leftHit -> leftOrigin.
func (p *PreComputedPairs) SetChain(keys ...source.Key) {
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			p.Set(keys[i], keys[j])
		}
	}
}
