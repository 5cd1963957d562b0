package surface

import "fmt"

// Scene is a query-local, read-only collection of Chains plus the
// index needed to resolve a Surface by id (spec.md §6: "Scene: an
// ordered list of Chains"). Scenes, Chains, and Surfaces are immutable
// once built and may be borrowed read-only across the query (spec.md
// §5, §3 invariant I4).
type Scene struct {
	Chains []*Chain

	byID map[string]surfaceRef
}

type surfaceRef struct {
	chain     *Chain
	edgeIndex int
}

// NewScene validates and indexes a list of chains. Returns
// ErrDegenerateSurface if any derived edge has zero length.
func NewScene(chains []*Chain) (*Scene, error) {
	s := &Scene{Chains: chains, byID: make(map[string]surfaceRef)}
	for _, c := range chains {
		for i, surf := range c.Surfaces() {
			if surf.Seg.Degenerate() {
				return nil, fmt.Errorf("%w: surface %q", ErrDegenerateSurface, surf.ID)
			}
			s.byID[surf.ID] = surfaceRef{chain: c, edgeIndex: i}
		}
	}
	return s, nil
}

// Surface looks up a surface by id across all chains in the scene.
func (s *Scene) Surface(id string) (Surface, bool) {
	ref, ok := s.byID[id]
	if !ok {
		return Surface{}, false
	}
	return ref.chain.Surfaces()[ref.edgeIndex], true
}

// ChainOf returns the chain owning the given surface id, and the edge
// index within that chain.
func (s *Scene) ChainOf(id string) (*Chain, int, bool) {
	ref, ok := s.byID[id]
	if !ok {
		return nil, 0, false
	}
	return ref.chain, ref.edgeIndex, true
}

// AllSurfaces returns every surface in the scene, in chain order.
func (s *Scene) AllSurfaces() []Surface {
	out := make([]Surface, 0, len(s.byID))
	for _, c := range s.Chains {
		out = append(out, c.Surfaces()...)
	}
	return out
}
