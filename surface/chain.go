package surface

import (
	"fmt"

	"github.com/lixenwraith/mirrorvis/constants"
	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/source"
)

// Chain is an ordered list of vertices (>=2), open or closed, plus a
// parallel list of per-edge reflectivity flags. One Surface is derived
// per adjacent vertex pair; closed chains wrap the last-to-first edge.
// Chains are the primary container so junctions (shared vertices
// between two edges) can be handled as first-class SourcePoints
// (spec.md §3, §4.3).
type Chain struct {
	ID               string
	Vertices         []geom.Point
	EdgeReflectivity []Reflectivity
	Closed           bool

	surfaces []Surface // lazily built, cached
}

// NewChain validates and constructs a Chain. Surfaces are built lazily
// on first call to Surfaces() (spec.md §4.3: "Chains construct
// Surfaces lazily").
func NewChain(id string, vertices []geom.Point, edgeReflectivity []Reflectivity, closed bool) (*Chain, error) {
	if len(vertices) < 2 {
		return nil, ErrEmptyChain
	}
	if len(vertices) > constants.MaxChainVertices {
		return nil, fmt.Errorf("%w: chain %q has %d vertices, max is %d",
			ErrTooManyVertices, id, len(vertices), constants.MaxChainVertices)
	}
	edges := len(vertices) - 1
	if closed {
		edges = len(vertices)
	}
	if len(edgeReflectivity) != edges {
		return nil, fmt.Errorf("%w: chain %q has %d edges, got %d reflectivity flags",
			ErrEdgeReflectivityMismatch, id, edges, len(edgeReflectivity))
	}
	return &Chain{ID: id, Vertices: append([]geom.Point(nil), vertices...),
		EdgeReflectivity: append([]Reflectivity(nil), edgeReflectivity...), Closed: closed}, nil
}

// EdgeCount returns the number of surfaces this chain derives.
func (c *Chain) EdgeCount() int {
	if c.Closed {
		return len(c.Vertices)
	}
	return len(c.Vertices) - 1
}

// SurfaceID returns the stable id of the edge at index i.
func (c *Chain) SurfaceID(edgeIndex int) string {
	return fmt.Sprintf("%s#%d", c.ID, edgeIndex)
}

// Surfaces returns (and caches) the Surfaces derived from this chain's
// vertices and per-edge reflectivity.
func (c *Chain) Surfaces() []Surface {
	if c.surfaces != nil {
		return c.surfaces
	}
	n := len(c.Vertices)
	edges := c.EdgeCount()
	out := make([]Surface, edges)
	for i := 0; i < edges; i++ {
		j := (i + 1) % n
		// construction already validated non-degenerate vertices at
		// the scene level; zero-length edges surface as an error there.
		out[i] = Surface{ID: c.SurfaceID(i), Seg: geom.Segment{Start: c.Vertices[i], End: c.Vertices[j]}, Reflectivity: c.EdgeReflectivity[i]}
	}
	c.surfaces = out
	return out
}

// VertexAt returns the SourcePoint for vertex i: an Endpoint if the
// vertex touches only one surface (the two ends of an open chain), a
// JunctionPoint otherwise.
func (c *Chain) VertexAt(i int) source.Point {
	n := len(c.Vertices)
	xy := c.Vertices[i]
	if !c.Closed {
		if i == 0 {
			return source.NewEndpoint(c.SurfaceID(0), source.Start, xy)
		}
		if i == n-1 {
			return source.NewEndpoint(c.SurfaceID(n-2), source.EndEnd, xy)
		}
	}
	return source.NewJunctionPoint(c.ID, i, xy)
}

// JunctionAdjacentSurfaceIDs returns the ids of the two surfaces
// meeting at vertex i, if i is a junction. ok is false for the
// non-junction endpoints of an open chain.
func (c *Chain) JunctionAdjacentSurfaceIDs(i int) (prevID, nextID string, ok bool) {
	n := len(c.Vertices)
	if c.Closed {
		prev := (i - 1 + n) % n
		return c.SurfaceID(prev), c.SurfaceID(i % n), true
	}
	if i <= 0 || i >= n-1 {
		return "", "", false
	}
	return c.SurfaceID(i - 1), c.SurfaceID(i), true
}

// VertexIndexForEdgeStart returns the vertex index at the start of
// edge e (i.e. e itself); VertexIndexForEdgeEnd returns (e+1)%n.
func (c *Chain) VertexIndexForEdgeStart(e int) int { return e }
func (c *Chain) VertexIndexForEdgeEnd(e int) int   { return (e + 1) % len(c.Vertices) }
