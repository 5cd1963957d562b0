// Package source implements the SourcePoint algebra of spec.md §3/§4.2:
// tagged variants describing where a visibility-polygon vertex came
// from, each carrying a provenance Key that is the primary sort and
// equality token. Coordinates are never compared for identity; two
// SourcePoints are equivalent if and only if their keys are equal.
package source

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Key is a compact, structurally-hashed provenance identifier. It is
// computed only from a variant's identifying tuple, never from
// coordinates (spec.md §4.2). Two independently-constructed Keys built
// from the same tuple are guaranteed equal; two built from different
// tuples are equal only in the astronomically unlikely case of a
// 128-bit hash collision, which this package treats as "exact" per
// spec.md §9's guidance to prefer structural hashing over strings.
type Key struct {
	hi, lo uint64
	debug  string
}

// String returns the debug-boundary representation of the key (the
// composite identifier shapes named in spec.md §4.2, e.g. "ep:h1:s").
// Never used internally for equality or ordering.
func (k Key) String() string {
	return k.debug
}

// Equal reports whether two keys carry the same provenance.
func (k Key) Equal(other Key) bool {
	return k.hi == other.hi && k.lo == other.lo
}

// Less provides a total, arbitrary-but-deterministic order over keys,
// used only as a final, provenance-respecting tie-break (e.g. DESIGN.md's
// multi-window branch selection) — never for CCW ordering, which is
// governed by cone.PreComputedPairs and cross products.
func (k Key) Less(other Key) bool {
	if k.hi != other.hi {
		return k.hi < other.hi
	}
	return k.lo < other.lo
}

func newKey(format string, args ...any) Key {
	s := fmt.Sprintf(format, args...)
	h1 := xxhash.Sum64String(s)
	h2 := xxhash.Sum64String(s + "\x00salt")
	return Key{hi: h1, lo: h2, debug: s}
}

// EndpointKey identifies a vertex lying on a surface's own endpoint.
func EndpointKey(surfaceID string, end End) Key {
	return newKey("ep:%s:%s", surfaceID, end)
}

// JunctionKey identifies a vertex shared between two surfaces of a chain.
func JunctionKey(chainID string, vertexIndex int) Key {
	return newKey("junc:%s:%d", chainID, vertexIndex)
}

// HitKey identifies a ray stopped by an opaque or outer surface.
func HitKey(raySourceKey Key, hitSurfaceID string) Key {
	return newKey("hit:%s->%s", raySourceKey, hitSurfaceID)
}

// OriginKey identifies a window-boundary endpoint of a windowed cone.
func OriginKey(coneID string, boundary Boundary) Key {
	return newKey("orig:%s:%s", coneID, boundary)
}

// ArcIntersectionKey identifies where a surface's supporting line
// crosses the range-limit circle.
func ArcIntersectionKey(surfaceID, circleID string, root Root) Key {
	return newKey("arc:%s:%s:%s", surfaceID, circleID, root)
}

// ArcHitKey identifies the end of a boundary ray terminating on the
// range-limit arc.
func ArcHitKey(sourceEndpointKey Key, circleID string) Key {
	return newKey("arch:%s:%s", sourceEndpointKey, circleID)
}
