package constants

// DefaultMaxReflections is spec.md §6's documented default cap on how
// many times a traced ray may reflect before PathTracer reports
// StatusCap.
const DefaultMaxReflections = 10

// MaxPlannedSurfaces bounds how long a planned-surface list may be.
// Property-based generators (spec.md §8) exercise plans of length
// 0-4; this is the engine's own ceiling, set well above that to leave
// headroom without being unbounded.
const MaxPlannedSurfaces = 16

// MaxChainVertices bounds a single Chain's vertex count, protecting
// ConeProjection's O(vertices) candidate scan from an unbounded scene.
const MaxChainVertices = 4096
