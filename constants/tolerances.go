// Package constants centralizes the tolerances and limits that would
// otherwise end up as ad-hoc numeric literals scattered across the
// geometry packages (Design Note, spec.md §9: "Implicit floating
// tolerances everywhere ... centralize all tolerances into one named
// configuration object"). Packages that need a tolerance import this
// one; the exceptions are geom.OnSegmentTolerance's 1e-8 parametric
// slack and ConeSection.ToSector's 1e-12 full-turn slack, which are
// local literals.
package constants

// ReflectionReversibilityTolerance is the bound spec.md §8's R1
// invariant demands: reflect(reflect(p, s), s) = p to within this
// many units.
const ReflectionReversibilityTolerance = 1e-10

// KeyStabilityTolerance is the bound spec.md §8's K1 invariant demands:
// two SourcePoints with equal Key() differ in xy() by at most this
// much per coordinate.
const KeyStabilityTolerance = 1e-6

// SameSupportingLineTolerance bounds how far a point may sit off a
// line and still be treated as lying on it, used by
// surface.SameSupportingLine's DegeneratePlan check.
const SameSupportingLineTolerance = 1e-9

// CoincidenceTolerance is how close two points must be to be treated
// as the same point where provenance can't settle it — the
// trajectory.Engine CursorCoincidesWithPlayer check (spec.md §6) and
// cascade's junction-coincidence exception (spec.md §4.8) both use it.
const CoincidenceTolerance = 1e-9

// DefaultCursorTolerance is spec.md §6's documented default: how close
// the ray must pass to the cursor, perpendicular distance, to count as
// having reached it.
const DefaultCursorTolerance = 2.0

// DefaultAlignmentTolerance is spec.md §6's documented default: how far
// a traced segment's endpoint may differ from the planned waypoint and
// still be considered matching (spec.md §4.10).
const DefaultAlignmentTolerance = 2.0
