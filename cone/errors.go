package cone

import "errors"

// ErrCollinearWithoutProvenance is returned when two distinct
// candidates end up with coincident (or sign-indeterminate) angular
// position and no PreComputedPairs entry resolves their order.
// Silently picking an order is forbidden (spec.md §4.7 Failure modes,
// §7, §9).
var ErrCollinearWithoutProvenance = errors.New("cone: collinear candidates without provenance")
