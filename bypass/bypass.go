// Package bypass implements the BypassEvaluator / ValidityChecker of
// spec.md §4.5: decides which planned surfaces must be removed from
// the active plan because the player or cursor lies on their
// non-reflective side, or because the reflection-chain validity rule
// fails. Ambiguities are always resolved in favor of bypass.
package bypass

import (
	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/reflectcache"
	"github.com/lixenwraith/mirrorvis/surface"
)

// Reason tags why a planned surface was removed from the active plan.
type Reason string

const (
	ReasonPlayerSide      Reason = "player_side"
	ReasonCursorSide      Reason = "cursor_side"
	ReasonReflectionChain Reason = "reflection_chain"
	ReasonDirectionAway   Reason = "direction_away"
)

// Bypassed records one removed surface and the rule that removed it.
type Bypassed struct {
	Surface surface.Surface
	Reason  Reason
}

// Result is the bypass report of spec.md §6: an ordered active subset
// of the plan and the bypassed surfaces with their reasons.
type Result struct {
	Active   []surface.Surface
	Bypassed []Bypassed
}

// Evaluate applies the four rules of spec.md §4.5, in order, with
// rules 3 and 4 iterated to a fixed point ("restart rule 3").
func Evaluate(player, cursor geom.Point, planned []surface.Surface) Result {
	active := append([]surface.Surface(nil), planned...)
	var bypassed []Bypassed

	// Rule 1: player-side, checked once against S0.
	if len(active) > 0 && !active[0].OnReflectiveSide(player) {
		bypassed = append(bypassed, Bypassed{active[0], ReasonPlayerSide})
		active = active[1:]
	}

	// Rule 2: cursor-side, repeated against the current last active surface.
	for len(active) > 0 {
		last := active[len(active)-1]
		if last.OnReflectiveSide(cursor) {
			break
		}
		bypassed = append(bypassed, Bypassed{last, ReasonCursorSide})
		active = active[:len(active)-1]
	}

	// Rules 3 & 4: reflection-chain validity and direction-away,
	// iterated until no surface is removed in a full pass.
	for {
		if len(active) < 2 {
			break
		}
		ic := reflectcache.Build(player, cursor, active)
		removedIdx := -1
		reason := ReasonReflectionChain

		for i := 0; i < len(active)-1; i++ {
			next := active[i+1]

			if ic.IsParallel(i) {
				// Open Question (DESIGN.md #1): a reflected ray exactly
				// parallel to the next surface's line has no
				// intersection; treated the same as "non-reflective
				// side" per the spec's conservative bias.
				removedIdx = i + 1
				reason = ReasonReflectionChain
				break
			}

			ri := ic.ReflectionPoints[i]
			if !next.OnReflectiveSide(ri) {
				removedIdx = i + 1
				reason = ReasonReflectionChain
				break
			}

			if directionAway(ic, i, ri, next) {
				removedIdx = i + 1
				reason = ReasonDirectionAway
				break
			}
		}

		if removedIdx < 0 {
			break
		}
		bypassed = append(bypassed, Bypassed{active[removedIdx], reason})
		active = append(active[:removedIdx:removedIdx], active[removedIdx+1:]...)
	}

	return Result{Active: active, Bypassed: bypassed}
}

// directionAway reports whether the ray leaving reflection point ri on
// active[i], reflected about its normal, points away from next's
// supporting line (t <= 0), rather than merely landing off-segment
// (which is the reflection-chain rule's concern, handled separately).
func directionAway(ic *reflectcache.ImageChain, i int, ri geom.Point, next surface.Surface) bool {
	var prev geom.Point
	if i == 0 {
		prev = ic.PlayerImages[0]
	} else {
		prev = ic.ReflectionPoints[i-1]
	}
	incoming := ri.Sub(prev)
	if incoming.Len() == 0 {
		return true
	}
	outgoing := geom.ReflectDirection(incoming, ic.Planned[i].Normal())
	t, _, ok := geom.RayLineIntersect(ri, outgoing, next.Seg)
	return !ok || t <= 0
}
