// Package config holds the engine-wide tuning defaults of spec.md §6
// and the concrete scene-boundary presets used by the demo and the
// end-to-end test scenarios of spec.md §8. It follows the teacher's own
// config shape (network.Config/audio.AudioConfig): a plain struct plus
// a DefaultConfig constructor, with optional TOML file overlay via the
// teacher's own toml codec.
package config

import (
	"github.com/lixenwraith/mirrorvis/cone"
	"github.com/lixenwraith/mirrorvis/constants"
	"github.com/lixenwraith/mirrorvis/trajectory"
)

// EngineConfig is the host-tunable knob set of spec.md §6: maxReflections,
// cursorTolerance, alignmentTolerance, provenance-strict mode, and an
// optional RangeLimit. RangeLimit is runtime-only (a scene's range
// limit is assembled by the host per query) and excluded from file
// round-tripping.
type EngineConfig struct {
	MaxReflections     int              `toml:"max_reflections"`
	CursorTolerance    float64          `toml:"cursor_tolerance"`
	AlignmentTolerance float64          `toml:"alignment_tolerance"`
	ProvenanceStrict   bool             `toml:"provenance_strict"`
	RangeLimit         *cone.RangeLimit `toml:"-"`
}

// DefaultConfig returns spec.md §6's documented production defaults.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		MaxReflections:     constants.DefaultMaxReflections,
		CursorTolerance:    constants.DefaultCursorTolerance,
		AlignmentTolerance: constants.DefaultAlignmentTolerance,
		ProvenanceStrict:   true,
	}
}

// DebugConfig relaxes provenance-strict mode so a hand-assembled demo
// scene with near-collinear test geometry doesn't abort a query on
// every ambiguous candidate pair, mirroring network.DebugConfig's
// "relax for local testing" role.
func DebugConfig() *EngineConfig {
	cfg := DefaultConfig()
	cfg.ProvenanceStrict = false
	return cfg
}

// ToTrajectoryConfig adapts EngineConfig to the trajectory package's
// per-query Config.
func (c *EngineConfig) ToTrajectoryConfig() trajectory.Config {
	return trajectory.Config{
		MaxReflections:     c.MaxReflections,
		CursorTolerance:    c.CursorTolerance,
		AlignmentTolerance: c.AlignmentTolerance,
		ProvenanceStrict:   c.ProvenanceStrict,
		RangeLimit:         c.RangeLimit,
	}
}
