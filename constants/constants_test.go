package constants

import "testing"

func TestDefaultsAreConsistentWithSpecBudget(t *testing.T) {
	if DefaultMaxReflections <= 0 {
		t.Fatal("DefaultMaxReflections must be positive")
	}
	if DefaultCursorTolerance <= 0 || DefaultAlignmentTolerance <= 0 {
		t.Fatal("tolerances must be positive")
	}
	if ReflectionReversibilityTolerance >= KeyStabilityTolerance {
		t.Fatal("R1's reversibility bound should be tighter than K1's key-stability bound")
	}
}
