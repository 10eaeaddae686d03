package constants

import "testing"

func TestIntensityRampShape(t *testing.T) {
	ramp := []rune(IntensityRamp)
	if len(ramp) != 12 {
		t.Errorf("Expected 12 ramp glyphs, got %d", len(ramp))
	}
	if ramp[0] != ' ' {
		t.Errorf("Expected sparsest glyph to be blank, got %q", ramp[0])
	}
	if ramp[len(ramp)-1] != '@' {
		t.Errorf("Expected densest glyph to be '@', got %q", ramp[len(ramp)-1])
	}
}

func TestSolidTuningTables(t *testing.T) {
	if len(SolidScales) != len(SolidSpinRatios) {
		t.Errorf("Expected matching table lengths, got %d and %d", len(SolidScales), len(SolidSpinRatios))
	}
	for i := range SolidScales {
		if SolidScales[i] <= 0 {
			t.Errorf("Expected positive scale at %d, got %v", i, SolidScales[i])
		}
		if SolidSpinRatios[i] <= 0 {
			t.Errorf("Expected positive spin ratio at %d, got %v", i, SolidSpinRatios[i])
		}
	}
}

func TestCameraKeepsDenominatorPositive(t *testing.T) {
	// Projection divides by z + CameraDistance; the orbit and solid extents
	// must keep that denominator positive for all reachable geometry
	maxReach := OrbitRadiusC + SphereRadius + 2.0 // deepest orbit plus largest solid extent
	if CameraDistance <= maxReach {
		t.Errorf("Expected camera distance %v to exceed reachable depth %v", CameraDistance, maxReach)
	}
}
