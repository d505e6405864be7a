package raincal

import (
	"errors"
	"math"
	"testing"
)

// TestNewGridGeometry_RejectsNonPositive verifies the cellCount > 0 invariant
// is enforced at construction.
func TestNewGridGeometry_RejectsNonPositive(t *testing.T) {
	bad := [][2]int{{0, 120}, {240, 0}, {0, 0}, {-240, 120}, {240, -1}}

	for _, dims := range bad {
		if _, err := NewGridGeometry(dims[0], dims[1]); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("NewGridGeometry(%d, %d) should fail with ErrInvalidInput, got %v",
				dims[0], dims[1], err)
		}
	}

	t.Logf("✓ Non-positive dimensions rejected (%d cases)", len(bad))
}

// TestGridGeometry_CellCount verifies the derived cell count.
func TestGridGeometry_CellCount(t *testing.T) {
	g, err := NewGridGeometry(240, 120)
	if err != nil {
		t.Fatalf("Valid geometry rejected: %v", err)
	}

	if g.CellCount() != 28800 {
		t.Errorf("240x120 cell count: got %d, expected 28800", g.CellCount())
	}

	t.Logf("✓ 240x120 = %d cells", g.CellCount())
}

// TestScalingFactor_ReferenceIsUnity verifies the key design invariant:
// the scaling factor at the reference geometry is exactly 1.0.
func TestScalingFactor_ReferenceIsUnity(t *testing.T) {
	ref := GridGeometry{Width: 240, Height: 120}
	sctx := ScalingContext{Reference: ref, Target: PhysicalTarget{TargetDailyRate: 3.0}}

	factor := sctx.ScalingFactor(ref)
	if factor != 1.0 {
		t.Errorf("Scaling factor at reference: got %.15f, must be exactly 1.0", factor)
	}

	t.Logf("✓ scalingFactor(reference) = 1.0 exactly")
}

// TestScalingFactor_Direction verifies smaller grids get larger factors.
func TestScalingFactor_Direction(t *testing.T) {
	sctx := ScalingContext{
		Reference: GridGeometry{Width: 240, Height: 120},
		Target:    PhysicalTarget{TargetDailyRate: 3.0},
	}

	small := GridGeometry{Width: 25, Height: 25}    // 625 cells
	large := GridGeometry{Width: 1024, Height: 512} // 524288 cells

	fs := sctx.ScalingFactor(small)
	fl := sctx.ScalingFactor(large)

	if math.Abs(fs-46.08) > 1e-9 {
		t.Errorf("25x25 factor: got %.6f, expected 46.08", fs)
	}
	if fs <= 1.0 || fl >= 1.0 {
		t.Errorf("Factor direction wrong: small=%.6f (want > 1), large=%.6f (want < 1)", fs, fl)
	}

	t.Logf("✓ Factors: 25x25 → %.2f, 1024x512 → %.6f", fs, fl)
}

// TestPhysicalTarget_RatePerHour verifies the mm/day → m/hour conversion:
// 3.0 mm/day = 3.0 / (24 × 1000) = 0.000125 m/hour.
func TestPhysicalTarget_RatePerHour(t *testing.T) {
	target, err := NewPhysicalTarget(3.0)
	if err != nil {
		t.Fatalf("Valid target rejected: %v", err)
	}

	got := target.RatePerHour()
	if math.Abs(got-0.000125) > 1e-15 {
		t.Errorf("3.0 mm/day in m/hour: got %.12f, expected 0.000125", got)
	}

	t.Logf("✓ 3.0 mm/day = %.6f m/hour", got)
}

// TestNewPhysicalTarget_RejectsNonPositive verifies target validation.
func TestNewPhysicalTarget_RejectsNonPositive(t *testing.T) {
	for _, rate := range []float64{0.0, -3.0} {
		if _, err := NewPhysicalTarget(rate); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("NewPhysicalTarget(%.1f) should fail with ErrInvalidInput, got %v", rate, err)
		}
	}

	t.Logf("✓ Non-positive targets rejected")
}
