package raincal

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// AssertionConfig contains tolerances for the calibration properties.
type AssertionConfig struct {
	// RelTolerance bounds relative error on derived quantities
	// (round-trips, total invariance, conservation identity).
	RelTolerance float64

	// Bounds classify the reference diagnostic in AssertReferenceRealistic.
	Bounds RealismBounds
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		RelTolerance: 1e-9,
		Bounds:       DefaultRealismBounds(),
	}
}

// AssertReferenceRoundTrip verifies the calibration identity: the scaling
// factor at the reference geometry is exactly 1.0, and the effective rate
// there reproduces the physical target.
//
// Mathematical property:
//
//	scalingFactor(reference) == 1.0 exactly
//	baseRate × scalingFactor(reference) == targetRatePerHour (within tolerance)
func AssertReferenceRoundTrip(t *testing.T, sctx ScalingContext, cfg AssertionConfig) {
	t.Helper()

	rate, err := ComputeOptimalRate(sctx)
	if err != nil {
		t.Fatalf("Failed to compute optimal rate: %v", err)
	}

	factor := sctx.ScalingFactor(sctx.Reference)
	if factor != 1.0 {
		t.Errorf("Reference scaling factor must be exactly 1.0, got %.15f\n"+
			"The base rate is defined AT the reference geometry; a factor ≠ 1\n"+
			"means ScalingFactor no longer divides reference cells by target cells.",
			factor)
	}

	effective := rate.BaseRate * factor
	want := sctx.Target.RatePerHour()
	if !scalar.EqualWithinRel(effective, want, cfg.RelTolerance) {
		t.Errorf("Reference round-trip broken: effective rate %.12f, target %.12f\n"+
			"ComputeOptimalRate must return exactly the target rate in m/hour.",
			effective, want)
	}

	t.Logf("✓ Reference round-trip: factor = 1.0, effective = %.12f m/hour", effective)
}

// AssertMonotonicRates verifies that fewer cells means a strictly higher
// effective per-cell rate: for a.cellCount < b.cellCount,
// effectiveRate(a) > effectiveRate(b).
func AssertMonotonicRates(t *testing.T, rate RainfallRateResult, sctx ScalingContext, geometries []GridGeometry, cfg AssertionConfig) {
	t.Helper()

	for _, a := range geometries {
		for _, b := range geometries {
			if a.CellCount() >= b.CellCount() {
				continue
			}
			ra := rate.BaseRate * sctx.ScalingFactor(a)
			rb := rate.BaseRate * sctx.ScalingFactor(b)
			if ra <= rb {
				t.Errorf("Monotonicity violated: %dx%d (%d cells) rate %.12f ≤ %dx%d (%d cells) rate %.12f\n"+
					"Fewer cells must receive strictly more rain per cell.",
					a.Width, a.Height, a.CellCount(), ra,
					b.Width, b.Height, b.CellCount(), rb)
			}
		}
	}

	t.Logf("✓ Effective rate strictly decreases with cell count (%d geometries)", len(geometries))
}

// AssertTotalInvariant verifies scale invariance of totals: for a fixed
// base rate, effectiveRate(g) × g.cellCount is identical across all
// geometries within relative tolerance.
func AssertTotalInvariant(t *testing.T, rate RainfallRateResult, sctx ScalingContext, geometries []GridGeometry, cfg AssertionConfig) {
	t.Helper()

	if len(geometries) == 0 {
		t.Fatal("AssertTotalInvariant requires at least one geometry")
	}

	reference := rate.BaseRate * float64(sctx.Reference.CellCount())
	for _, g := range geometries {
		total := rate.BaseRate * sctx.ScalingFactor(g) * float64(g.CellCount())
		if !scalar.EqualWithinRel(total, reference, cfg.RelTolerance) {
			t.Errorf("Total mass not conserved at %dx%d: got %.12f, reference total %.12f\n"+
				"effectiveRate × cellCount must be resolution-independent.",
				g.Width, g.Height, total, reference)
		}
	}

	t.Logf("✓ Total injected mass invariant: %.12f across %d geometries", reference, len(geometries))
}

// AssertMassConserved verifies the conservation identity for each
// geometry: (baseRate × refCells) / (baseRate × otherCells) equals
// scalingFactor(other) within relative tolerance.
func AssertMassConserved(t *testing.T, rate RainfallRateResult, sctx ScalingContext, geometries []GridGeometry, cfg AssertionConfig) {
	t.Helper()

	for _, g := range geometries {
		observed := (rate.BaseRate * float64(sctx.Reference.CellCount())) /
			(rate.BaseRate * float64(g.CellCount()))
		expected := sctx.ScalingFactor(g)

		if !scalar.EqualWithinRel(observed, expected, cfg.RelTolerance) {
			t.Errorf("Conservation identity broken at %dx%d: observed ratio %.12f, expected factor %.12f",
				g.Width, g.Height, observed, expected)
		}
	}

	t.Logf("✓ Conservation identity holds for %d geometries", len(geometries))
}

// AssertReferenceRealistic verifies that the calibrated rate lands inside
// the realism windows at the reference geometry itself. A calibration
// whose own reference is classified unrealistic is misconfigured.
func AssertReferenceRealistic(t *testing.T, sctx ScalingContext, cfg AssertionConfig) {
	t.Helper()

	rate, err := ComputeOptimalRate(sctx)
	if err != nil {
		t.Fatalf("Failed to compute optimal rate: %v", err)
	}

	diags, err := Validate(rate, sctx, []GridGeometry{sctx.Reference}, cfg.Bounds)
	if err != nil {
		t.Fatalf("Failed to validate reference geometry: %v", err)
	}

	d := diags[0]
	if !d.Realistic {
		t.Errorf("Calibrated reference is unrealistic: %.4f mm/day, %.2f mm/year\n"+
			"Windows: %.1f–%.1f mm/day, %.0f–%.0f mm/year\n"+
			"Check the physical target; the reference must satisfy it by construction.",
			d.DailyMM, d.AnnualMM,
			cfg.Bounds.MinDailyMM, cfg.Bounds.MaxDailyMM,
			cfg.Bounds.MinAnnualMM, cfg.Bounds.MaxAnnualMM)
	}

	t.Logf("✓ Reference realistic: %.4f mm/day, %.2f mm/year", d.DailyMM, d.AnnualMM)
}
