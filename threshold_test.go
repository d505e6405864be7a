package raincal

import (
	"errors"
	"math"
	"testing"
)

// TestClearingThreshold_ScalesWithRate verifies the threshold tracks the
// effective rate and clamps at both ends.
func TestClearingThreshold_ScalesWithRate(t *testing.T) {
	p := DefaultEvaporationParameters()

	// Mid-range: 1% of post-evaporation rainfall.
	mid := p.ClearingThreshold(0.002)
	want := 0.002 * (1.0 - 0.001) * 0.01
	if math.Abs(mid-want) > 1e-15 {
		t.Errorf("Mid-range threshold: got %.10f, expected %.10f", mid, want)
	}

	// Tiny rates clamp to the floating-point floor.
	if got := p.ClearingThreshold(1e-7); got != p.MinThreshold {
		t.Errorf("Tiny-rate threshold: got %.2e, expected floor %.2e", got, p.MinThreshold)
	}

	// Huge rates clamp to the ceiling.
	if got := p.ClearingThreshold(1.0); got != p.MaxThreshold {
		t.Errorf("Huge-rate threshold: got %.2e, expected ceiling %.2e", got, p.MaxThreshold)
	}

	t.Logf("✓ Threshold = 1%% of post-evap rainfall, clamped to [%.0e, %.0e]",
		p.MinThreshold, p.MaxThreshold)
}

// TestCheckViability_LegacyThresholdDrainsLargeMaps reproduces the
// original large-map defect: with the historical 0.002 base rate, the
// mass-conserving effective rate on 1024×512 falls below the fixed 0.001
// clearing threshold, so every tick of rainfall was deleted. The
// scale-aware threshold keeps it.
func TestCheckViability_LegacyThresholdDrainsLargeMaps(t *testing.T) {
	sctx := referenceContext()
	legacy := RainfallRateResult{BaseRate: 0.002}

	geoms := []GridGeometry{
		{Width: 240, Height: 120},
		{Width: 1024, Height: 512},
	}
	diags, err := CheckViability(legacy, sctx, geoms, DefaultEvaporationParameters())
	if err != nil {
		t.Fatalf("Viability check failed: %v", err)
	}

	ref, large := diags[0], diags[1]

	if !ref.SurvivesLegacy {
		t.Errorf("Reference grid should survive even the fixed threshold "+
			"(effective %.6f)", ref.EffectiveRate)
	}
	if large.SurvivesLegacy {
		t.Errorf("1024x512 should NOT survive the fixed 0.001 threshold "+
			"(effective %.8f): that is the bug being reproduced", large.EffectiveRate)
	}
	if !large.Accumulates {
		t.Errorf("1024x512 must accumulate under the scale-aware threshold "+
			"(effective %.8f, threshold %.2e)", large.EffectiveRate, large.ClearingThreshold)
	}

	t.Logf("✓ 1024x512: effective=%.8f legacy-cleared=%v scale-aware-kept=%v",
		large.EffectiveRate, !large.SurvivesLegacy, large.Accumulates)
}

// TestCheckViability_SteadyState verifies the closed-form steady state:
// rainfall input balances evaporation output at depth = rate / evapRate.
func TestCheckViability_SteadyState(t *testing.T) {
	sctx := referenceContext()
	rate, _ := ComputeOptimalRate(sctx)
	p := DefaultEvaporationParameters()

	diags, err := CheckViability(rate, sctx, []GridGeometry{sctx.Reference}, p)
	if err != nil {
		t.Fatalf("Viability check failed: %v", err)
	}

	d := diags[0]
	want := d.EffectiveRate / p.Rate
	if math.Abs(d.SteadyStateDepth-want) > 1e-15 {
		t.Errorf("Steady-state depth: got %.8f, expected %.8f", d.SteadyStateDepth, want)
	}

	t.Logf("✓ Steady state at reference: %.4f m depth", d.SteadyStateDepth)
}

// TestCheckViability_InvalidInput verifies the whole call fails on a bad
// geometry, matching Validate.
func TestCheckViability_InvalidInput(t *testing.T) {
	sctx := referenceContext()
	rate, _ := ComputeOptimalRate(sctx)

	geoms := []GridGeometry{{Width: 240, Height: 120}, {Width: -1, Height: 4}}
	diags, err := CheckViability(rate, sctx, geoms, DefaultEvaporationParameters())
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
	if diags != nil {
		t.Errorf("Partial diagnostics returned alongside error")
	}

	t.Logf("✓ Invalid geometry fails the whole call")
}
