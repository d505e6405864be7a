package raincal

import "fmt"

// RealismBounds classifies per-cell rainfall as physically plausible.
// All four bounds are inclusive and BOTH windows must hold.
//
// The values are empirical constants from field calibration with no
// further derivation; preserve them literally when comparing against
// historical runs.
type RealismBounds struct {
	MinDailyMM  float64 // Lower bound, mm/day
	MaxDailyMM  float64 // Upper bound, mm/day
	MinAnnualMM float64 // Lower bound, mm/year
	MaxAnnualMM float64 // Upper bound, mm/year
}

// DefaultRealismBounds returns the calibrated windows: 0.5–10.0 mm/day
// and 200–2000 mm/year.
func DefaultRealismBounds() RealismBounds {
	return RealismBounds{
		MinDailyMM:  0.5,
		MaxDailyMM:  10.0,
		MinAnnualMM: 200.0,
		MaxAnnualMM: 2000.0,
	}
}

// Realistic reports whether the given daily and annual rainfall totals
// fall inside both windows.
func (b RealismBounds) Realistic(dailyMM, annualMM float64) bool {
	return dailyMM >= b.MinDailyMM && dailyMM <= b.MaxDailyMM &&
		annualMM >= b.MinAnnualMM && annualMM <= b.MaxAnnualMM
}

// GridDiagnostic reports how the calibrated rate behaves at one geometry.
// Purely derived; diagnostics carry no identity of their own.
type GridDiagnostic struct {
	Geometry      GridGeometry
	ScalingFactor float64 // reference.cellCount / geometry.cellCount
	EffectiveRate float64 // m/hour per cell after scaling
	DailyMM       float64 // effective rate as mm/day
	AnnualMM      float64 // daily total × 365.25
	Realistic     bool    // inside both realism windows
}

// Validate applies the calibrated rate across candidate geometries and
// classifies each against the realism bounds.
//
// Output preserves input order, one diagnostic per geometry; nothing is
// skipped or deduplicated. Any geometry with a non-positive cell count
// fails the WHOLE call with ErrInvalidInput; no partial slice is
// returned. Pure and deterministic.
func Validate(rate RainfallRateResult, sctx ScalingContext, geometries []GridGeometry, bounds RealismBounds) ([]GridDiagnostic, error) {
	if err := rate.validate(); err != nil {
		return nil, fmt.Errorf("validate scaling: %w", err)
	}
	if err := sctx.validate(); err != nil {
		return nil, fmt.Errorf("validate scaling: %w", err)
	}
	for i, g := range geometries {
		if err := g.validate(); err != nil {
			return nil, fmt.Errorf("validate scaling: geometry %d: %w", i, err)
		}
	}

	diags := make([]GridDiagnostic, 0, len(geometries))
	for _, g := range geometries {
		diags = append(diags, diagnose(rate, sctx, g, bounds))
	}
	return diags, nil
}

// diagnose computes the scaled rate and classification for one geometry.
// Inputs are already validated.
func diagnose(rate RainfallRateResult, sctx ScalingContext, g GridGeometry, bounds RealismBounds) GridDiagnostic {
	factor := sctx.ScalingFactor(g)
	effective := rate.BaseRate * factor
	dailyMM := effective * HoursPerDay * MMPerMeter
	annualMM := dailyMM * DaysPerYear

	return GridDiagnostic{
		Geometry:      g,
		ScalingFactor: factor,
		EffectiveRate: effective,
		DailyMM:       dailyMM,
		AnnualMM:      annualMM,
		Realistic:     bounds.Realistic(dailyMM, annualMM),
	}
}
