package raincal

import "fmt"

// EvaporationParameters describe the simulator's evaporation step, which
// multiplies each cell's depth by (1 - Rate) per tick and clears depths
// below a threshold to avoid accumulating floating-point dust.
type EvaporationParameters struct {
	// Rate is the per-tick evaporation fraction.
	Rate float64

	// ThresholdFraction sets the clearing threshold relative to one tick
	// of post-evaporation rainfall. 0.01 allows ~100 ticks of rainfall to
	// build up before clearing can interfere.
	ThresholdFraction float64

	// MinThreshold floors the threshold above floating-point noise.
	MinThreshold float64

	// MaxThreshold caps the threshold so it never clears water that
	// should accumulate on small, rain-dense grids.
	MaxThreshold float64

	// LegacyThreshold is the historical fixed clearing threshold. Kept
	// only so diagnostics can show which geometries the fixed value
	// silently drained.
	LegacyThreshold float64
}

// DefaultEvaporationParameters returns the simulator defaults.
func DefaultEvaporationParameters() EvaporationParameters {
	return EvaporationParameters{
		Rate:              0.001,
		ThresholdFraction: 0.01,
		MinThreshold:      1e-8,
		MaxThreshold:      1e-4,
		LegacyThreshold:   0.001,
	}
}

// ClearingThreshold computes the scale-aware clearing threshold for a
// given effective rainfall rate: ThresholdFraction of one tick of
// post-evaporation rainfall, clamped to [MinThreshold, MaxThreshold].
func (p EvaporationParameters) ClearingThreshold(effectiveRate float64) float64 {
	postEvaporation := effectiveRate * (1.0 - p.Rate)
	threshold := postEvaporation * p.ThresholdFraction

	if threshold < p.MinThreshold {
		return p.MinThreshold
	}
	if threshold > p.MaxThreshold {
		return p.MaxThreshold
	}
	return threshold
}

// ViabilityDiagnostic reports whether rainfall at one geometry survives
// the evaporation clearing step.
type ViabilityDiagnostic struct {
	Geometry          GridGeometry
	EffectiveRate     float64 // m/hour per cell after scaling
	ClearingThreshold float64 // scale-aware threshold for this rate
	SteadyStateDepth  float64 // effectiveRate / evaporation rate
	Accumulates       bool    // one tick of rainfall survives the scale-aware threshold
	SurvivesLegacy    bool    // one tick of rainfall survives the historical fixed threshold
}

// CheckViability reports, per geometry, whether one tick of effective
// rainfall survives the evaporation clearing threshold, and the
// closed-form steady-state depth (rainfall input balancing evaporation
// output). Mass-conserving scaling makes effective rates tiny on large
// grids; a fixed clearing threshold silently deletes all of that water,
// which is the failure mode this check surfaces.
//
// Output preserves input order. A non-positive geometry fails the whole
// call with ErrInvalidInput, matching Validate.
func CheckViability(rate RainfallRateResult, sctx ScalingContext, geometries []GridGeometry, params EvaporationParameters) ([]ViabilityDiagnostic, error) {
	if err := rate.validate(); err != nil {
		return nil, fmt.Errorf("check viability: %w", err)
	}
	if err := sctx.validate(); err != nil {
		return nil, fmt.Errorf("check viability: %w", err)
	}
	for i, g := range geometries {
		if err := g.validate(); err != nil {
			return nil, fmt.Errorf("check viability: geometry %d: %w", i, err)
		}
	}

	diags := make([]ViabilityDiagnostic, 0, len(geometries))
	for _, g := range geometries {
		effective := rate.BaseRate * sctx.ScalingFactor(g)
		postEvaporation := effective * (1.0 - params.Rate)
		threshold := params.ClearingThreshold(effective)

		diags = append(diags, ViabilityDiagnostic{
			Geometry:          g,
			EffectiveRate:     effective,
			ClearingThreshold: threshold,
			SteadyStateDepth:  effective / params.Rate,
			Accumulates:       postEvaporation >= threshold,
			SurvivesLegacy:    postEvaporation >= params.LegacyThreshold,
		})
	}
	return diags, nil
}
