package raincal

import "fmt"

// RainfallRateResult holds the calibrated, resolution-independent base
// rainfall rate. This is the sole artifact the simulator consumes: meters
// of water depth per cell per hour, expressed at the reference grid
// resolution. The simulator derives every other geometry's effective rate
// from it via the scaling law.
type RainfallRateResult struct {
	BaseRate float64 // m/hour per cell at reference resolution
}

// ComputeOptimalRate derives the base rate that reproduces the physical
// target exactly at the reference geometry.
//
// The calibration identity: the returned rate satisfies
//
//	baseRate × scalingFactor(reference) == targetRatePerHour
//
// and since scalingFactor(reference) == 1 by construction, the base rate
// equals the target rate converted to m/hour. Any calibration that breaks
// this identity is incorrect by definition, because the factor at the reference
// is always 1.
//
// Pure and deterministic. Fails with ErrInvalidInput on a non-positive
// reference cell count or target rate, returning no partial result.
func ComputeOptimalRate(sctx ScalingContext) (RainfallRateResult, error) {
	if err := sctx.validate(); err != nil {
		return RainfallRateResult{}, fmt.Errorf("compute optimal rate: %w", err)
	}

	return RainfallRateResult{BaseRate: sctx.Target.RatePerHour()}, nil
}

func (r RainfallRateResult) validate() error {
	if r.BaseRate <= 0 {
		return fmt.Errorf("%w: base rate %.10f m/hour must be positive",
			ErrInvalidInput, r.BaseRate)
	}
	return nil
}
