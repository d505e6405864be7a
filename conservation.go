package raincal

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// ConservationConfig controls the mass-conservation regression check.
type ConservationConfig struct {
	// Tolerance is the maximum ABSOLUTE deviation between the observed
	// and expected total ratios. Absolute, not relative: the check guards
	// against gross arithmetic drift, not ulp-level noise.
	Tolerance float64
}

// DefaultConservationConfig returns the calibrated tolerance of 0.01.
func DefaultConservationConfig() ConservationConfig {
	return ConservationConfig{Tolerance: 0.01}
}

// ConservationReport records one verification of the scaling-law identity
// against a single non-reference geometry.
type ConservationReport struct {
	TotalAtReference float64 // baseRate × reference.cellCount (factor 1 by construction)
	TotalAtOther     float64 // baseRate × other.cellCount, deliberately UNSCALED
	ObservedRatio    float64 // TotalAtReference / TotalAtOther
	ExpectedRatio    float64 // scalingFactor(other)
	WithinTolerance  bool
}

// CheckConservation independently verifies that the scaling law conserves
// total injected mass relative to the reference geometry.
//
// The identity: the reference total divided by the UNSCALED total at the
// other geometry must equal that geometry's scaling factor:
//
//	(baseRate × refCells) / (baseRate × otherCells) == refCells / otherCells
//
// which is exactly the factor the law multiplies in, so the scaled total
// at the other geometry matches the reference total. The check is
// mathematically guaranteed to pass for any correct ScalingFactor; it
// exists as regression protection against arithmetic drift or refactoring
// mistakes, not against runtime risk.
func CheckConservation(rate RainfallRateResult, sctx ScalingContext, other GridGeometry, cfg ConservationConfig) (ConservationReport, error) {
	if err := rate.validate(); err != nil {
		return ConservationReport{}, fmt.Errorf("check conservation: %w", err)
	}
	if err := sctx.validate(); err != nil {
		return ConservationReport{}, fmt.Errorf("check conservation: %w", err)
	}
	if err := other.validate(); err != nil {
		return ConservationReport{}, fmt.Errorf("check conservation: %w", err)
	}

	totalAtReference := rate.BaseRate * float64(sctx.Reference.CellCount())
	totalAtOther := rate.BaseRate * float64(other.CellCount())

	observed := totalAtReference / totalAtOther
	expected := sctx.ScalingFactor(other)

	return ConservationReport{
		TotalAtReference: totalAtReference,
		TotalAtOther:     totalAtOther,
		ObservedRatio:    observed,
		ExpectedRatio:    expected,
		WithinTolerance:  scalar.EqualWithinAbs(observed, expected, cfg.Tolerance),
	}, nil
}
