package raincal

import "fmt"

// SweepConfig controls a full calibration sweep: which geometries to
// evaluate and the bounds and tolerances applied to them.
type SweepConfig struct {
	Geometries   []GridGeometry
	Bounds       RealismBounds
	Conservation ConservationConfig
	Evaporation  EvaporationParameters
}

// DefaultSweepConfig returns the standard map sizes the simulator ships
// with: the 240×120 reference, 480×240, 1024×512 and 2048×1024.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Geometries: []GridGeometry{
			{Width: 240, Height: 120},
			{Width: 480, Height: 240},
			{Width: 1024, Height: 512},
			{Width: 2048, Height: 1024},
		},
		Bounds:       DefaultRealismBounds(),
		Conservation: DefaultConservationConfig(),
		Evaporation:  DefaultEvaporationParameters(),
	}
}

// Report bundles everything one calibration run produces. Slices are
// index-aligned with cfg.Geometries.
type Report struct {
	Rate         RainfallRateResult
	Diagnostics  []GridDiagnostic
	Conservation []ConservationReport
	Viability    []ViabilityDiagnostic
}

// Conserved reports whether every geometry passed the conservation check.
func (r Report) Conserved() bool {
	for _, c := range r.Conservation {
		if !c.WithinTolerance {
			return false
		}
	}
	return true
}

// Sweep runs the full pipeline: calibrate the base rate from the context,
// validate it across the configured geometries, verify mass conservation
// against each, and check evaporation viability. Data flows one way;
// each stage is the corresponding public operation, so a Sweep result is
// exactly what calling them individually would produce.
func Sweep(sctx ScalingContext, cfg SweepConfig) (Report, error) {
	rate, err := ComputeOptimalRate(sctx)
	if err != nil {
		return Report{}, fmt.Errorf("sweep: %w", err)
	}

	diags, err := Validate(rate, sctx, cfg.Geometries, cfg.Bounds)
	if err != nil {
		return Report{}, fmt.Errorf("sweep: %w", err)
	}

	conservation := make([]ConservationReport, 0, len(cfg.Geometries))
	for _, g := range cfg.Geometries {
		rep, err := CheckConservation(rate, sctx, g, cfg.Conservation)
		if err != nil {
			return Report{}, fmt.Errorf("sweep: %w", err)
		}
		conservation = append(conservation, rep)
	}

	viability, err := CheckViability(rate, sctx, cfg.Geometries, cfg.Evaporation)
	if err != nil {
		return Report{}, fmt.Errorf("sweep: %w", err)
	}

	return Report{
		Rate:         rate,
		Diagnostics:  diags,
		Conservation: conservation,
		Viability:    viability,
	}, nil
}
