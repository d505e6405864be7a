// Package raincal calibrates the base rainfall rate for grid-based
// terrain and hydrology simulators.
//
// # Overview
//
// A simulator discretizes a physical region into width × height cells and
// injects rainfall per cell per tick. Total injected mass therefore scales
// with cell count: a fixed per-cell rate that looks right on a 240×120 map
// floods a 25×25 map and starves a 2048×1024 one. raincal derives a single
// resolution-independent base rate from physical targets (realistic mm/day
// rainfall) and verifies that mass-conserving scaling keeps every supported
// grid size physically plausible.
//
// # The Scaling Law
//
// All scaling derives from one ratio:
//
//	scalingFactor(g) = reference.cellCount / g.cellCount
//
// Smaller grids get a larger factor (more rain per cell offsets fewer
// cells); larger grids get a smaller one. The effective per-cell rate at
// any geometry is:
//
//	effectiveRate(g) = baseRate × scalingFactor(g)
//
// so the total over the region, effectiveRate(g) × g.cellCount, is the
// same at every resolution. At the reference geometry the factor is 1 by
// construction, which pins the calibration: the base rate IS the target
// rate expressed at reference resolution.
//
// # Quick Start
//
// Calibrate against a 240×120 reference grid targeting 3 mm/day:
//
//	ref, _ := raincal.NewGridGeometry(240, 120)
//	target, _ := raincal.NewPhysicalTarget(3.0) // mm/day
//	sctx := raincal.ScalingContext{Reference: ref, Target: target}
//
//	rate, err := raincal.ComputeOptimalRate(sctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("base rate: %.6f m/hour per cell\n", rate.BaseRate)
//
// Check how the rate behaves across candidate grid sizes:
//
//	diags, err := raincal.Validate(rate, sctx, geometries, raincal.DefaultRealismBounds())
//	for _, d := range diags {
//	    fmt.Printf("%dx%d: %.2f mm/day realistic=%v\n",
//	        d.Geometry.Width, d.Geometry.Height, d.DailyMM, d.Realistic)
//	}
//
// Or run the whole pipeline over the standard sweep:
//
//	report, err := raincal.Sweep(sctx, raincal.DefaultSweepConfig())
//
// # Realism Bounds
//
// A geometry is classified realistic when its per-cell rainfall falls in
// both empirical windows:
//
//	0.5 ≤ mm/day ≤ 10.0
//	200 ≤ mm/year ≤ 2000
//
// Both bounds are inclusive and both must hold. The bounds are empirical
// constants carried over from field calibration; they have no derivation
// and should not be reinterpreted.
//
// # Conservation Check
//
// CheckConservation is a regression guard, not a runtime safeguard. It
// verifies the algebraic identity behind the scaling law: the ratio of the
// reference total to the unscaled total at another geometry must equal
// that geometry's scaling factor. Any correct scalingFactor passes; the
// check exists to catch arithmetic drift during refactoring.
//
// # Evaporation Viability
//
// Simulators commonly clear water depths below a threshold to avoid
// floating-point dust. A fixed threshold silently deletes all rainfall on
// large maps, where the mass-conserving effective rate is tiny.
// CheckViability computes the scale-aware clearing threshold for each
// geometry and reports whether one tick of rainfall survives it, along
// with the closed-form steady-state depth (rate / evaporation rate).
//
// # Testing
//
// Assertion helpers validate the calibration properties in your own tests:
//
//	func TestMyCalibration(t *testing.T) {
//	    cfg := raincal.DefaultAssertionConfig()
//	    raincal.AssertReferenceRoundTrip(t, sctx, cfg)
//	    raincal.AssertTotalInvariant(t, rate, sctx, geometries, cfg)
//	    raincal.AssertMonotonicRates(t, rate, sctx, geometries, cfg)
//	}
//
// # Scope
//
// raincal computes and validates one constant. It does not simulate
// rainfall over time, model spatial variation, or apply the result to a
// running system. The simulator consumes the numeric BaseRate (meters per
// hour per cell at reference resolution) as a fixed configuration value
// and applies the same scaling law at simulation time.
package raincal
