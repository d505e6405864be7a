package raincal

import "fmt"

// Physical unit constants. The simulator works in meters of water depth
// per cell per hour; targets are specified in millimeters per day because
// that is how rainfall climatology is published.
const (
	// HoursPerDay converts per-hour rates to per-day totals.
	HoursPerDay = 24.0

	// MMPerMeter converts meters of water depth to millimeters.
	MMPerMeter = 1000.0

	// DaysPerYear converts daily totals to annual totals (Julian year).
	DaysPerYear = 365.25
)

// GridGeometry describes one discretization of the simulated region.
// Immutable once constructed; the zero value is invalid (zero cells).
type GridGeometry struct {
	Width  int // Cells along the horizontal axis
	Height int // Cells along the vertical axis
}

// NewGridGeometry constructs a geometry, rejecting non-positive dimensions.
func NewGridGeometry(width, height int) (GridGeometry, error) {
	g := GridGeometry{Width: width, Height: height}
	if err := g.validate(); err != nil {
		return GridGeometry{}, err
	}
	return g, nil
}

// CellCount returns width × height, the number of cells rainfall is
// injected into each tick.
func (g GridGeometry) CellCount() int {
	return g.Width * g.Height
}

// String formats the geometry as "240x120".
func (g GridGeometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

func (g GridGeometry) validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: grid geometry %dx%d has non-positive dimensions",
			ErrInvalidInput, g.Width, g.Height)
	}
	return nil
}

// PhysicalTarget is the rainfall climate the calibration must reproduce
// at the reference geometry, in millimeters per day.
type PhysicalTarget struct {
	TargetDailyRate float64 // mm/day, must be positive
}

// NewPhysicalTarget constructs a target, rejecting non-positive rates.
func NewPhysicalTarget(dailyMM float64) (PhysicalTarget, error) {
	p := PhysicalTarget{TargetDailyRate: dailyMM}
	if err := p.validate(); err != nil {
		return PhysicalTarget{}, err
	}
	return p, nil
}

// RatePerHour converts the daily target to meters of depth per hour,
// the unit the simulator injects in.
func (p PhysicalTarget) RatePerHour() float64 {
	return p.TargetDailyRate / (HoursPerDay * MMPerMeter)
}

func (p PhysicalTarget) validate() error {
	if p.TargetDailyRate <= 0 {
		return fmt.Errorf("%w: target daily rate %.6f mm/day must be positive",
			ErrInvalidInput, p.TargetDailyRate)
	}
	return nil
}

// ScalingContext fixes the reference geometry and physical target for one
// calibration run. Constructed once, never mutated.
type ScalingContext struct {
	Reference GridGeometry
	Target    PhysicalTarget
}

// ScalingFactor returns reference.cellCount / g.cellCount, the
// mass-conservation law. Smaller grids receive a larger factor (more rain
// per cell offsets fewer cells); the reference geometry always maps to
// exactly 1.
//
// Callers must have validated g; a zero cell count would divide by zero.
func (c ScalingContext) ScalingFactor(g GridGeometry) float64 {
	return float64(c.Reference.CellCount()) / float64(g.CellCount())
}

func (c ScalingContext) validate() error {
	if err := c.Reference.validate(); err != nil {
		return fmt.Errorf("reference geometry: %w", err)
	}
	return c.Target.validate()
}
