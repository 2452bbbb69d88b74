package evergreen

import "math"

// Driver owns the shared assembly progress and the whole-assembly spin.
// Exactly one Driver advances progress per frame, before any evaluator reads it.
type Driver struct {
	progress  float64
	assembled bool
	rotation  float64

	// Responsiveness is the smoothing constant k in 1 - e^(-k*dt).
	Responsiveness float64
	// SpinSpeed is the assembled spin rate in radians per second.
	SpinSpeed float64
	// ScatteredSpinFactor scales SpinSpeed while the target is scattered.
	ScatteredSpinFactor float64
}

// NewDriver returns a scattered Driver at progress 0.
func NewDriver(responsiveness, spinSpeed, scatteredSpinFactor float64) *Driver {
	return &Driver{
		Responsiveness:      responsiveness,
		SpinSpeed:           spinSpeed,
		ScatteredSpinFactor: scatteredSpinFactor,
	}
}

// Toggle flips the target between scattered and assembled.
func (d *Driver) Toggle() {
	d.assembled = !d.assembled
}

// SetAssembled sets the target directly.
func (d *Driver) SetAssembled(assembled bool) {
	d.assembled = assembled
}

// Assembled reports whether the target is the assembled tree.
func (d *Driver) Assembled() bool {
	return d.assembled
}

// Target returns the target progress: 1 when assembled, 0 when scattered.
func (d *Driver) Target() float64 {
	if d.assembled {
		return 1
	}
	return 0
}

// Progress returns the current assembly progress in [0, 1].
func (d *Driver) Progress() float64 {
	return d.progress
}

// Rotation returns the accumulated whole-assembly yaw in radians.
func (d *Driver) Rotation() float64 {
	return d.rotation
}

// AtRest reports whether progress is within eps of the target.
func (d *Driver) AtRest(eps float64) bool {
	return math.Abs(d.Target()-d.progress) <= eps
}

// Tick advances progress toward the target by exponential smoothing and
// advances the spin. Non-positive dt leaves progress unchanged.
func (d *Driver) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	alpha := 1 - math.Exp(-d.Responsiveness*dt)
	d.progress += (d.Target() - d.progress) * alpha
	d.progress = math.Min(1, math.Max(0, d.progress))

	speed := d.SpinSpeed
	if !d.assembled {
		speed *= d.ScatteredSpinFactor
	}
	d.rotation = math.Mod(d.rotation+dt*speed, 2*math.Pi)
}
