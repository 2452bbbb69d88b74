package evergreen

import "math"

// Secondary motion constants.
const (
	foliageBobUntil   = 0.5   // bob while progress is below this
	foliageBobAmp     = 0.005 // vertical bob amplitude
	lightPulseRate    = 3.0
	lightPulseAmp     = 0.2
	presentSettleAt   = 0.9 // tumble stops once progress reaches this
	presentTumbleRate = 1.5
	presentTumbleAmp  = 0.25
	stockingSwingRate = 2.0
	stockingSwingAmp  = 0.1
	wishWobbleRate    = 2.0
	wishWobbleAmp     = 0.1
	wishWobblePhase   = 10.0 // per-index phase multiplier
)

// Instance is one evaluated element for one frame: a pose and a color.
type Instance struct {
	Transform
	Color Color
}

// LocalOffset is a rigid child pose expressed in its parent's local space.
// Apply assumes the parent scale is uniform, which holds for every category.
type LocalOffset struct {
	Position    Vec3
	Orientation Quat
	Scale       float64
}

// Apply composes the offset onto parent, equivalent to
// parent.Matrix() * translate * rotate * scale.
func (o LocalOffset) Apply(parent Transform) Transform {
	s := parent.Scale.X
	return Transform{
		Position:    parent.Position.Add(parent.Orientation.Rotate(o.Position.Scale(s))),
		Orientation: parent.Orientation.Mul(o.Orientation),
		Scale:       parent.Scale.Scale(o.Scale),
	}
}

// BowOffset places the bow on the lid of its present.
var BowOffset = LocalOffset{
	Position:    Vec3{0, 0.22, 0},
	Orientation: QuatFromAxisAngle(Vec3{1, 0, 0}, math.Pi/2),
	Scale:       0.5,
}

// basePose interpolates position and orientation between the scattered and
// assembled poses.
func basePose(t *Tuple, progress float64) (Vec3, Quat) {
	return LerpVec3(t.ScatterPosition, t.AssembledPosition, progress),
		Slerp(t.ScatterOrientation, t.AssembledOrientation, progress)
}

// EvalFoliage evaluates one needle. While the tree is still mostly scattered
// the needle bobs vertically like settling dust.
func EvalFoliage(t *Tuple, id FoliageID, progress, elapsed float64) Instance {
	pos, rot := basePose(t, progress)
	if progress < foliageBobUntil {
		pos.Y += math.Sin(elapsed+float64(id)) * foliageBobAmp
	}
	return Instance{
		Transform: Transform{Position: pos, Orientation: rot, Scale: Uniform(t.Scale)},
		Color:     t.Color,
	}
}

// EvalOrnament evaluates one bauble. Ornaments have no secondary motion.
func EvalOrnament(t *Tuple, id OrnamentID, progress float64) Instance {
	pos, rot := basePose(t, progress)
	return Instance{
		Transform: Transform{Position: pos, Orientation: rot, Scale: Uniform(t.Scale)},
		Color:     t.Color,
	}
}

// LightPulse returns the twinkle scale for light id at elapsed. It is exactly
// 1 when the lights are off.
func LightPulse(id LightID, elapsed float64, lightsOn bool) float64 {
	if !lightsOn {
		return 1
	}
	return 1 + math.Sin(elapsed*lightPulseRate+float64(id))*lightPulseAmp
}

// EvalLight evaluates one bulb, pulsing its scale when the lights are on.
func EvalLight(t *Tuple, id LightID, progress, elapsed float64, lightsOn bool) Instance {
	pos, rot := basePose(t, progress)
	return Instance{
		Transform: Transform{
			Position:    pos,
			Orientation: rot,
			Scale:       Uniform(t.Scale * LightPulse(id, elapsed, lightsOn)),
		},
		Color: t.Color,
	}
}

// EvalPresent evaluates one gift box and its bow. The box tumbles until it
// has nearly settled; the bow rides the box at BowOffset.
func EvalPresent(t *Tuple, id PresentID, progress, elapsed float64) (box, bow Instance) {
	pos, rot := basePose(t, progress)
	if progress < presentSettleAt {
		a := math.Sin(elapsed*presentTumbleRate+float64(id)) * presentTumbleAmp
		rot = rot.Mul(QuatFromEuler(Euler{X: a, Y: a}))
	}
	box = Instance{
		Transform: Transform{Position: pos, Orientation: rot, Scale: Uniform(t.Scale)},
		Color:     t.Color,
	}
	bow = Instance{Transform: BowOffset.Apply(box.Transform), Color: ColorGold}
	return box, bow
}

// StockingSwing returns the swing angle for stocking id at elapsed.
func StockingSwing(id StockingID, elapsed float64) float64 {
	return math.Sin(elapsed*stockingSwingRate+float64(id)) * stockingSwingAmp
}

// EvalStocking evaluates one stocking. Once the target is assembled it swings
// on two axes, phase-shifted by index. The cuff reuses this transform.
func EvalStocking(t *Tuple, id StockingID, progress, elapsed float64, assembled bool) Instance {
	pos, rot := basePose(t, progress)
	if assembled {
		s := StockingSwing(id, elapsed)
		rot = rot.Mul(QuatFromEuler(Euler{X: s, Z: s}))
	}
	return Instance{
		Transform: Transform{Position: pos, Orientation: rot, Scale: Uniform(t.Scale)},
		Color:     t.Color,
	}
}

// WishWobble returns the always-on wobble angle for wish slot at elapsed.
func WishWobble(slot SlotID, elapsed float64) float64 {
	return math.Sin(elapsed*wishWobbleRate+float64(slot)*wishWobblePhase) * wishWobbleAmp
}

// EvalWish evaluates one wish token in slot. The wobble is always applied and
// the scale never changes with progress.
func EvalWish(t *Tuple, slot SlotID, progress, elapsed float64) Instance {
	pos, rot := basePose(t, progress)
	rot = rot.Mul(QuatFromEuler(Euler{Z: WishWobble(slot, elapsed)}))
	return Instance{
		Transform: Transform{Position: pos, Orientation: rot, Scale: Uniform(t.Scale)},
		Color:     t.Color,
	}
}
