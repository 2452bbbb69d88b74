package evergreen

import (
	"math"
	"math/rand/v2"
)

// goldenAngle is the angular step that spaces spiral points without clustering.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

const (
	foliageTurns    = 50  // accumulated spiral angle over the full height
	foliageJitter   = 0.2 // positional jitter on X/Z
	lightTurns      = 15
	stockingTurns   = 5 // golden-angle multiplier for stockings
	stockingOffset  = 0.2
	ornamentInset   = 0.3
	wishSlotOutset  = 0.4
	presentRingMin  = 1.5
	presentRingSpan = 2.0
	wishTokenScale  = 0.4
)

// Default element colors.
var (
	ColorEmerald  = Hex(0x004d25)
	ColorGold     = Hex(0xffd700)
	ColorWarm     = Hex(0xfff2b0)
	ColorSantaRed = Hex(0xee1111)
	ColorSnow     = Hex(0xffffff)
	ColorRoseGold = Hex(0xff99aa)
)

// presentPalette is the fixed wrapping-paper palette; one entry is drawn per
// present at generation time.
var presentPalette = []Color{
	Hex(0xff3333),
	Hex(0x22aa44),
	Hex(0x3366ff),
	Hex(0xffaa00),
	Hex(0xaa00aa),
}

// Tuple is the frozen per-element record of scattered and assembled pose.
// Tuples are generated once and never mutated.
type Tuple struct {
	ScatterPosition      Vec3
	ScatterOrientation   Quat
	AssembledPosition    Vec3
	AssembledOrientation Quat
	Scale                float64
	Color                Color
}

// Shape holds the silhouette dimensions shared by all generators.
type Shape struct {
	// ScatterRadius is the radius of the sphere the scattered cloud lies on.
	ScatterRadius float64
	// Height is the assembled tree height, centered on y=0.
	Height float64
	// Radius is the cone radius at the base of the tree.
	Radius float64
}

// coneRadius returns the cone radius at height y for a cone whose base radius
// is base, shrinking linearly to zero at the apex.
func (s Shape) coneRadius(y, base float64) float64 {
	h := (y + s.Height/2) / s.Height
	return base * (1 - h)
}

// GenerateLayout dispatches to the category's generator.
func GenerateLayout(c Category, n int, shape Shape, rng *rand.Rand) []Tuple {
	switch c {
	case CategoryFoliage:
		return GenerateFoliage(n, shape, rng)
	case CategoryOrnament:
		return GenerateOrnaments(n, shape, rng)
	case CategoryLight:
		return GenerateLights(n, shape, rng)
	case CategoryPresent:
		return GeneratePresents(n, shape, rng)
	case CategoryStocking:
		return GenerateStockings(n, shape, rng)
	case CategoryWishToken:
		return GenerateWishSlots(n, shape, rng)
	}
	return nil
}

// scatterPoint samples a point uniformly on a sphere of radius r. Latitude is
// drawn through acos so points do not cluster at the poles.
func scatterPoint(rng *rand.Rand, r float64) Vec3 {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*rng.Float64() - 1)
	sinPhi, cosPhi := math.Sincos(phi)
	return Vec3{
		X: r * sinPhi * math.Cos(theta),
		Y: r * sinPhi * math.Sin(theta),
		Z: r * cosPhi,
	}
}

// scatterOrientation draws a random tumble orientation for the cloud.
func scatterOrientation(rng *rand.Rand) Quat {
	return QuatFromEuler(Euler{X: rng.Float64() * math.Pi, Y: rng.Float64() * math.Pi})
}

// ring returns the point at angle on a horizontal circle of radius r at height y.
func ring(angle, r, y float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{c * r, y, s * r}
}

// GenerateFoliage wraps needles around the cone in a tight spiral from base to
// apex. Needles yaw to follow the spiral tangent.
func GenerateFoliage(n int, shape Shape, rng *rand.Rand) []Tuple {
	out := make([]Tuple, n)
	for i := range out {
		scatter := scatterPoint(rng, shape.ScatterRadius)
		scatterRot := scatterOrientation(rng)

		t := float64(i) / float64(n)
		y := t*shape.Height - shape.Height/2
		r := shape.Radius * (1 - t)
		angle := t * foliageTurns

		pos := ring(angle, r, y)
		pos.X += (rng.Float64() - 0.5) * foliageJitter
		pos.Z += (rng.Float64() - 0.5) * foliageJitter
		tilt := math.Pi/4 + (rng.Float64()-0.5)*0.5

		out[i] = Tuple{
			ScatterPosition:      scatter,
			ScatterOrientation:   scatterRot,
			AssembledPosition:    pos,
			AssembledOrientation: QuatFromEuler(Euler{Y: -angle, Z: tilt}),
			Scale:                1,
			Color:                ColorEmerald,
		}
	}
	return out
}

// GenerateOrnaments hangs baubles at random heights and angles just inside the
// cone surface.
func GenerateOrnaments(n int, shape Shape, rng *rand.Rand) []Tuple {
	out := make([]Tuple, n)
	span := shape.Height - 1
	for i := range out {
		scatter := scatterPoint(rng, shape.ScatterRadius)
		y := rng.Float64()*span - span/2
		r := shape.coneRadius(y, shape.Radius-ornamentInset) + ornamentInset
		angle := rng.Float64() * 2 * math.Pi

		out[i] = Tuple{
			ScatterPosition:      scatter,
			ScatterOrientation:   QuatIdentity,
			AssembledPosition:    ring(angle, r, y),
			AssembledOrientation: QuatIdentity,
			Scale:                rng.Float64()*0.5 + 0.5,
			Color:                ColorGold,
		}
	}
	return out
}

// GenerateLights strings bulbs in an evenly phase-stepped spiral slightly
// outside the foliage.
func GenerateLights(n int, shape Shape, rng *rand.Rand) []Tuple {
	out := make([]Tuple, n)
	for i := range out {
		scatter := scatterPoint(rng, shape.ScatterRadius)
		t := float64(i) / float64(n)
		y := t*shape.Height - (shape.Height/2 - 0.1)
		r := (shape.Radius+0.1)*(1-t) + 0.1

		out[i] = Tuple{
			ScatterPosition:      scatter,
			ScatterOrientation:   QuatIdentity,
			AssembledPosition:    ring(t*lightTurns, r, y),
			AssembledOrientation: QuatIdentity,
			Scale:                1,
			Color:                ColorWarm,
		}
	}
	return out
}

// GeneratePresents places gift boxes on the floor in a band around the trunk,
// evenly spaced by angle with jitter, each wrapped in a palette color.
func GeneratePresents(n int, shape Shape, rng *rand.Rand) []Tuple {
	out := make([]Tuple, n)
	floor := -(shape.Height/2 + 0.3)
	for i := range out {
		scatter := scatterPoint(rng, shape.ScatterRadius)
		scatterRot := scatterOrientation(rng)

		r := presentRingMin + rng.Float64()*presentRingSpan
		angle := float64(i)/float64(n)*2*math.Pi + (rng.Float64() - 0.5)
		yaw := rng.Float64() * 2 * math.Pi
		scale := 0.6 + rng.Float64()*0.4
		color := presentPalette[rng.IntN(len(presentPalette))]

		out[i] = Tuple{
			ScatterPosition:      scatter,
			ScatterOrientation:   scatterRot,
			AssembledPosition:    ring(angle, r, floor),
			AssembledOrientation: QuatFromEuler(Euler{Y: yaw}),
			Scale:                scale,
			Color:                color,
		}
	}
	return out
}

// GenerateStockings spreads stockings over the lower two thirds of the tree on
// a golden-angle spiral, pushed out past the foliage and facing outward.
func GenerateStockings(n int, shape Shape, rng *rand.Rand) []Tuple {
	out := make([]Tuple, n)
	bottom := -shape.Height * 2.5 / 7
	span := shape.Height * 4 / 7
	for i := range out {
		scatter := scatterPoint(rng, shape.ScatterRadius)
		scatterRot := scatterOrientation(rng)

		y := bottom
		if n > 1 {
			y += float64(i) / float64(n-1) * span
		}
		r := shape.coneRadius(y, shape.Radius) + stockingOffset
		angle := float64(i) * goldenAngle * stockingTurns

		out[i] = Tuple{
			ScatterPosition:      scatter,
			ScatterOrientation:   scatterRot,
			AssembledPosition:    ring(angle, r, y),
			AssembledOrientation: QuatFromEuler(Euler{Y: -angle - math.Pi/2}),
			Scale:                0.5 + rng.Float64()*0.3,
			Color:                ColorSantaRed,
		}
	}
	return out
}

// GenerateWishSlots lays the wish slot pool out on a golden-angle spiral from
// bottom to top, then shuffles it so slot order does not read bottom-up.
func GenerateWishSlots(n int, shape Shape, rng *rand.Rand) []Tuple {
	out := make([]Tuple, n)
	span := shape.Height - 1
	for i := range out {
		scatter := scatterPoint(rng, shape.ScatterRadius)
		scatterRot := scatterOrientation(rng)

		t := float64(i) / float64(n)
		y := t*span - span/2
		r := shape.coneRadius(y, shape.Radius-ornamentInset) + wishSlotOutset
		angle := float64(i) * goldenAngle

		out[i] = Tuple{
			ScatterPosition:      scatter,
			ScatterOrientation:   scatterRot,
			AssembledPosition:    ring(angle, r, y),
			AssembledOrientation: QuatFromEuler(Euler{Y: -angle - math.Pi/2}),
			Scale:                wishTokenScale,
			Color:                ColorRoseGold,
		}
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
