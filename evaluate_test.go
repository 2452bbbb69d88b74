package evergreen

import (
	"math"
	"testing"
)

func sampleTuple() Tuple {
	return Tuple{
		ScatterPosition:      Vec3{3.3, -7.1, 12.9},
		ScatterOrientation:   QuatFromEuler(Euler{X: 1.1, Y: 2.2}),
		AssembledPosition:    Vec3{0.7, 1.3, -0.4},
		AssembledOrientation: QuatFromEuler(Euler{Y: -0.8}),
		Scale:                0.75,
		Color:                ColorGold,
	}
}

func TestOrnamentEndpointsExact(t *testing.T) {
	tu := sampleTuple()
	at0 := EvalOrnament(&tu, 0, 0)
	if at0.Position != tu.ScatterPosition || at0.Orientation != tu.ScatterOrientation {
		t.Errorf("progress 0 = %+v, want scattered pose exactly", at0.Transform)
	}
	at1 := EvalOrnament(&tu, 0, 1)
	if at1.Position != tu.AssembledPosition || at1.Orientation != tu.AssembledOrientation {
		t.Errorf("progress 1 = %+v, want assembled pose exactly", at1.Transform)
	}
	if at1.Scale != Uniform(0.75) {
		t.Errorf("scale = %+v", at1.Scale)
	}
}

func TestFoliageBob(t *testing.T) {
	tu := sampleTuple()
	base, _ := basePose(&tu, 0.3)
	got := EvalFoliage(&tu, 4, 0.3, 2.0)
	assertNear(t, "bob Y", got.Position.Y-base.Y, math.Sin(2.0+4)*foliageBobAmp)

	// No bob once mostly assembled.
	at1 := EvalFoliage(&tu, 4, 1, 2.0)
	if at1.Position != tu.AssembledPosition {
		t.Errorf("assembled foliage = %+v, want %+v", at1.Position, tu.AssembledPosition)
	}
	at06 := EvalFoliage(&tu, 4, 0.6, 2.0)
	base06, _ := basePose(&tu, 0.6)
	if at06.Position != base06 {
		t.Error("foliage should not bob at progress 0.6")
	}
}

func TestLightPulse(t *testing.T) {
	if got := LightPulse(17, 3.21, false); got != 1 {
		t.Errorf("pulse with lights off = %v, want exactly 1", got)
	}
	a := LightPulse(0, 0, true)
	b := LightPulse(1, 0, true)
	if a == b {
		t.Error("lights with different indices should pulse out of phase")
	}
	assertNear(t, "pulse 1", b, 1+math.Sin(1)*lightPulseAmp)

	tu := sampleTuple()
	off := EvalLight(&tu, 5, 1, 9.9, false)
	if off.Scale != Uniform(tu.Scale) {
		t.Errorf("light off scale = %+v, want %v", off.Scale, tu.Scale)
	}
	on := EvalLight(&tu, 5, 1, 9.9, true)
	assertNear(t, "light on scale", on.Scale.X, tu.Scale*LightPulse(5, 9.9, true))
}

func TestPresentTumbleStopsWhenSettled(t *testing.T) {
	tu := sampleTuple()
	box, _ := EvalPresent(&tu, 0, 0.5, 1)
	_, base := basePose(&tu, 0.5)
	if box.Orientation.SameRotation(base, 1e-9) {
		t.Error("present should tumble below 0.9 progress")
	}
	a := math.Sin(1*presentTumbleRate) * presentTumbleAmp
	if want := base.Mul(QuatFromEuler(Euler{X: a, Y: a})); !box.Orientation.SameRotation(want, 1e-12) {
		t.Errorf("tumble = %+v, want %+v", box.Orientation, want)
	}

	settled, _ := EvalPresent(&tu, 0, 0.95, 1)
	_, base95 := basePose(&tu, 0.95)
	if settled.Orientation != base95 {
		t.Error("present should not tumble at 0.95 progress")
	}
}

func TestBowRidesPresent(t *testing.T) {
	tu := sampleTuple()
	for _, p := range []float64{0, 0.4, 1} {
		box, bow := EvalPresent(&tu, 2, p, 0.7)
		want := box.Matrix().Mul(Compose(BowOffset.Position, BowOffset.Orientation, Uniform(BowOffset.Scale)))
		assertMat(t, "bow", bow.Matrix(), want)
		if bow.Color != ColorGold {
			t.Errorf("bow color = %+v", bow.Color)
		}
	}
}

func TestStockingSwingOnlyWhenAssembled(t *testing.T) {
	tu := sampleTuple()
	_, base := basePose(&tu, 0.5)

	loose := EvalStocking(&tu, 1, 0.5, 0.8, false)
	if loose.Orientation != base {
		t.Error("stocking should not swing while target is scattered")
	}

	hung := EvalStocking(&tu, 1, 0.5, 0.8, true)
	s := StockingSwing(1, 0.8)
	want := base.Mul(QuatFromEuler(Euler{X: s, Z: s}))
	if !hung.Orientation.SameRotation(want, 1e-12) {
		t.Errorf("swing = %+v, want %+v", hung.Orientation, want)
	}
	assertNear(t, "swing", s, math.Sin(0.8*stockingSwingRate+1)*stockingSwingAmp)
}

func TestWishWobbleAlwaysOn(t *testing.T) {
	tu := sampleTuple()
	tu.Scale = wishTokenScale
	for _, p := range []float64{0, 0.5, 1} {
		got := EvalWish(&tu, 3, p, 1.25)
		_, base := basePose(&tu, p)
		want := base.Mul(QuatFromEuler(Euler{Z: WishWobble(3, 1.25)}))
		if !got.Orientation.SameRotation(want, 1e-12) {
			t.Errorf("progress %v: orientation = %+v, want %+v", p, got.Orientation, want)
		}
		if got.Scale != Uniform(wishTokenScale) {
			t.Errorf("progress %v: scale = %+v", p, got.Scale)
		}
	}
	if WishWobble(0, 1) == WishWobble(1, 1) {
		t.Error("wish slots should wobble out of phase")
	}
}

func TestLocalOffsetIdentity(t *testing.T) {
	parent := Transform{Position: Vec3{1, 2, 3}, Orientation: QuatFromEuler(Euler{Y: 1}), Scale: Uniform(2)}
	got := LocalOffset{Orientation: QuatIdentity, Scale: 1}.Apply(parent)
	assertMat(t, "identity offset", got.Matrix(), parent.Matrix())
}
