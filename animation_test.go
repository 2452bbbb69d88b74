package evergreen

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestScalarTweenReachesTarget(t *testing.T) {
	s := NewScalarTween(0)
	s.Retarget(1, 0.5, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	s.Update(0.25)
	if math.Abs(s.Value()-0.5) > 1e-3 {
		t.Errorf("mid value = %v, want ~0.5", s.Value())
	}
	if s.Done() {
		t.Error("tween finished early")
	}
	s.Update(0.25)
	if !s.Done() {
		t.Fatal("expected Done after full duration")
	}
	if s.Value() != 1 {
		t.Errorf("value = %v, want 1", s.Value())
	}
}

func TestScalarTweenAtRest(t *testing.T) {
	s := NewScalarTween(0.7)
	if !s.Done() {
		t.Error("new tween should be done")
	}
	s.Update(1)
	if s.Value() != 0.7 {
		t.Errorf("value = %v, want 0.7", s.Value())
	}
}

func TestScalarTweenRetargetMidFlight(t *testing.T) {
	s := NewScalarTween(0)
	s.Retarget(1, 1, ease.Linear)
	s.Update(0.5)
	mid := s.Value()
	s.Retarget(0, 1, ease.Linear)
	s.Update(0.01)
	if s.Value() > mid || s.Value() < mid-0.05 {
		t.Errorf("value after reversal = %v, want just below %v", s.Value(), mid)
	}
}

func TestTopperTweenOvershoots(t *testing.T) {
	s := NewScalarTween(0)
	topperTween(s, true)
	peak := 0.0
	for i := 0; i < 60; i++ {
		s.Update(1.0 / 60)
		peak = math.Max(peak, s.Value())
	}
	if peak <= 1 {
		t.Errorf("peak = %v, want overshoot above 1", peak)
	}
	if !s.Done() || s.Value() != 1 {
		t.Errorf("after 1s value = %v done = %v", s.Value(), s.Done())
	}

	topperTween(s, false)
	s.Update(0.2)
	s.Update(0.2)
	if s.Value() != 0 {
		t.Errorf("topper out value = %v, want 0", s.Value())
	}
}

func TestGlowTween(t *testing.T) {
	s := NewScalarTween(1)
	glowTween(s, false)
	s.Update(0.2)
	if v := s.Value(); v <= 0 || v >= 1 {
		t.Errorf("mid fade = %v", v)
	}
	s.Update(0.2)
	if s.Value() != 0 {
		t.Errorf("faded value = %v, want 0", s.Value())
	}
}
