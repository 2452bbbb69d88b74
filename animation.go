package evergreen

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween timings for presentation values that follow engine state changes.
const (
	topperInDuration  = 0.8
	topperOutDuration = 0.35
	glowDuration      = 0.4
)

// ScalarTween animates a single float64 toward a target with gween. Retarget
// starts from the current value, so a toggle mid-animation reverses smoothly.
//
// There is no global tween manager; the Engine updates its tweens each Step.
type ScalarTween struct {
	tween *gween.Tween
	value float64
	done  bool
}

// NewScalarTween returns a tween at rest on value.
func NewScalarTween(value float64) *ScalarTween {
	return &ScalarTween{value: value, done: true}
}

// Retarget begins animating from the current value to to over duration
// seconds using fn.
func (s *ScalarTween) Retarget(to float64, duration float32, fn ease.TweenFunc) {
	s.tween = gween.New(float32(s.value), float32(to), duration, fn)
	s.done = false
}

// Update advances the tween by dt seconds.
func (s *ScalarTween) Update(dt float32) {
	if s.done || s.tween == nil {
		return
	}
	val, finished := s.tween.Update(dt)
	s.value = float64(val)
	s.done = finished
}

// Value returns the current animated value.
func (s *ScalarTween) Value() float64 {
	return s.value
}

// Done reports whether the tween has reached its target.
func (s *ScalarTween) Done() bool {
	return s.done
}

// topperTween pops the star in with overshoot and drops it out quickly.
func topperTween(s *ScalarTween, assembled bool) {
	if assembled {
		s.Retarget(1, topperInDuration, ease.OutBack)
		return
	}
	s.Retarget(0, topperOutDuration, ease.InQuad)
}

// glowTween fades light emission on or off.
func glowTween(s *ScalarTween, on bool) {
	if on {
		s.Retarget(1, glowDuration, ease.OutQuad)
		return
	}
	s.Retarget(0, glowDuration, ease.InQuad)
}
