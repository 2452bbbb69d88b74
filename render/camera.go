package render

import (
	"math"

	"github.com/phanxgames/evergreen"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Orbit limits for the default camera.
const (
	DefaultMinDistance = 5.0
	DefaultMaxDistance = 14.0
	DefaultMinPolar    = math.Pi / 3
	DefaultMaxPolar    = math.Pi / 2
	DefaultFOV         = 50.0 // vertical, degrees

	nearPlane = 0.1
)

// Camera is a perspective orbit camera looking at Target. Polar is the angle
// from +Y; Azimuth 0 puts the eye on +Z.
type Camera struct {
	Target   evergreen.Vec3
	Distance float64
	Polar    float64
	Azimuth  float64
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Width and Height are the viewport size in pixels.
	Width, Height float64

	MinDistance, MaxDistance float64
	MinPolar, MaxPolar       float64

	zoomTween *gween.Tween
}

// NewCamera returns a camera at eye (0, 1, 9) looking at the origin.
func NewCamera(width, height float64) *Camera {
	eye := evergreen.Vec3{X: 0, Y: 1, Z: 9}
	return &Camera{
		Distance:    eye.Len(),
		Polar:       math.Acos(eye.Y / eye.Len()),
		FOV:         DefaultFOV,
		Width:       width,
		Height:      height,
		MinDistance: DefaultMinDistance,
		MaxDistance: DefaultMaxDistance,
		MinPolar:    DefaultMinPolar,
		MaxPolar:    DefaultMaxPolar,
	}
}

// Eye returns the world-space camera position.
func (c *Camera) Eye() evergreen.Vec3 {
	sp, cp := math.Sincos(c.Polar)
	sa, ca := math.Sincos(c.Azimuth)
	return c.Target.Add(evergreen.Vec3{X: sp * sa, Y: cp, Z: sp * ca}.Scale(c.Distance))
}

// Orbit rotates the eye around Target, clamping the polar angle.
func (c *Camera) Orbit(dAzimuth, dPolar float64) {
	c.Azimuth += dAzimuth
	c.Polar = clamp(c.Polar+dPolar, c.MinPolar, c.MaxPolar)
}

// Zoom moves the eye toward (negative) or away from (positive) Target,
// clamping the distance. Cancels any running ZoomTo.
func (c *Camera) Zoom(delta float64) {
	c.zoomTween = nil
	c.Distance = clamp(c.Distance+delta, c.MinDistance, c.MaxDistance)
}

// ZoomTo animates the distance to d over duration seconds.
func (c *Camera) ZoomTo(d float64, duration float32, fn ease.TweenFunc) {
	d = clamp(d, c.MinDistance, c.MaxDistance)
	c.zoomTween = gween.New(float32(c.Distance), float32(d), duration, fn)
}

// Update advances any running zoom animation.
func (c *Camera) Update(dt float32) {
	if c.zoomTween == nil {
		return
	}
	val, done := c.zoomTween.Update(dt)
	c.Distance = clamp(float64(val), c.MinDistance, c.MaxDistance)
	if done {
		c.zoomTween = nil
	}
}

// focal returns the projection scale in pixels per unit at depth 1.
func (c *Camera) focal() float64 {
	return (c.Height / 2) / math.Tan(c.FOV*math.Pi/360)
}

// projector is a camera snapshot for projecting many points.
type projector struct {
	eye            evergreen.Vec3
	right, up, fwd evergreen.Vec3
	focal          float64
	halfW, halfH   float64
}

func (c *Camera) projector() projector {
	eye := c.Eye()
	fwd := c.Target.Sub(eye).Normalize()
	right := fwd.Cross(evergreen.Vec3{Y: 1}).Normalize()
	return projector{
		eye:   eye,
		right: right,
		up:    right.Cross(fwd),
		fwd:   fwd,
		focal: c.focal(),
		halfW: c.Width / 2,
		halfH: c.Height / 2,
	}
}

func (p *projector) project(v evergreen.Vec3) (sx, sy, depth float64, ok bool) {
	rel := v.Sub(p.eye)
	depth = rel.Dot(p.fwd)
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	f := p.focal / depth
	return p.halfW + rel.Dot(p.right)*f, p.halfH - rel.Dot(p.up)*f, depth, true
}

// Project converts a world-space point to screen coordinates. depth is the
// distance along the view direction; ok is false behind the near plane.
func (c *Camera) Project(v evergreen.Vec3) (sx, sy, depth float64, ok bool) {
	p := c.projector()
	return p.project(v)
}

// ProjectedSize returns the on-screen diameter in pixels of a world-space
// size at depth.
func (c *Camera) ProjectedSize(size, depth float64) float64 {
	if depth < nearPlane {
		return 0
	}
	return size * c.focal() / depth
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
