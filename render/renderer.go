// Package render draws evergreen frames with Ebitengine.
//
// Each instance is projected through a perspective orbit [Camera] and drawn as
// a flat colored quad, depth sorted back to front and batched into
// DrawTriangles32 calls. Renderer implements [evergreen.Sink].
package render

import (
	"cmp"
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/evergreen"
)

// World-space quad sizes per part, before instance scale.
var partSize = [evergreen.NumParts]float64{
	evergreen.PartFoliage:  0.12,
	evergreen.PartOrnament: 0.3,
	evergreen.PartLight:    0.12,
	evergreen.PartPresent:  0.4,
	evergreen.PartBow:      0.3,
	evergreen.PartStocking: 0.55,
	evergreen.PartCuff:     0.45,
	evergreen.PartWish:     0.9,
	evergreen.PartTopper:   1.2,
}

// cuffAnchor is the cuff center in stocking-local space.
var cuffAnchor = evergreen.Vec3{X: 0.17, Y: 0.62, Z: 0.05}

// dimLights is the light brightness with glow at zero.
const dimLights = 0.35

// drawItem is one projected quad.
type drawItem struct {
	x, y, depth float64
	size        float64
	color       evergreen.Color
	part        evergreen.Part
	index       int
}

// Hit identifies the instance under a screen point.
type Hit struct {
	Part  evergreen.Part
	Index int
}

// Renderer projects frames and draws them. Submit does only math, so it can
// run in Update; Draw issues the GPU work.
type Renderer struct {
	Camera *Camera
	// ClearColor fills the screen before drawing. Zero alpha skips the fill.
	ClearColor color.Color
	// ShowFPS overlays FPS/TPS and frame stats.
	ShowFPS bool
	// SnapshotDir receives Snapshot captures. Defaults to "snapshots".
	SnapshotDir string

	items    []drawItem
	verts    []ebiten.Vertex
	inds     []uint32
	white    *ebiten.Image
	progress float64
	wishes   int

	snapshots []string
}

// NewRenderer returns a renderer drawing through cam.
func NewRenderer(cam *Camera) *Renderer {
	return &Renderer{
		Camera:     cam,
		ClearColor: color.RGBA{0x06, 0x14, 0x0e, 0xff},
	}
}

// Submit implements evergreen.Sink. It projects every instance of f and sorts
// the result back to front.
func (r *Renderer) Submit(f *evergreen.Frame) {
	r.items = r.items[:0]
	r.progress = f.Progress
	r.wishes = len(f.Wishes)
	proj := r.Camera.projector()
	group := evergreen.RotationY(f.Rotation)

	add := func(part evergreen.Part, i int, pos evergreen.Vec3, scale float64, c evergreen.Color) {
		x, y, depth, ok := proj.project(group.TransformPoint(pos))
		if !ok {
			return
		}
		size := partSize[part] * scale * proj.focal / depth
		if size <= 0 {
			return
		}
		r.items = append(r.items, drawItem{x: x, y: y, depth: depth, size: size, color: c, part: part, index: i})
	}
	each := func(part evergreen.Part, src []evergreen.Instance) {
		for i := range src {
			add(part, i, src[i].Position, src[i].Scale.X, src[i].Color)
		}
	}

	each(evergreen.PartFoliage, f.Foliage)
	each(evergreen.PartOrnament, f.Ornaments)
	lightScale := dimLights + (1-dimLights)*f.LightGlow
	for i := range f.Lights {
		l := &f.Lights[i]
		add(evergreen.PartLight, i, l.Position, l.Scale.X, scaleColor(l.Color, lightScale))
	}
	each(evergreen.PartPresent, f.Presents)
	each(evergreen.PartBow, f.Bows)
	each(evergreen.PartStocking, f.Stockings)
	for i := range f.Stockings {
		s := &f.Stockings[i]
		add(evergreen.PartCuff, i, s.Matrix().TransformPoint(cuffAnchor), s.Scale.X, evergreen.ColorSnow)
	}
	each(evergreen.PartWish, f.Wishes)
	if f.Topper.Scale.X > 0 {
		add(evergreen.PartTopper, 0, f.Topper.Position, f.Topper.Scale.X, evergreen.ColorGold)
	}

	slices.SortStableFunc(r.items, func(a, b drawItem) int {
		return cmp.Compare(b.depth, a.depth)
	})
}

// Pick returns the nearest instance whose quad contains (x, y).
func (r *Renderer) Pick(x, y float64) (Hit, bool) {
	return r.pick(x, y, func(evergreen.Part) bool { return true })
}

// PickClickable is like Pick but only reports presents, stockings, and wish
// tokens, the parts that open something when clicked.
func (r *Renderer) PickClickable(x, y float64) (Hit, bool) {
	return r.pick(x, y, func(p evergreen.Part) bool {
		return p == evergreen.PartPresent || p == evergreen.PartStocking || p == evergreen.PartWish
	})
}

// pick walks items front to back.
func (r *Renderer) pick(x, y float64, accept func(evergreen.Part) bool) (Hit, bool) {
	for i := len(r.items) - 1; i >= 0; i-- {
		it := &r.items[i]
		if !accept(it.part) {
			continue
		}
		half := it.size / 2
		if x >= it.x-half && x <= it.x+half && y >= it.y-half && y <= it.y+half {
			return Hit{Part: it.part, Index: it.index}, true
		}
	}
	return Hit{}, false
}

// Draw renders the last submitted frame onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	if r.ClearColor != nil {
		if _, _, _, a := r.ClearColor.RGBA(); a > 0 {
			screen.Fill(r.ClearColor)
		}
	}
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	for i := range r.items {
		r.appendQuad(&r.items[i])
	}
	if len(r.verts) > 0 {
		var op ebiten.DrawTrianglesOptions
		op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		screen.DrawTriangles32(r.verts, r.inds, r.white, &op)
	}

	if r.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f\nTPS: %.1f\nquads: %d\nprogress: %.3f\nwishes: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), len(r.items), r.progress, r.wishes))
	}
	r.flushSnapshots(screen)
}

// appendQuad emits a screen-aligned quad centered on it.
func (r *Renderer) appendQuad(it *drawItem) {
	half := it.size / 2
	x0, y0 := float32(it.x-half), float32(it.y-half)
	x1, y1 := float32(it.x+half), float32(it.y+half)
	cr, cg, cb := float32(it.color.R), float32(it.color.G), float32(it.color.B)

	base := uint32(len(r.verts))
	for _, p := range [4][2]float32{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   p[0],
			DstY:   p[1],
			SrcX:   1.5,
			SrcY:   1.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: 1,
		})
	}
	// Two triangles: TL-TR-BL, TR-BR-BL
	r.inds = append(r.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

func scaleColor(c evergreen.Color, s float64) evergreen.Color {
	return evergreen.Color{R: c.R * s, G: c.G * s, B: c.B * s}
}
