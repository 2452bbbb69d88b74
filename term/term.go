// Package term renders evergreen frames to a terminal with tcell.
//
// Instances are projected with a simple perspective camera facing -Z, drawn
// as one glyph per instance with a depth buffer so nearer elements win.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/evergreen"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// viewHeight is the world-space height that fills the canvas at the origin.
const viewHeight = 10.0

// eyeDistance is how far the eye sits on +Z.
const eyeDistance = 12.0

var background = tcell.NewRGBColor(6, 10, 40)

// glyph is the rune drawn for each part.
var glyph = [evergreen.NumParts]rune{
	evergreen.PartFoliage:  '^',
	evergreen.PartOrnament: 'o',
	evergreen.PartLight:    '*',
	evergreen.PartPresent:  '#',
	evergreen.PartBow:      '+',
	evergreen.PartStocking: 'J',
	evergreen.PartWish:     '♥',
	evergreen.PartTopper:   '★',
}

type cell struct {
	r     rune
	color evergreen.Color
	part  evergreen.Part
	index int
}

// Canvas is a glyph grid with a depth buffer.
type Canvas struct {
	w, h  int
	cells []cell
	depth []float64
}

// NewCanvas returns an empty w x h canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the canvas if the size changed and clears it.
func (c *Canvas) Resize(w, h int) {
	if w != c.w || h != c.h {
		c.w, c.h = w, h
		c.cells = make([]cell, w*h)
		c.depth = make([]float64, w*h)
	}
	c.Clear()
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
		c.depth[i] = math.Inf(1)
	}
}

// Rune returns the glyph at (x, y), or ' ' outside the canvas.
func (c *Canvas) Rune(x, y int) rune {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return ' '
	}
	return c.cells[y*c.w+x].r
}

// At returns the part and index drawn at (x, y).
func (c *Canvas) At(x, y int) (evergreen.Part, int, bool) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0, 0, false
	}
	cl := c.cells[y*c.w+x]
	if cl.r == ' ' {
		return 0, 0, false
	}
	return cl.part, cl.index, true
}

// project maps a world point to a cell. depth grows away from the eye.
func (c *Canvas) project(p evergreen.Vec3) (x, y int, depth float64, ok bool) {
	depth = eyeDistance - p.Z
	if depth <= 0.1 {
		return 0, 0, 0, false
	}
	scale := float64(c.h) / viewHeight * eyeDistance / depth
	fx := float64(c.w)/2 + p.X*scale*cellAspect
	fy := float64(c.h)/2 - p.Y*scale
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0, 0, 0, false
	}
	return x, y, depth, true
}

// plot draws part at world point p if it is nearer than what is there.
func (c *Canvas) plot(p evergreen.Vec3, part evergreen.Part, index int, col evergreen.Color) {
	x, y, depth, ok := c.project(p)
	if !ok {
		return
	}
	i := y*c.w + x
	if depth >= c.depth[i] {
		return
	}
	c.depth[i] = depth
	c.cells[i] = cell{r: glyph[part], color: col, part: part, index: index}
}

// Draw rasterizes f into the canvas.
func (c *Canvas) Draw(f *evergreen.Frame) {
	c.Clear()
	group := evergreen.RotationY(f.Rotation)
	each := func(part evergreen.Part, src []evergreen.Instance) {
		for i := range src {
			c.plot(group.TransformPoint(src[i].Position), part, i, src[i].Color)
		}
	}
	each(evergreen.PartFoliage, f.Foliage)
	each(evergreen.PartOrnament, f.Ornaments)
	for i := range f.Lights {
		col := f.Lights[i].Color
		if !f.LightsOn {
			col = evergreen.Color{R: col.R * 0.35, G: col.G * 0.35, B: col.B * 0.35}
		}
		c.plot(group.TransformPoint(f.Lights[i].Position), evergreen.PartLight, i, col)
	}
	each(evergreen.PartPresent, f.Presents)
	each(evergreen.PartBow, f.Bows)
	each(evergreen.PartStocking, f.Stockings)
	each(evergreen.PartWish, f.Wishes)
	if f.Topper.Scale.X > 0.5 {
		c.plot(group.TransformPoint(f.Topper.Position), evergreen.PartTopper, 0, evergreen.ColorGold)
	}
}

// Flush copies the canvas to screen and shows it.
func (c *Canvas) Flush(screen tcell.Screen) {
	bg := tcell.StyleDefault.Background(background)
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			st := bg
			if cl.r != ' ' {
				st = st.Foreground(rgb(cl.color))
			}
			screen.SetContent(x, y, cl.r, nil, st)
		}
	}
	screen.Show()
}

func rgb(c evergreen.Color) tcell.Color {
	return tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int32 {
	return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Sink draws every submitted frame to a tcell screen, resizing the canvas to
// the screen each frame.
type Sink struct {
	screen tcell.Screen
	canvas *Canvas
}

// NewSink returns a Sink drawing to screen.
func NewSink(screen tcell.Screen) *Sink {
	w, h := screen.Size()
	return &Sink{screen: screen, canvas: NewCanvas(w, h)}
}

// Canvas returns the sink's canvas for hit testing.
func (s *Sink) Canvas() *Canvas { return s.canvas }

// Submit implements evergreen.Sink.
func (s *Sink) Submit(f *evergreen.Frame) {
	w, h := s.screen.Size()
	s.canvas.Resize(w, h)
	s.canvas.Draw(f)
	s.canvas.Flush(s.screen)
}
