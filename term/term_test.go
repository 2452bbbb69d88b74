package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/evergreen"
)

func at(x, y, z float64) evergreen.Instance {
	return evergreen.Instance{
		Transform: evergreen.Transform{
			Position:    evergreen.Vec3{X: x, Y: y, Z: z},
			Orientation: evergreen.QuatIdentity,
			Scale:       evergreen.Uniform(1),
		},
		Color: evergreen.ColorGold,
	}
}

func TestCanvasDrawsGlyphAtCenter(t *testing.T) {
	c := NewCanvas(40, 20)
	c.Draw(&evergreen.Frame{Foliage: []evergreen.Instance{at(0, 0, 0)}})
	if got := c.Rune(20, 10); got != '^' {
		t.Errorf("center rune = %q, want '^'", got)
	}
	part, index, ok := c.At(20, 10)
	if !ok || part != evergreen.PartFoliage || index != 0 {
		t.Errorf("At(center) = %v, %d, %v", part, index, ok)
	}
	if _, _, ok := c.At(0, 0); ok {
		t.Error("corner should be empty")
	}
}

func TestCanvasDepthTest(t *testing.T) {
	c := NewCanvas(40, 20)
	f := &evergreen.Frame{
		Foliage:   []evergreen.Instance{at(0, 0, 0)},
		Ornaments: []evergreen.Instance{at(0, 0, -1)},
		Stockings: []evergreen.Instance{at(0, 0, 1)},
	}
	c.Draw(f)
	if got := c.Rune(20, 10); got != 'J' {
		t.Errorf("center rune = %q, want nearest 'J'", got)
	}

	f.Stockings = nil
	c.Draw(f)
	if got := c.Rune(20, 10); got != '^' {
		t.Errorf("center rune = %q, want '^' in front of the ornament", got)
	}
}

func TestCanvasUpIsUp(t *testing.T) {
	c := NewCanvas(40, 20)
	c.Draw(&evergreen.Frame{Wishes: []evergreen.Instance{at(0, 2, 0)}})
	found := false
	for y := 0; y < 10; y++ {
		if c.Rune(20, y) == '♥' {
			found = true
		}
	}
	if !found {
		t.Error("wish above the origin should land in the top half")
	}
}

func TestCanvasClipsOffscreen(t *testing.T) {
	c := NewCanvas(40, 20)
	c.Draw(&evergreen.Frame{Foliage: []evergreen.Instance{at(100, 0, 0), at(0, 0, 20)}})
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if c.Rune(x, y) != ' ' {
				t.Fatalf("unexpected glyph at %d,%d", x, y)
			}
		}
	}
}

func TestCanvasTopperHiddenWhenSmall(t *testing.T) {
	c := NewCanvas(40, 20)
	f := &evergreen.Frame{Topper: evergreen.Transform{Scale: evergreen.Uniform(0.1)}}
	c.Draw(f)
	if c.Rune(20, 10) != ' ' {
		t.Error("shrunk topper should not draw")
	}
	f.Topper.Scale = evergreen.Uniform(1)
	c.Draw(f)
	if c.Rune(20, 10) != '★' {
		t.Errorf("topper rune = %q", c.Rune(20, 10))
	}
}

func TestSinkFlushesToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(40, 20)

	sink := NewSink(screen)
	sink.Submit(&evergreen.Frame{Presents: []evergreen.Instance{at(0, 0, 0)}})

	w, h := sink.Canvas().Size()
	if w != 40 || h != 20 {
		t.Fatalf("canvas size = %dx%d", w, h)
	}
	r, _, _, _ := screen.GetContent(20, 10)
	if r != '#' {
		t.Errorf("screen rune = %q, want '#'", r)
	}
}

func TestChannel(t *testing.T) {
	cases := map[float64]int32{-1: 0, 0: 0, 0.5: 128, 1: 255, 2: 255}
	for in, want := range cases {
		if got := channel(in); got != want {
			t.Errorf("channel(%v) = %d, want %d", in, got, want)
		}
	}
}
