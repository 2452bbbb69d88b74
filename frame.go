package evergreen

// Frame is the complete evaluated state for one tick. Evaluators write only
// their own category slice; sinks read a Frame after Engine.Step returns and
// must not retain it past the next Step.
type Frame struct {
	Elapsed float64
	Delta   float64

	// Progress is the assembly progress every instance in this frame used.
	Progress float64
	// Rotation is the whole-assembly yaw applied on top of every instance.
	Rotation  float64
	Assembled bool

	// LightsOn drives emissive light materials; LightGlow is its tweened
	// intensity in [0, 1].
	LightsOn  bool
	LightGlow float64

	// Topper is the star pose; its scale tweens between 0 and 1.
	Topper Transform

	Foliage   []Instance
	Ornaments []Instance
	Lights    []Instance
	Presents  []Instance
	// Bows holds one bow per present at the same index.
	Bows      []Instance
	Stockings []Instance
	// Wishes holds only the visible wish tokens; len(Wishes) is the live count.
	Wishes []Instance
}

// newFrame preallocates every slice at its configured capacity.
func newFrame(cfg Config) *Frame {
	return &Frame{
		Foliage:   make([]Instance, cfg.Foliage),
		Ornaments: make([]Instance, cfg.Ornaments),
		Lights:    make([]Instance, cfg.Lights),
		Presents:  make([]Instance, cfg.Presents),
		Bows:      make([]Instance, cfg.Presents),
		Stockings: make([]Instance, cfg.Stockings),
		Wishes:    make([]Instance, 0, cfg.WishCapacity),
	}
}

// Instances returns the evaluated instances for category.
func (f *Frame) Instances(c Category) []Instance {
	switch c {
	case CategoryFoliage:
		return f.Foliage
	case CategoryOrnament:
		return f.Ornaments
	case CategoryLight:
		return f.Lights
	case CategoryPresent:
		return f.Presents
	case CategoryStocking:
		return f.Stockings
	case CategoryWishToken:
		return f.Wishes
	}
	return nil
}

// LiveCount returns how many instances of category are drawn this frame.
func (f *Frame) LiveCount(c Category) int {
	return len(f.Instances(c))
}

// Sink consumes one evaluated frame. Implementations copy what they need
// into their own buffer format.
type Sink interface {
	Submit(f *Frame)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(f *Frame)

// Submit calls fn(f).
func (fn SinkFunc) Submit(f *Frame) { fn(f) }
