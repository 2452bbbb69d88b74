package evergreen

// Part identifies one instanced mesh fed by a frame. Accessories that share a
// parent pose (ribbons, cuffs) get their own part so each mesh has a buffer.
type Part uint8

const (
	PartFoliage Part = iota
	PartOrnament
	PartLight
	PartPresent
	PartRibbon // same matrix as the present
	PartBow
	PartStocking
	PartCuff // same matrix as the stocking
	PartWish
	PartTopper

	NumParts
)

// partBuffer is a packed float32 instance stream for one mesh.
type partBuffer struct {
	matrices []float32 // 16 per instance, column-major
	colors   []float32 // 3 per instance
	count    int
}

// InstanceBuffer collates frames into per-part matrix and color streams, the
// layout GPU instancing APIs expect. Capacities are fixed at construction;
// writes past capacity are dropped.
type InstanceBuffer struct {
	parts [NumParts]partBuffer
}

// NewInstanceBuffer allocates buffers sized for cfg.
func NewInstanceBuffer(cfg Config) *InstanceBuffer {
	caps := [NumParts]int{
		PartFoliage:  cfg.Foliage,
		PartOrnament: cfg.Ornaments,
		PartLight:    cfg.Lights,
		PartPresent:  cfg.Presents,
		PartRibbon:   cfg.Presents,
		PartBow:      cfg.Presents,
		PartStocking: cfg.Stockings,
		PartCuff:     cfg.Stockings,
		PartWish:     cfg.WishCapacity,
		PartTopper:   1,
	}
	b := &InstanceBuffer{}
	for p, n := range caps {
		b.parts[p] = partBuffer{
			matrices: make([]float32, n*16),
			colors:   make([]float32, n*3),
		}
	}
	return b
}

// Submit implements Sink.
func (b *InstanceBuffer) Submit(f *Frame) {
	group := RotationY(f.Rotation)
	b.fill(PartFoliage, group, f.Foliage, nil)
	b.fill(PartOrnament, group, f.Ornaments, nil)
	b.fill(PartLight, group, f.Lights, nil)
	b.fill(PartPresent, group, f.Presents, nil)
	b.fill(PartRibbon, group, f.Presents, &ColorGold)
	b.fill(PartBow, group, f.Bows, nil)
	b.fill(PartStocking, group, f.Stockings, nil)
	b.fill(PartCuff, group, f.Stockings, &ColorSnow)
	b.fill(PartWish, group, f.Wishes, nil)
	b.fill(PartTopper, group, []Instance{{Transform: f.Topper, Color: ColorGold}}, nil)
}

// fill writes src into part p. A non-nil tint replaces every instance color.
func (b *InstanceBuffer) fill(p Part, group Mat4, src []Instance, tint *Color) {
	pb := &b.parts[p]
	n := min(len(src), len(pb.colors)/3)
	for i := 0; i < n; i++ {
		m := group.Mul(src[i].Matrix())
		dst := pb.matrices[i*16 : i*16+16]
		for k, v := range m {
			dst[k] = float32(v)
		}
		c := src[i].Color
		if tint != nil {
			c = *tint
		}
		pb.colors[i*3] = float32(c.R)
		pb.colors[i*3+1] = float32(c.G)
		pb.colors[i*3+2] = float32(c.B)
	}
	pb.count = n
}

// Count returns how many instances of p were written by the last Submit.
func (b *InstanceBuffer) Count(p Part) int {
	return b.parts[p].count
}

// Capacity returns the fixed maximum instance count of p.
func (b *InstanceBuffer) Capacity(p Part) int {
	return len(b.parts[p].colors) / 3
}

// Matrices returns the live matrix stream of p (16 floats per instance).
func (b *InstanceBuffer) Matrices(p Part) []float32 {
	pb := &b.parts[p]
	return pb.matrices[:pb.count*16]
}

// Colors returns the live color stream of p (RGB per instance).
func (b *InstanceBuffer) Colors(p Part) []float32 {
	pb := &b.parts[p]
	return pb.colors[:pb.count*3]
}
