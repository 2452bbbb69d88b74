package evergreen

import "math/rand/v2"

// Color represents an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1}

// Hex builds a Color from a 0xRRGGBB literal.
func Hex(rgb uint32) Color {
	return Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
	}
}

// Range is a general-purpose min/max range used by the layout generators.
type Range struct {
	Min, Max float64
}

// Sample returns a value in [Min, Max) drawn from rng.
func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Category identifies one of the six element kinds. Each has its own
// silhouette and secondary-motion rules.
type Category uint8

const (
	CategoryFoliage   Category = iota // spiral-wrapped needles
	CategoryOrnament                  // gold baubles at random angles
	CategoryLight                     // string lights, evenly phase-stepped
	CategoryPresent                   // gift boxes on the floor ring
	CategoryStocking                  // stockings on a golden-angle spiral
	CategoryWishToken                 // user wishes mapped onto shuffled slots

	numCategories
)

var categoryNames = [numCategories]string{
	"foliage", "ornament", "light", "present", "stocking", "wish",
}

// String returns the lowercase category name.
func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return "unknown"
}

// Categories lists every category in evaluation order.
func Categories() []Category {
	return []Category{
		CategoryFoliage, CategoryOrnament, CategoryLight,
		CategoryPresent, CategoryStocking, CategoryWishToken,
	}
}

// Element handles. Each category indexes its own layout; the distinct types
// keep a light index from being passed where a stocking index is expected.
type (
	FoliageID  int
	OrnamentID int
	LightID    int
	PresentID  int
	StockingID int
	// SlotID is a position in the shuffled wish slot pool. Wish i (newest
	// first) always occupies SlotID(i).
	SlotID int
)

// SurpriseKind selects the surprise pool opened by clicking an element.
type SurpriseKind uint8

const (
	SurpriseGift  SurpriseKind = iota // presents: luxury pool
	SurpriseSock                      // stockings: cozy pool
)
