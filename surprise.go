package evergreen

import "math/rand/v2"

// Surprise is the reward revealed by clicking a present or stocking.
type Surprise struct {
	Kind        SurpriseKind
	Title       string
	Description string
}

var luxuryGifts = []string{
	"A Weekend in the Swiss Alps",
	"A Vintage 1920s Gold Watch",
	"A Signature Diamond",
	"A Private Jazz Concert",
	"Lifetime Supply of Joy",
	"A Golden Ticket to the Stars",
	"A Bottle of Starlight",
	"An Emerald Necklace",
}

var cozySockGifts = []string{
	"A Warm Hug",
	"Hot Chocolate & Marshmallows",
	"A Magic Candy Cane",
	"Freshly Baked Gingerbread",
	"A Cozy Cashmere Scarf",
	"The Sound of Sleigh Bells",
}

// drawSurprise picks a random item from the pool for kind.
func drawSurprise(kind SurpriseKind, rng *rand.Rand) Surprise {
	if kind == SurpriseSock {
		return Surprise{
			Kind:        kind,
			Title:       "A Cozy Surprise",
			Description: cozySockGifts[rng.IntN(len(cozySockGifts))],
		}
	}
	return Surprise{
		Kind:        SurpriseGift,
		Title:       "A Luxury Surprise",
		Description: luxuryGifts[rng.IntN(len(luxuryGifts))],
	}
}
