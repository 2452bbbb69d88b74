package render

import "github.com/phanxgames/evergreen"

// Activate performs the click action for hit on e: wish tokens open their
// wish, presents and stockings open a surprise. It reports whether anything
// opened.
func Activate(e *evergreen.Engine, hit Hit) bool {
	switch hit.Part {
	case evergreen.PartWish:
		_, ok := e.SelectSlot(evergreen.SlotID(hit.Index))
		return ok
	case evergreen.PartPresent:
		e.OpenSurprise(evergreen.SurpriseGift)
		return true
	case evergreen.PartStocking:
		e.OpenSurprise(evergreen.SurpriseSock)
		return true
	}
	return false
}
