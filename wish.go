package evergreen

import (
	"time"

	"github.com/google/uuid"
)

// Wish is a submitted wish and the blessing generated for it. Immutable once
// created.
type Wish struct {
	ID        string
	UserText  string
	Blessing  string
	CreatedAt time.Time
}

// NewWish creates a Wish with a fresh random ID.
func NewWish(userText, blessing string, createdAt time.Time) Wish {
	return Wish{
		ID:        uuid.NewString(),
		UserText:  userText,
		Blessing:  blessing,
		CreatedAt: createdAt,
	}
}

// WishList is the append-only wish history, indexed newest first. Entries are
// stored in submission order so adding a wish is O(1).
type WishList struct {
	submitted []Wish
}

// Add records w as the newest wish.
func (l *WishList) Add(w Wish) {
	l.submitted = append(l.submitted, w)
}

// Len returns the number of wishes ever submitted.
func (l *WishList) Len() int {
	return len(l.submitted)
}

// At returns the wish at newest-first index i.
func (l *WishList) At(i int) (Wish, bool) {
	if i < 0 || i >= len(l.submitted) {
		return Wish{}, false
	}
	return l.submitted[len(l.submitted)-1-i], true
}

// All returns a newest-first copy of the history.
func (l *WishList) All() []Wish {
	out := make([]Wish, len(l.submitted))
	for i := range out {
		out[i] = l.submitted[len(l.submitted)-1-i]
	}
	return out
}

// SlotPool is the fixed, pre-shuffled set of wish token layouts. The shuffle
// happens once at generation; the slot -> tuple mapping never changes.
type SlotPool struct {
	slots []Tuple
}

// NewSlotPool wraps already-shuffled slot tuples.
func NewSlotPool(slots []Tuple) *SlotPool {
	return &SlotPool{slots: slots}
}

// Capacity returns the maximum number of visible wish tokens.
func (p *SlotPool) Capacity() int {
	return len(p.slots)
}

// Tuple returns the layout for slot.
func (p *SlotPool) Tuple(slot SlotID) *Tuple {
	return &p.slots[slot]
}

// VisibleCount clamps a wish count to the pool capacity.
func VisibleCount(wishes, capacity int) int {
	return min(wishes, capacity)
}

// SlotAssigner maps the newest-first wish list onto the slot pool by identity:
// wish i occupies slot i. Wishes past capacity stay in the list but get no slot.
type SlotAssigner struct {
	list *WishList
	pool *SlotPool
}

// NewSlotAssigner binds list to pool.
func NewSlotAssigner(list *WishList, pool *SlotPool) *SlotAssigner {
	return &SlotAssigner{list: list, pool: pool}
}

// Visible returns how many wish tokens are drawn this frame.
func (a *SlotAssigner) Visible() int {
	return VisibleCount(a.list.Len(), a.pool.Capacity())
}

// SlotOf returns the slot occupied by the wish at newest-first index i, or
// false if that wish is beyond capacity.
func (a *SlotAssigner) SlotOf(i int) (SlotID, bool) {
	if i < 0 || i >= a.Visible() {
		return 0, false
	}
	return SlotID(i), true
}

// WishAt resolves a slot back to the wish occupying it. Slots outside
// [0, Visible()) hold no wish.
func (a *SlotAssigner) WishAt(slot SlotID) (Wish, bool) {
	if slot < 0 || int(slot) >= a.Visible() {
		return Wish{}, false
	}
	return a.list.At(int(slot))
}
