package evergreen

// EventStore is the interface for optional ECS integration. When set on an
// Engine, state changes are forwarded to the store.
type EventStore interface {
	EmitEvent(event Event)
}

// EventType identifies a kind of engine event.
type EventType uint8

const (
	EventAssemblyToggled EventType = iota // target flipped; Assembled holds the new target
	EventAssemblySettled                  // progress came within RestEpsilon of the target
	EventLightsChanged                    // lights flag changed; LightsOn holds the new value
	EventWishSubmitted                    // Wish was added to the list
	EventWishSelected                     // Slot was selected and resolved to Wish
	EventSurpriseOpened                   // Surprise was drawn
)

// Event carries engine state changes to an EventStore.
type Event struct {
	Type      EventType
	Elapsed   float64
	Assembled bool
	LightsOn  bool
	Slot      SlotID
	Wish      Wish
	Surprise  Surprise
}
