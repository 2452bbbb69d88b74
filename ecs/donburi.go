package ecs

import (
	"github.com/phanxgames/evergreen"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType is the Donburi event type for evergreen engine events.
var EventType = events.NewEventType[evergreen.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events are
// queued on EventType and delivered by events.ProcessAllEvents or
// EventType.ProcessEvents.
func NewDonburiStore(world donburi.World) evergreen.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event evergreen.Event) {
	EventType.Publish(s.world, event)
}
