// Package ecs provides ECS adapters for evergreen's engine events.
//
// The primary adapter is [NewDonburiStore], which bridges evergreen events
// (assembly toggles, lights, wishes, surprises) into a [Donburi] world as
// typed events. Subscribe to [EventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
