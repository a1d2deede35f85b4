// Package ecs provides ECS adapters for glint's interaction event feed.
//
// The primary adapter is [NewDonburiStore], which bridges glint pointer and
// visibility trigger events into a [Donburi] world as typed events.
// Subscribe to [InteractionEventType] in your ECS systems to receive them,
// or use [OnEvent] to receive a single kind.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//	ecs.OnEvent(world, glint.EventTrigger, func(e glint.InteractionEvent) { ... })
//
// Only nodes with a non-zero EntityID produce events.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
