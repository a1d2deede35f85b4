package ecs

import (
	"github.com/phanxgames/glint"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for glint interaction events.
// Subscribe to this in your ECS systems to receive pointer and trigger events.
var InteractionEventType = events.NewEventType[glint.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are published to InteractionEventType and delivered when the world
// processes events (events.ProcessAllEvents or ProcessEvents).
func NewDonburiStore(world donburi.World) glint.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event glint.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// OnEvent subscribes fn to events of a single type.
func OnEvent(world donburi.World, typ glint.EventType, fn func(glint.InteractionEvent)) {
	InteractionEventType.Subscribe(world, func(_ donburi.World, e glint.InteractionEvent) {
		if e.Type == typ {
			fn(e)
		}
	})
}
