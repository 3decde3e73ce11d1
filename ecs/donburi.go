package ecs

import (
	"github.com/arbitrarypixel/platform2d"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// AnimationData is the payload of the Animation component.
type AnimationData struct {
	// Name identifies the animation in completion events.
	Name string
	// Anim is advanced by UpdateAnimations.
	Anim *platform2d.ValueAnimation[float64]
	// Apply, if set, receives the animation value after every update.
	Apply func(v float64)

	completed bool
}

// AnimationCompleted is published when an entity's animation completes.
type AnimationCompleted struct {
	Entity donburi.Entity
	Name   string
	Value  float64
}

// Animation is the component holding an entity's animation.
var Animation = donburi.NewComponentType[AnimationData]()

// AnimationCompletedEvent is the Donburi event type for completed
// animations. Events are queued; call ProcessEvents to deliver them.
var AnimationCompletedEvent = events.NewEventType[AnimationCompleted]()

var animationQuery = donburi.NewQuery(filter.Contains(Animation))

// AddAnimation creates an entity carrying anim and returns it.
func AddAnimation(world donburi.World, name string, anim *platform2d.ValueAnimation[float64], apply func(float64)) donburi.Entity {
	e := world.Create(Animation)
	Animation.Set(world.Entry(e), &AnimationData{Name: name, Anim: anim, Apply: apply})
	return e
}

// UpdateAnimations advances every Animation component by dt seconds, hands
// the values to Apply, and publishes AnimationCompleted once per completion.
// Resetting an animation re-arms its event.
func UpdateAnimations(world donburi.World, dt float64) {
	animationQuery.Each(world, func(entry *donburi.Entry) {
		data := Animation.Get(entry)
		if data.Anim == nil {
			return
		}
		data.Anim.Update(dt)
		if data.Apply != nil {
			data.Apply(data.Anim.Value())
		}

		done := data.Anim.IsComplete()
		if done && !data.completed {
			AnimationCompletedEvent.Publish(world, AnimationCompleted{
				Entity: entry.Entity(),
				Name:   data.Name,
				Value:  data.Anim.Value(),
			})
		}
		data.completed = done
	})
}
