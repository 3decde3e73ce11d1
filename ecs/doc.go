// Package ecs provides a [Donburi] integration for platform2d animations.
//
// Attach the [Animation] component to an entity, call [UpdateAnimations]
// from a system each tick, and subscribe to [AnimationCompletedEvent] to
// react when a non-looping animation finishes:
//
//	anim, _ := platform2d.NewValueAnimation(0.0, points)
//	e := ecs.AddAnimation(world, "fadeIn", anim, func(v float64) { sprite.Alpha = v })
//	...
//	ecs.UpdateAnimations(world, dt)
//	ecs.AnimationCompletedEvent.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
