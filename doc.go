// Package platform2d is the animation core of a 2D game engine: a generic,
// time-driven keyframe engine with looping, multi-keyframe sequencing and
// smooth-step interpolation.
//
// # Set points and value animations
//
// A [ValueAnimation] moves a value through a list of [SetPoint]s. Each set
// point names a target and the seconds needed to reach it from the previous
// point; the start value acts as an implicit first point at time zero.
//
//	fade, err := platform2d.NewValueAnimation(0.0, []*platform2d.SetPoint[float64]{
//		platform2d.NewSetPoint(1.0, 0.5), // fade in over half a second
//		platform2d.NewSetPoint(0.0, 2.0), // then out over two
//	})
//	...
//	fade.Update(dt) // once per frame
//	sprite.Alpha = fade.Value()
//
// Values are blended with [SmoothStep] unless Curve is set; [EaseCurve]
// accepts any easing function from [gween]. Non-float types animate through
// [NewValueAnimationFunc] with a [LerpFunc] such as [LerpVec2] or
// [LerpColor].
//
// A single Update resolves every segment its dt spans. For looping
// animations the overflow wraps back to the start; non-looping animations
// pin at their last target and report [ValueAnimation.IsComplete].
//
// # Collections
//
// [AnimationCollection] registers animations by name ("fadeIn", "bounce")
// so an owner can update and address them as one set. [LoadAnimations]
// builds a collection from YAML definitions.
//
// # Integration
//
// [AnimationGroup] writes animation values into float64 fields every
// update. The game subpackage drives any Update(dt) root from an
// [Ebitengine] loop, and the ecs subpackage provides a [Donburi] component
// and system.
//
// Nothing in this package is safe for concurrent use; animations are meant
// to be updated from the game loop's goroutine.
//
// [gween]: https://github.com/tanema/gween
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package platform2d
