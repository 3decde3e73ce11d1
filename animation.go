package platform2d

import (
	"fmt"
	"math"
)

// ValueAnimation drives a single value of type T through an ordered list of
// set points. Each set point's Time is relative to the one before it, and
// the animation starts at an implicit point (StartValue, 0) synthesized at
// index 0.
//
// Call Update(dt) once per frame and read Value. There is no global
// animation manager; group animations with an AnimationCollection if they
// should be driven together.
type ValueAnimation[T any] struct {
	// IsLooping wraps the animation back to its start value once the last
	// set point has been reached. It may be toggled at any time.
	IsLooping bool

	// Curve shapes the normalized factor before blending. Nil means
	// SmoothStep.
	Curve Curve

	lerp     LerpFunc[T]
	start    T
	points   []SetPoint[T]
	cycle    float64
	cur      int
	elapsed  float64
	factor   float64
	value    T
	complete bool
}

// NewValueAnimation creates a smooth-step animation over a floating point
// value. points may be empty but not nil, and may not contain nil entries.
func NewValueAnimation[T Float](start T, points []*SetPoint[T]) (*ValueAnimation[T], error) {
	return NewValueAnimationFunc(start, points, LerpFloat[T])
}

// NewValueAnimationFunc creates an animation for any type that can be
// blended by lerp, such as Vec2 (LerpVec2) or Color (LerpColor).
func NewValueAnimationFunc[T any](start T, points []*SetPoint[T], lerp LerpFunc[T]) (*ValueAnimation[T], error) {
	if points == nil {
		return nil, fmt.Errorf("platform2d: new value animation: nil set points: %w", ErrInvalidArgument)
	}
	if lerp == nil {
		return nil, fmt.Errorf("platform2d: new value animation: nil lerp func: %w", ErrInvalidArgument)
	}

	pts := make([]SetPoint[T], 0, len(points)+1)
	pts = append(pts, SetPoint[T]{target: start})
	var cycle float64
	for i, p := range points {
		if p == nil {
			return nil, fmt.Errorf("platform2d: new value animation: set point %d is nil: %w", i, ErrInvalidArgument)
		}
		pts = append(pts, *p)
		if p.time > 0 {
			cycle += p.time
		}
	}

	return &ValueAnimation[T]{
		lerp:   lerp,
		start:  start,
		points: pts,
		cycle:  cycle,
		value:  start,
	}, nil
}

// StartValue returns the value the animation has at time zero.
func (a *ValueAnimation[T]) StartValue() T { return a.start }

// SetPoints returns a copy of the set points, including the synthesized
// start point at index 0.
func (a *ValueAnimation[T]) SetPoints() []SetPoint[T] {
	out := make([]SetPoint[T], len(a.points))
	copy(out, a.points)
	return out
}

// CurrentSetPoint returns the index of the set point the animation is moving
// away from. The point being approached is CurrentSetPoint()+1.
func (a *ValueAnimation[T]) CurrentSetPoint() int { return a.cur }

// ElapsedAtCurrentSetPoint returns the seconds accumulated since the
// animation arrived at CurrentSetPoint.
func (a *ValueAnimation[T]) ElapsedAtCurrentSetPoint() float64 { return a.elapsed }

// Factor returns the normalized progress in [0, 1] between the current and
// next set point.
func (a *ValueAnimation[T]) Factor() float64 { return a.factor }

// Value returns the interpolated output computed by the last Update.
func (a *ValueAnimation[T]) Value() T { return a.value }

// IsComplete reports whether a non-looping animation has reached its last
// set point.
func (a *ValueAnimation[T]) IsComplete() bool { return a.complete }

// Update advances the animation by dt seconds. A large dt is resolved fully
// within the call: every segment it spans is consumed, wrapping back to the
// start when looping, and the remainder carries into the segment it lands in.
func (a *ValueAnimation[T]) Update(dt float64) {
	if a.complete && !a.IsLooping {
		return
	}
	a.complete = false
	a.elapsed += dt

	last := len(a.points) - 1
	for {
		to := a.cur + 1
		if to > last {
			if !a.IsLooping || a.cycle <= 0 {
				// Nothing left to consume: either the end was reached, or a
				// looping cycle has no length and would never progress.
				a.finish(last)
				if a.IsLooping {
					a.complete = false
				}
				return
			}
			a.cur = 0
			if a.elapsed >= a.cycle {
				a.elapsed = math.Mod(a.elapsed, a.cycle)
			}
			continue
		}

		seg := a.points[to].time
		if seg <= 0 {
			a.factor = 1
		} else {
			a.factor = clamp01(a.elapsed / seg)
		}

		if a.factor >= 1 && to == last && !a.IsLooping {
			if seg > 0 {
				a.elapsed -= seg
			}
			a.finish(last)
			return
		}

		if seg <= 0 || a.elapsed > seg {
			if seg > 0 {
				a.elapsed -= seg
			}
			a.cur = to
			continue
		}

		a.value = a.blend(a.points[a.cur].target, a.points[to].target, a.factor)
		return
	}
}

// Reset returns the animation to its start value. IsLooping, Curve and the
// set points are left untouched.
func (a *ValueAnimation[T]) Reset() {
	a.value = a.start
	a.cur = 0
	a.factor = 0
	a.elapsed = 0
	a.complete = false
}

// finish pins the animation on the target of set point last.
func (a *ValueAnimation[T]) finish(last int) {
	a.cur = last
	a.factor = 1
	a.value = a.points[last].target
	a.complete = true
}

func (a *ValueAnimation[T]) blend(from, to T, f float64) T {
	curve := a.Curve
	if curve == nil {
		curve = SmoothStep
	}
	return a.lerp(from, to, curve(f))
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
