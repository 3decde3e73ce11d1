package platform2d

// SetPoint is an immutable keyframe: the value an animation moves toward and
// the time, in seconds, it takes to get there from the previous set point.
type SetPoint[T any] struct {
	target T
	time   float64
}

// NewSetPoint returns a set point that reaches target after time seconds.
// Neither value is validated.
func NewSetPoint[T any](target T, time float64) *SetPoint[T] {
	return &SetPoint[T]{target: target, time: time}
}

// Target returns the value this set point interpolates toward.
func (p *SetPoint[T]) Target() T { return p.target }

// Time returns the duration, relative to the previous set point, needed to
// reach Target.
func (p *SetPoint[T]) Time() float64 { return p.time }
