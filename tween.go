package platform2d

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween is a single-segment float animation backed by gween. It satisfies
// Animator[float64], so it can sit in an AnimationCollection next to
// ValueAnimations when a one-shot eased move is all that is needed.
type Tween struct {
	tween *gween.Tween
	begin float64
	value float64
	done  bool
}

// NewTween creates a tween from begin to end over duration seconds using the
// gween easing function fn. A nil fn means ease.Linear.
func NewTween(begin, end, duration float64, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{
		tween: gween.New(float32(begin), float32(end), float32(duration), fn),
		begin: begin,
		value: begin,
	}
}

// Update advances the tween by dt seconds.
func (t *Tween) Update(dt float64) {
	if t.done {
		return
	}
	val, finished := t.tween.Update(float32(dt))
	t.value = float64(val)
	t.done = finished
}

// Reset rewinds the tween to its begin value.
func (t *Tween) Reset() {
	t.tween.Reset()
	t.value = t.begin
	t.done = false
}

// Value returns the current tweened value.
func (t *Tween) Value() float64 { return t.value }

// IsComplete reports whether the tween has run its full duration.
func (t *Tween) IsComplete() bool { return t.done }
