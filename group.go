package platform2d

import "fmt"

// AnimationGroup drives up to 4 float64 animations at once and writes each
// value into a bound field after every Update. Use it to animate several
// fields of one object (X and Y, or the four channels of a Color) in step.
//
// Done becomes true once every bound animation is complete. Looping
// animations never complete, so a group holding one is never Done.
type AnimationGroup struct {
	anims  [4]*ValueAnimation[float64]
	fields [4]*float64
	count  int
	Done   bool
}

// NewAnimationGroup creates an empty group.
func NewAnimationGroup() *AnimationGroup {
	return &AnimationGroup{}
}

// Bind attaches anim to field. It reports false when the group is full or
// either argument is nil. The field is written immediately with the
// animation's current value.
func (g *AnimationGroup) Bind(field *float64, anim *ValueAnimation[float64]) bool {
	if field == nil || anim == nil || g.count == len(g.anims) {
		return false
	}
	g.anims[g.count] = anim
	g.fields[g.count] = field
	g.count++
	*field = anim.Value()
	g.Done = false
	return true
}

// Len returns the number of bound animations.
func (g *AnimationGroup) Len() int { return g.count }

// Update advances all bound animations by dt seconds and writes their values
// to the bound fields.
func (g *AnimationGroup) Update(dt float64) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		g.anims[i].Update(dt)
		*g.fields[i] = g.anims[i].Value()
		if !g.anims[i].IsComplete() {
			allDone = false
		}
	}
	g.Done = allDone
}

// Reset resets every bound animation and writes the start values back to the
// fields.
func (g *AnimationGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.anims[i].Reset()
		*g.fields[i] = g.anims[i].Value()
	}
	g.Done = false
}

// AnimatePosition binds x and y to animations toward the given targets,
// each lasting duration seconds.
func AnimatePosition(x, y *float64, toX, toY, duration float64) (*AnimationGroup, error) {
	return animateFields(duration, []fieldTarget{{x, toX}, {y, toY}})
}

// AnimateColor binds all four channels of c to animations toward to.
func AnimateColor(c *Color, to Color, duration float64) (*AnimationGroup, error) {
	return animateFields(duration, []fieldTarget{
		{&c.R, to.R}, {&c.G, to.G}, {&c.B, to.B}, {&c.A, to.A},
	})
}

type fieldTarget struct {
	field *float64
	to    float64
}

func animateFields(duration float64, targets []fieldTarget) (*AnimationGroup, error) {
	g := NewAnimationGroup()
	for _, t := range targets {
		if t.field == nil {
			return nil, fmt.Errorf("platform2d: animate field: nil field: %w", ErrInvalidArgument)
		}
		anim, err := NewValueAnimation(*t.field, []*SetPoint[float64]{NewSetPoint(t.to, duration)})
		if err != nil {
			return nil, err
		}
		g.Bind(t.field, anim)
	}
	return g, nil
}
