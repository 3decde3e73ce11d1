package platform2d

import (
	"fmt"
	"maps"
	"slices"
)

// Animator is the per-frame contract shared by everything an
// AnimationCollection can hold. *ValueAnimation[T] implements it, as does
// *Tween for float64.
type Animator[T any] interface {
	Update(dt float64)
	Reset()
	Value() T
	IsComplete() bool
}

// AnimationCollection is a registry of named animations, such as "fadeIn"
// or "bounce", that an owner drives and addresses as one set.
//
// Lookups return the stored reference; the collection and the caller share
// it.
type AnimationCollection[T any] struct {
	anims map[string]Animator[T]
}

// NewAnimationCollection creates an empty collection.
func NewAnimationCollection[T any]() *AnimationCollection[T] {
	return &AnimationCollection[T]{anims: make(map[string]Animator[T])}
}

// Add stores anim under name. It fails with ErrDuplicateKey if the name is
// already taken, leaving the collection unchanged.
func (c *AnimationCollection[T]) Add(name string, anim Animator[T]) error {
	if _, ok := c.anims[name]; ok {
		return fmt.Errorf("platform2d: add animation %q: %w", name, ErrDuplicateKey)
	}
	if anim == nil {
		return fmt.Errorf("platform2d: add animation %q: nil animation: %w", name, ErrInvalidArgument)
	}
	c.anims[name] = anim
	return nil
}

// Remove deletes the animation stored under name and reports whether there
// was one.
func (c *AnimationCollection[T]) Remove(name string) bool {
	if _, ok := c.anims[name]; !ok {
		return false
	}
	delete(c.anims, name)
	return true
}

// Contains reports whether an animation is stored under name.
func (c *AnimationCollection[T]) Contains(name string) bool {
	_, ok := c.anims[name]
	return ok
}

// Get returns the animation stored under name, or ErrKeyNotFound.
func (c *AnimationCollection[T]) Get(name string) (Animator[T], error) {
	anim, ok := c.anims[name]
	if !ok {
		return nil, fmt.Errorf("platform2d: animation %q: %w", name, ErrKeyNotFound)
	}
	return anim, nil
}

// Value returns the current value of the animation stored under name.
func (c *AnimationCollection[T]) Value(name string) (T, error) {
	anim, err := c.Get(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return anim.Value(), nil
}

// Len returns the number of stored animations.
func (c *AnimationCollection[T]) Len() int { return len(c.anims) }

// Names returns the stored animation names in sorted order.
func (c *AnimationCollection[T]) Names() []string {
	return slices.Sorted(maps.Keys(c.anims))
}

// Update advances every animation in the collection by dt seconds.
func (c *AnimationCollection[T]) Update(dt float64) {
	for _, anim := range c.anims {
		anim.Update(dt)
	}
}

// Reset resets every animation in the collection.
func (c *AnimationCollection[T]) Reset() {
	for _, anim := range c.anims {
		anim.Reset()
	}
}
