package platform2d

import (
	"errors"
	"slices"
	"testing"

	"github.com/tanema/gween/ease"
)

func newFloatAnim(t *testing.T, target float64) *ValueAnimation[float64] {
	t.Helper()
	anim, err := NewValueAnimation(0.0, []*SetPoint[float64]{NewSetPoint(target, 1)})
	if err != nil {
		t.Fatalf("NewValueAnimation: %v", err)
	}
	return anim
}

func TestCollectionAddAndGet(t *testing.T) {
	c := NewAnimationCollection[float64]()
	anim := newFloatAnim(t, 1)

	if err := c.Add("fadeIn", anim); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, err := c.Get("fadeIn")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != Animator[float64](anim) {
		t.Error("Get should return the stored reference")
	}
}

func TestCollectionAddDuplicate(t *testing.T) {
	c := NewAnimationCollection[float64]()
	first := newFloatAnim(t, 1)
	if err := c.Add("bounce", first); err != nil {
		t.Fatal(err)
	}

	err := c.Add("bounce", newFloatAnim(t, 2))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("err = %v, want ErrDuplicateKey", err)
	}

	got, _ := c.Get("bounce")
	if got != Animator[float64](first) {
		t.Error("duplicate Add should leave the original in place")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCollectionAddNil(t *testing.T) {
	c := NewAnimationCollection[float64]()
	if err := c.Add("nil", nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if c.Contains("nil") {
		t.Error("nil animation should not be stored")
	}
}

func TestCollectionGetMissing(t *testing.T) {
	c := NewAnimationCollection[float64]()
	_, err := c.Get("missing")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("err = %v, want ErrKeyNotFound", err)
	}
	if _, err := c.Value("missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("Value err = %v, want ErrKeyNotFound", err)
	}
}

func TestCollectionRemoveAndContains(t *testing.T) {
	c := NewAnimationCollection[float64]()

	if c.Remove("missing") {
		t.Error("Remove of a missing name should report false")
	}

	_ = c.Add("a", newFloatAnim(t, 1))
	if !c.Contains("a") {
		t.Fatal("Contains should report an added name")
	}
	if !c.Remove("a") {
		t.Error("Remove of a present name should report true")
	}
	if c.Contains("a") {
		t.Error("Contains should report false after Remove")
	}
	if c.Remove("a") {
		t.Error("second Remove should report false")
	}

	// The name can be reused once removed.
	if err := c.Add("a", newFloatAnim(t, 2)); err != nil {
		t.Errorf("re-Add after Remove: %v", err)
	}
}

func TestCollectionNames(t *testing.T) {
	c := NewAnimationCollection[float64]()
	for _, name := range []string{"slide", "bounce", "fadeIn"} {
		_ = c.Add(name, newFloatAnim(t, 1))
	}
	want := []string{"bounce", "fadeIn", "slide"}
	if got := c.Names(); !slices.Equal(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}

func TestCollectionUpdateAndReset(t *testing.T) {
	c := NewAnimationCollection[float64]()
	_ = c.Add("value", newFloatAnim(t, 10))
	_ = c.Add("tween", NewTween(0, 10, 1, ease.Linear))

	c.Update(0.5)

	for _, name := range c.Names() {
		v, err := c.Value(name)
		if err != nil {
			t.Fatal(err)
		}
		if !approx(v, 5) {
			t.Errorf("%s = %f, want 5", name, v)
		}
	}

	c.Reset()
	for _, name := range c.Names() {
		if v, _ := c.Value(name); v != 0 {
			t.Errorf("%s = %f after Reset, want 0", name, v)
		}
	}
}

func TestCollectionSharedReference(t *testing.T) {
	c := NewAnimationCollection[float64]()
	anim := newFloatAnim(t, 1)
	_ = c.Add("shared", anim)

	got, _ := c.Get("shared")
	got.Update(2)

	if !anim.IsComplete() {
		t.Error("updating the looked-up animation should update the stored one")
	}
}
