package platform2d

import "github.com/tanema/gween/ease"

// Float is the set of types NewValueAnimation can blend without a custom
// LerpFunc.
type Float interface {
	~float32 | ~float64
}

// LerpFunc blends linearly from a to b. t is in [0, 1] for a normalized
// factor but curves such as back or elastic may overshoot that range.
type LerpFunc[T any] func(a, b T, t float64) T

// Curve reshapes a normalized factor in [0, 1]. Curve(0) should be 0 and
// Curve(1) should be 1.
type Curve func(f float64) float64

// SmoothStep is the cubic Hermite curve 3f² - 2f³. It is the default Curve
// of every ValueAnimation.
func SmoothStep(f float64) float64 {
	return f * f * (3 - 2*f)
}

// Linear returns f unchanged.
func Linear(f float64) float64 { return f }

// EaseCurve adapts a gween easing function to a Curve, so any function from
// github.com/tanema/gween/ease can shape a ValueAnimation.
func EaseCurve(fn ease.TweenFunc) Curve {
	return func(f float64) float64 {
		return float64(fn(float32(f), 0, 1, 1))
	}
}

// LerpFloat blends two floating point values.
func LerpFloat[T Float](a, b T, t float64) T {
	return a + T(float64(b-a)*t)
}

// LerpVec2 blends two vectors component-wise.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// LerpColor blends all four components of two colors.
func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// Smooth blends a and b with the smooth step curve applied to f.
func Smooth[T Float](a, b T, f float64) T {
	return LerpFloat(a, b, SmoothStep(f))
}
