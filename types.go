package platform2d

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is fully transparent black, the usual start of a fade in.
var ColorTransparent = Color{}

// Vec2 is a 2D vector used for animated positions, offsets and scales.
type Vec2 struct {
	X, Y float64
}

