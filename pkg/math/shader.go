package math

import "github.com/chewxy/math32"

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Saturate clamps x to [0, 1].
func Saturate(x float32) float32 {
	return Clamp(x, 0, 1)
}

// Mix linearly interpolates between a and b.
func Mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Smoothstep is the Hermite step between edge0 and edge1.
// Reversed edges (edge0 > edge1) produce a falling ramp.
// Equal edges degrade to a hard step at the edge.
func Smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Saturate((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Fract returns x - floor(x).
func Fract(x float32) float32 {
	return x - math32.Floor(x)
}

// Mod289 reduces x into [0, 289).
func Mod289(x float32) float32 {
	return x - math32.Floor(x/289.0)*289.0
}

// Remap01 maps a value from [-1, 1] to [0, 1].
func Remap01(n float32) float32 {
	return n*0.5 + 0.5
}

// Pow is x^y for non-negative bases; negative x is treated as 0.
func Pow(x, y float32) float32 {
	if x <= 0 {
		return 0
	}
	return math32.Pow(x, y)
}
