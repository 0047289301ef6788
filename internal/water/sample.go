package water

import "github.com/Faultbox/watershade/pkg/math"

// MinEdgeDistance floors the distance to the surface boundary.
const MinEdgeDistance = 1e-4

// Sample is one evaluation input.
type Sample struct {
	UV         math.Vec2 // Edge-relative coordinate in [0,1]^2
	UV2        math.Vec2 // Pattern coordinate
	Time       float32   // Seconds
	Resolution math.Vec2 // Render target size in pixels
}

// SampleFromUV builds a sample for meshes without a second UV channel by
// reusing uv as uv2.
func SampleFromUV(uv math.Vec2, time float32, resolution math.Vec2) Sample {
	return Sample{UV: uv, UV2: uv, Time: time, Resolution: resolution}
}

// Aspect returns width/height of the render target, or 1 when the
// resolution is unset.
func (s Sample) Aspect() float32 {
	if s.Resolution.X <= 0 || s.Resolution.Y <= 0 {
		return 1
	}
	return s.Resolution.X / s.Resolution.Y
}

// PatternUV returns UV2 with its X axis stretched by the aspect ratio.
func (s Sample) PatternUV() math.Vec2 {
	return s.UV2.Mul(math.Vec2{X: s.Aspect(), Y: 1})
}

// EdgeDistance returns the distance from uv to the nearest side of the unit
// square, floored at MinEdgeDistance.
func EdgeDistance(uv math.Vec2) float32 {
	d := min(min(uv.X, 1-uv.X), min(uv.Y, 1-uv.Y))
	return max(d, MinEdgeDistance)
}
