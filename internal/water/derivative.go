package water

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/watershade/pkg/math"
)

// minEdgeWidth keeps antialiased thresholds from collapsing into hard steps
// where the noise is locally flat.
const minEdgeWidth = 1e-4

// noise samples the shader's field at (c, z).
func (s *Shader) noise(c math.Vec2, z float32) float32 {
	return s.field.Eval3(c.X, c.Y, z)
}

// remapped samples the field and maps it onto [0, 1].
func (s *Shader) remapped(c math.Vec2, z float32) float32 {
	return math.Remap01(s.noise(c, z))
}

// fwidth approximates |dFdx| + |dFdy| of the remapped noise at c with a
// forward difference of size step. center is the value at c.
func (s *Shader) fwidth(c math.Vec2, z, step, center float32) float32 {
	dx := s.remapped(c.Add(math.Vec2{X: step}), z) - center
	dy := s.remapped(c.Add(math.Vec2{Y: step}), z) - center
	return math32.Abs(dx) + math32.Abs(dy)
}

// antialiased returns the remapped noise at c and the transition width for
// thresholds applied to it.
func (s *Shader) antialiased(c math.Vec2, z, step, sharpness float32) (value, width float32) {
	value = s.remapped(c, z)
	width = max(s.fwidth(c, z, step, value)*sharpness, minEdgeWidth)
	return value, width
}
