// Package noise provides deterministic procedural noise fields.
//
// Every function here is pure: the same input always yields the same output
// and no state is kept between calls.
package noise

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/watershade/pkg/math"
)

// Skew and unskew factors for the 3D simplex grid.
const (
	skew3   = 1.0 / 3.0
	unskew3 = 1.0 / 6.0
)

// Corner kernel radius (squared) and the output scale that maps the summed
// contributions onto [-1, 1].
const (
	kernelRadiusSq = 0.5
	simplexScale   = 105.0
)

const invSqrt2 = 0.70710678118654752

// gradients are the twelve cube-edge directions, normalized.
var gradients = [12]math.Vec3{
	{X: invSqrt2, Y: invSqrt2}, {X: -invSqrt2, Y: invSqrt2},
	{X: invSqrt2, Y: -invSqrt2}, {X: -invSqrt2, Y: -invSqrt2},
	{X: invSqrt2, Z: invSqrt2}, {X: -invSqrt2, Z: invSqrt2},
	{X: invSqrt2, Z: -invSqrt2}, {X: -invSqrt2, Z: -invSqrt2},
	{Y: invSqrt2, Z: invSqrt2}, {Y: -invSqrt2, Z: invSqrt2},
	{Y: invSqrt2, Z: -invSqrt2}, {Y: -invSqrt2, Z: -invSqrt2},
}

// Simplex3 evaluates 3D simplex gradient noise at p. The result lies in
// [-1, 1], is C1-continuous and is exactly zero on lattice points.
func Simplex3(p math.Vec3) float32 {
	// Skew into the simplex grid and find the containing cell
	s := (p.X + p.Y + p.Z) * skew3
	cell := math.Vec3{
		X: math32.Floor(p.X + s),
		Y: math32.Floor(p.Y + s),
		Z: math32.Floor(p.Z + s),
	}
	t := (cell.X + cell.Y + cell.Z) * unskew3
	x0 := p.Sub(cell.AddScalar(-t))

	o1, o2 := simplexOrder(x0)
	corners := [4]math.Vec3{{}, o1, o2, {X: 1, Y: 1, Z: 1}}

	wrapped := math.Vec3{
		X: math.Mod289(cell.X),
		Y: math.Mod289(cell.Y),
		Z: math.Mod289(cell.Z),
	}

	var sum float32
	for c, o := range corners {
		d := x0.Sub(o).AddScalar(float32(c) * unskew3)
		k := kernelRadiusSq - d.LengthSq()
		if k <= 0 {
			continue
		}
		h := permute(permute(permute(wrapped.Z+o.Z)+wrapped.Y+o.Y) + wrapped.X + o.X)
		g := gradients[int(h)%len(gradients)]
		k *= k
		sum += k * k * g.Dot(d)
	}
	return simplexScale * sum
}

// simplexOrder returns the offsets of the second and third simplex corners
// for a point at x0 inside its skewed cell.
func simplexOrder(x0 math.Vec3) (math.Vec3, math.Vec3) {
	if x0.X >= x0.Y {
		switch {
		case x0.Y >= x0.Z:
			return math.Vec3{X: 1}, math.Vec3{X: 1, Y: 1}
		case x0.X >= x0.Z:
			return math.Vec3{X: 1}, math.Vec3{X: 1, Z: 1}
		default:
			return math.Vec3{Z: 1}, math.Vec3{X: 1, Z: 1}
		}
	}
	switch {
	case x0.Y < x0.Z:
		return math.Vec3{Z: 1}, math.Vec3{Y: 1, Z: 1}
	case x0.X < x0.Z:
		return math.Vec3{Y: 1}, math.Vec3{Y: 1, Z: 1}
	default:
		return math.Vec3{Y: 1}, math.Vec3{X: 1, Y: 1}
	}
}

// permute is the mod-289 permutation polynomial used to hash lattice corners.
func permute(x float32) float32 {
	return math.Mod289((x*34 + 1) * x)
}
