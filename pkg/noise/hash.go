package noise

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/watershade/pkg/math"
)

var (
	hashRowX = math.Vec3{X: 127.1, Y: 311.7, Z: 74.7}
	hashRowY = math.Vec3{X: 269.5, Y: 183.3, Z: 246.1}
	hashRowZ = math.Vec3{X: 113.5, Y: 271.9, Z: 124.6}
)

const hashGain = 43758.5453123

// Hash3 scrambles p into a pseudo-random vector in [-1, 1)^3.
func Hash3(p math.Vec3) math.Vec3 {
	q := math.Vec3{
		X: p.Dot(hashRowX),
		Y: p.Dot(hashRowY),
		Z: p.Dot(hashRowZ),
	}
	return q.Sin().Scale(hashGain).Fract().Scale(2).AddScalar(-1)
}

// Cellular3 returns the distance from p to the nearest feature point of a
// Worley grid whose points are jittered by Hash3. The result lies in
// [0, sqrt(3)] and is usually below 1.
func Cellular3(p math.Vec3) float32 {
	cell := p.Floor()
	local := p.Sub(cell)

	best := float32(3)
	for z := -1; z <= 1; z++ {
		for y := -1; y <= 1; y++ {
			for x := -1; x <= 1; x++ {
				n := math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}
				feature := n.Add(Hash3(cell.Add(n)).Scale(0.5).AddScalar(0.5))
				if d := feature.Sub(local).LengthSq(); d < best {
					best = d
				}
			}
		}
	}
	return math32.Sqrt(best)
}
