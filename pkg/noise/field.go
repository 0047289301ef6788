package noise

import (
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"github.com/Faultbox/watershade/pkg/math"
)

// Field is a continuous scalar noise field with values in [-1, 1].
type Field interface {
	Eval3(x, y, z float32) float32
}

// Kind names a Field implementation.
type Kind string

// Supported field kinds.
const (
	KindSimplex     Kind = "simplex"
	KindOpenSimplex Kind = "opensimplex"
	KindPerlin      Kind = "perlin"
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{KindSimplex, KindOpenSimplex, KindPerlin}

// ParseKind converts a case-insensitive name into a Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown noise kind %q", name)
}

// New returns the field for kind. The simplex field is the reference and
// ignores seed.
func New(kind Kind, seed int64) (Field, error) {
	switch kind {
	case KindSimplex, "":
		return Simplex{}, nil
	case KindOpenSimplex:
		return NewOpenSimplex(seed), nil
	case KindPerlin:
		return NewPerlin(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise kind %q", kind)
	}
}

// Simplex is the reference field backed by Simplex3.
type Simplex struct{}

// Eval3 implements Field.
func (Simplex) Eval3(x, y, z float32) float32 {
	return Simplex3(math.Vec3{X: x, Y: y, Z: z})
}

// OpenSimplex wraps an OpenSimplex generator.
type OpenSimplex struct {
	gen opensimplex.Noise32
}

// NewOpenSimplex creates a seeded OpenSimplex field.
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{gen: opensimplex.New32(seed)}
}

// Eval3 implements Field.
func (o *OpenSimplex) Eval3(x, y, z float32) float32 {
	return math.Clamp(o.gen.Eval3(x, y, z), -1, 1)
}

// Perlin parameters: weight falloff, frequency gain and octave count.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// Perlin wraps a classic multi-octave Perlin generator.
type Perlin struct {
	gen *perlin.Perlin
}

// NewPerlin creates a seeded Perlin field.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{gen: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

// Eval3 implements Field.
func (p *Perlin) Eval3(x, y, z float32) float32 {
	v := p.gen.Noise3D(float64(x), float64(y), float64(z))
	return math.Clamp(float32(v), -1, 1)
}
