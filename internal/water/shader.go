package water

import (
	"github.com/Faultbox/watershade/pkg/math"
	"github.com/Faultbox/watershade/pkg/noise"
)

// Shader evaluates the colour model for a fixed Params value and noise field.
// It holds no mutable state and is safe for concurrent use.
type Shader struct {
	params Params
	field  noise.Field
}

// NewShader creates a shader. A nil field selects the reference simplex noise.
func NewShader(params Params, field noise.Field) *Shader {
	if field == nil {
		field = noise.Simplex{}
	}
	return &Shader{params: params, field: field}
}

// Params returns the shader's parameters.
func (s *Shader) Params() Params {
	return s.params
}

// LayerValues is the per-layer breakdown of one evaluation.
type LayerValues struct {
	EdgeDistance  float32
	Breakup       float32
	Visibility    float32
	DarkLine      float32 // Already multiplied by Visibility
	FoamBand      float32 // Already multiplied by Visibility
	Streaks       float32
	StaticGlowRaw float32 // Falloff before the sharpness power
	StaticGlow    float32
	LapWave       float32
	RadialWave    float32
	TotalFoam     float32
	Currents      AdvectionState
}

// Result is the output of one evaluation.
type Result struct {
	Color  Color
	Alpha  float32
	Layers LayerValues
}

// Evaluate runs the model with the reference noise field.
func Evaluate(in Sample, params Params) Result {
	return NewShader(params, nil).Shade(in)
}

// Shade evaluates every layer for one sample and composites the result.
func (s *Shader) Shade(in Sample) Result {
	p := s.params
	t := in.Time * p.TimeScale
	pattern := in.PatternUV()
	step := p.derivativeStep(in.Resolution)

	var lv LayerValues
	lv.EdgeDistance = EdgeDistance(in.UV)
	distortion := s.EdgeDistortion(in.UV, t)

	// Currents first: dark lines, foam and streaks sample advected coordinates
	lv.Currents = s.Currents(pattern, t)

	lv.Breakup = s.Breakup(pattern, t)
	lv.Visibility = Visibility(lv.Breakup, p.Layers.Breakup.Strength)

	lv.DarkLine = s.DarkLines(pattern, lv.Currents, t, step, lv.Visibility)
	lv.FoamBand = s.FoamBand(pattern, lv.Currents, t, step, lv.Visibility)
	lv.Streaks = s.Streaks(pattern, lv.Currents, t, lv.Visibility)
	lv.StaticGlowRaw, lv.StaticGlow = StaticGlow(lv.EdgeDistance, p.Layers.Glow)
	lv.LapWave = s.LapWave(in.UV, lv.EdgeDistance, distortion, t)
	lv.RadialWave = s.RadialWave(pattern, in.Aspect(), t)

	c, total := Composite(p.Palette, p.Layers.Glow, lv)
	lv.TotalFoam = total

	alpha := float32(1)
	if p.Transparent {
		alpha = math.Saturate(p.Alpha)
	}
	return Result{Color: c, Alpha: alpha, Layers: lv}
}

// Composite blends the layer values into the final clamped colour and
// returns it with the total foam intensity.
func Composite(pal Palette, glow GlowParams, lv LayerValues) (Color, float32) {
	dark := math.Saturate(lv.DarkLine)
	base := pal.Background.Mix(pal.DarkLine, dark)
	boost := math.Mix(1, glow.DarkBoost, dark)
	withGlow := base.Add(pal.Glow.Scale(lv.StaticGlow * glow.Alpha * boost))

	// Foam layers share one [0,1] budget
	total := math.Saturate(lv.FoamBand + lv.LapWave + lv.RadialWave + lv.Streaks)

	return withGlow.Mix(pal.Foam, total).Clamp(), total
}
