package water

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/watershade/pkg/math"
)

// surfaceCenter is the point lapping waves radiate away from.
var surfaceCenter = math.Vec2{X: 0.5, Y: 0.5}

// Breakup returns the large-scale breakup mask in [0, 1].
func (s *Shader) Breakup(p math.Vec2, t float32) float32 {
	bp := s.params.Layers.Breakup
	c := p.Scale(s.params.PatternScale * bp.Frequency).Add(bp.Offset.XY())
	n := s.remapped(c, t*bp.Speed+bp.Offset.Z)
	return math.Smoothstep(bp.Threshold-bp.Softness, bp.Threshold+bp.Softness, n)
}

// Visibility converts a breakup mask into the multiplicative suppressor
// applied to dark lines, foam bands and streaks.
func Visibility(breakup, strength float32) float32 {
	return 1 - breakup*strength
}

// DarkLines returns the dark band intensity. Remapped noise below the
// threshold is lit; the edge is antialiased by the local derivative.
func (s *Shader) DarkLines(p math.Vec2, adv AdvectionState, t, step, visibility float32) float32 {
	lp := s.params.Layers.DarkLine
	freq := s.params.PatternScale * lp.Frequency
	c := p.Add(adv.Main).Scale(freq)

	n, w := s.antialiased(c, t*lp.Speed, step*freq, lp.Sharpness)
	lit := 1 - math.Smoothstep(lp.Threshold-w, lp.Threshold+w, n)
	return lit * lp.Opacity * visibility
}

// FoamBand returns the foam band intensity: a two-sided antialiased band of
// the foam-advected noise.
func (s *Shader) FoamBand(p math.Vec2, adv AdvectionState, t, step, visibility float32) float32 {
	fp := s.params.Layers.FoamBand
	freq := s.params.PatternScale * fp.Frequency
	c := p.Add(adv.Foam).Scale(freq).Add(fp.Offset.XY())

	n, w := s.antialiased(c, t*fp.Speed+fp.Offset.Z, step*freq, fp.Sharpness)
	rampUp := math.Smoothstep(fp.Start-w, fp.Start+w, n)
	rampDown := math.Smoothstep(fp.End-w, fp.End+w, n)
	return max(rampUp-rampDown, 0) * fp.Opacity * visibility
}

// Streaks returns current-aligned streaks. The layer is off unless its
// strength is positive.
func (s *Shader) Streaks(p math.Vec2, adv AdvectionState, t, visibility float32) float32 {
	sp := s.params.Layers.Streaks
	if sp.Strength <= 0 {
		return 0
	}

	aligned := p.Rotate(-adv.Main.Angle())
	c := math.Vec2{X: aligned.X * sp.Stretch, Y: aligned.Y}.Scale(s.params.PatternScale * sp.Frequency)
	n := s.remapped(c, t*sp.Speed)
	return math.Smoothstep(sp.Threshold, 1, n) * sp.Strength * visibility
}

// StaticGlow returns the edge glow falloff before and after the sharpness
// power. It is 1 on the boundary and 0 from gp.Distance inwards.
func StaticGlow(edge float32, gp GlowParams) (raw, factor float32) {
	raw = math.Smoothstep(gp.Distance, 0, edge)
	return raw, math.Pow(raw, gp.Sharpness)
}

// LapWave returns the shoreline waves travelling along the edge distance
// field. The layer ignores the breakup mask.
func (s *Shader) LapWave(uv math.Vec2, edge float32, distortion math.Vec2, t float32) float32 {
	lp := s.params.Layers.LapWave

	outward := uv.Sub(surfaceCenter).Normalize()
	distorted := max(edge+distortion.Dot(outward), MinEdgeDistance)

	phase := distorted*lp.Frequency - t*lp.Speed
	wave := math.Pow(math32.Sin(phase*2*math32.Pi)*0.5+0.5, lp.Sharpness)
	fade := math.Smoothstep(lp.FadeDistance, 0, edge)
	return wave * lp.Intensity * fade
}

// RadialWave returns the rotating spoke waves around the radial origin.
func (s *Shader) RadialWave(p math.Vec2, aspect, t float32) float32 {
	rp := s.params.Layers.RadialWave
	scale := s.params.PatternScale

	origin := rp.Origin.Mul(math.Vec2{X: aspect, Y: 1})
	delta := p.Sub(origin)
	dist := delta.Length()

	jitter := s.noise(p.Scale(scale*rp.JitterFreq), t*rp.JitterSpeed) * rp.JitterAmount
	angle := delta.Angle() + t*rp.RotationSpeed + jitter

	arg := angle*float32(rp.Spokes) + dist*scale*rp.Frequency - t*rp.Speed
	wave := math.Pow(math32.Sin(arg)*0.5+0.5, rp.Sharpness)

	mc := p.Scale(scale * rp.MaskFreq).Add(rp.MaskOffset.XY())
	mask := s.remapped(mc, t*rp.MaskSpeed+rp.MaskOffset.Z)
	gate := math.Smoothstep(rp.MaskThreshold-rp.MaskSoftness, rp.MaskThreshold+rp.MaskSoftness, mask)

	falloff := math.Smoothstep(rp.Radius, rp.Radius*rp.InnerFraction, dist) *
		math.Smoothstep(0, rp.OriginFadeSize, dist)

	return wave * gate * falloff * rp.Intensity
}
