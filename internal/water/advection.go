package water

import "github.com/Faultbox/watershade/pkg/math"

// AdvectionState carries the current vectors that displace the sampling
// coordinates of downstream layers.
type AdvectionState struct {
	Main math.Vec2 // Displaces dark lines and orients streaks
	Foam math.Vec2 // Displaces foam bands
}

// Currents evaluates the main and foam advection currents at the
// aspect-corrected coordinate p.
func (s *Shader) Currents(p math.Vec2, t float32) AdvectionState {
	return AdvectionState{
		Main: s.current(p, t, s.params.Layers.MainCurrent),
		Foam: s.current(p, t, s.params.Layers.FoamCurrent),
	}
}

func (s *Shader) current(p math.Vec2, t float32, cp CurrentParams) math.Vec2 {
	c := p.Scale(s.params.PatternScale * cp.Frequency).Add(cp.Base.XY())
	z := t*cp.Speed + cp.Base.Z
	v := math.Vec2{
		X: s.noise(c, z),
		Y: s.noise(c.Add(cp.Offset.XY()), z+cp.Offset.Z),
	}
	return v.Scale(cp.Strength)
}

// EdgeDistortion returns the small vector used to wobble the lapping-wave
// distance field. It samples the raw uv.
func (s *Shader) EdgeDistortion(uv math.Vec2, t float32) math.Vec2 {
	ep := s.params.Layers.EdgeDistortion
	c := uv.Scale(ep.Frequency)
	z := t * ep.Speed
	v := math.Vec2{
		X: s.noise(c, z),
		Y: s.noise(c.Add(ep.Offset.XY()), z+ep.Offset.Z),
	}
	return v.Scale(ep.Strength)
}
