package water

import (
	"testing"

	"github.com/Faultbox/watershade/pkg/math"
	"github.com/Faultbox/watershade/pkg/noise"
)

var testResolution = math.Vec2{X: 800, Y: 600}

func sampleAt(u, v, t float32) Sample {
	return SampleFromUV(math.Vec2{X: u, Y: v}, t, testResolution)
}

func inUnit(x float32) bool {
	return x >= 0 && x <= 1
}

func TestEvaluateRange(t *testing.T) {
	tests := []struct {
		name   string
		params func() Params
		alpha  float32
	}{
		{"opaque", DefaultParams, 1},
		{"transparent", func() Params {
			p := DefaultParams()
			p.Transparent = true
			return p
		}, 0.85},
		{"transparent alpha above one", func() Params {
			p := DefaultParams()
			p.Transparent = true
			p.Alpha = 1.7
			return p
		}, 1},
		{"transparent negative alpha", func() Params {
			p := DefaultParams()
			p.Transparent = true
			p.Alpha = -0.2
			return p
		}, 0},
		{"large pattern scale", func() Params {
			p := DefaultParams()
			p.PatternScale = 10
			p.TimeScale = 1.2
			return p
		}, 1},
		{"streaks enabled", func() Params {
			p := DefaultParams()
			p.Layers.Streaks.Strength = 0.8
			return p
		}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := NewShader(tt.params(), nil)
			for _, tm := range []float32{0, 3.5, 120} {
				for u := float32(0); u <= 1; u += 0.05 {
					for v := float32(0); v <= 1; v += 0.05 {
						r := sh.Shade(sampleAt(u, v, tm))
						if !inUnit(r.Color.R) || !inUnit(r.Color.G) || !inUnit(r.Color.B) {
							t.Fatalf("colour out of range at (%v, %v, t=%v): %+v", u, v, tm, r.Color)
						}
						if r.Alpha != tt.alpha {
							t.Fatalf("alpha = %v, want %v", r.Alpha, tt.alpha)
						}
						if !inUnit(r.Layers.TotalFoam) {
							t.Fatalf("total foam out of range: %v", r.Layers.TotalFoam)
						}
					}
				}
			}
		})
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	p := DefaultParams()
	for _, s := range []Sample{
		sampleAt(0.1, 0.2, 0),
		sampleAt(0.73, 0.41, 17.25),
		{UV: math.Vec2{X: 0.3, Y: 0.3}, UV2: math.Vec2{X: 2.5, Y: -1}, Time: 4, Resolution: math.Vec2{X: 1920, Y: 1080}},
	} {
		a := Evaluate(s, p)
		b := Evaluate(s, p)
		if a != b {
			t.Errorf("Evaluate(%+v) not deterministic: %+v != %+v", s, a, b)
		}
	}
}

func TestEvaluateContinuity(t *testing.T) {
	// Antialiased edges bound the slope; a 1e-4 step must never jump by more
	// than a small fraction of the colour range.
	const eps = 1e-4
	const maxJump = 0.25

	sh := NewShader(DefaultParams(), nil)
	for _, tm := range []float32{0, 7.3} {
		for u := float32(0.013); u < 0.99; u += 0.031 {
			for v := float32(0.017); v < 0.99; v += 0.029 {
				a := sh.Shade(sampleAt(u, v, tm)).Color
				b := sh.Shade(sampleAt(u+eps, v, tm)).Color
				c := sh.Shade(sampleAt(u, v+eps, tm)).Color
				if d := a.Distance(b); d > maxJump {
					t.Fatalf("colour jumped by %v along u at (%v, %v, t=%v)", d, u, v, tm)
				}
				if d := a.Distance(c); d > maxJump {
					t.Fatalf("colour jumped by %v along v at (%v, %v, t=%v)", d, u, v, tm)
				}
			}
		}
	}
}

func TestAntialiasWidthTracksDerivative(t *testing.T) {
	sh := NewShader(DefaultParams(), nil)
	c := math.Vec2{X: 0.37, Y: 1.21}

	_, w1 := sh.antialiased(c, 0, 0.01, 1)
	_, w2 := sh.antialiased(c, 0, 0.02, 1)

	ratio := w2 / w1
	if ratio < 1.6 || ratio > 2.4 {
		t.Errorf("doubling the step scaled the width by %v, want ~2 (w1=%v, w2=%v)", ratio, w1, w2)
	}
}

func TestAntialiasWidthFloor(t *testing.T) {
	sh := NewShader(DefaultParams(), nil)
	if _, w := sh.antialiased(math.Vec2{X: 0.2, Y: 0.4}, 0, 0, 1.5); w != minEdgeWidth {
		t.Errorf("zero step width = %v, want floor %v", w, minEdgeWidth)
	}
}

func TestMaskSuppression(t *testing.T) {
	// At this point the breakup mask is partially active and dark lines are lit
	s := sampleAt(0.3, 0.7, 0)

	prevDark, prevFoam := float32(2), float32(2)
	var first, last Result
	for i := 0; i <= 10; i++ {
		p := DefaultParams()
		p.Layers.Breakup.Strength = float32(i) / 10
		r := Evaluate(s, p)
		if i == 0 {
			first = r
		}
		last = r

		if r.Layers.DarkLine > prevDark || r.Layers.FoamBand > prevFoam {
			t.Fatalf("strength %v increased intensity: dark %v (was %v), foam %v (was %v)",
				p.Layers.Breakup.Strength, r.Layers.DarkLine, prevDark, r.Layers.FoamBand, prevFoam)
		}
		prevDark, prevFoam = r.Layers.DarkLine, r.Layers.FoamBand
	}

	if first.Layers.Breakup <= 0 {
		t.Fatalf("test point should have an active breakup mask, got %v", first.Layers.Breakup)
	}
	if last.Layers.DarkLine >= first.Layers.DarkLine {
		t.Errorf("full breakup strength did not suppress dark lines: %v >= %v",
			last.Layers.DarkLine, first.Layers.DarkLine)
	}
}

func TestVisibility(t *testing.T) {
	tests := []struct {
		breakup, strength, want float32
	}{
		{0, 1, 1},
		{1, 1, 0},
		{1, 0.85, 0.15},
		{0.5, 0.5, 0.75},
	}
	for _, tt := range tests {
		if got := Visibility(tt.breakup, tt.strength); abs32(got-tt.want) > 1e-6 {
			t.Errorf("Visibility(%v, %v) = %v, want %v", tt.breakup, tt.strength, got, tt.want)
		}
	}
}

func TestCenterScenario(t *testing.T) {
	p := DefaultParams()
	r := Evaluate(sampleAt(0.5, 0.5, 0), p)

	if r.Layers.TotalFoam >= 0.1 {
		t.Errorf("centre foam intensity = %v, want < 0.1", r.Layers.TotalFoam)
	}

	waterBlend := p.Palette.Background.Mix(p.Palette.DarkLine, r.Layers.DarkLine)
	if r.Color.Distance(waterBlend) >= r.Color.Distance(p.Palette.Foam) {
		t.Errorf("centre colour %+v closer to foam than to the water blend %+v", r.Color, waterBlend)
	}
}

func TestNearEdgeScenario(t *testing.T) {
	r := Evaluate(sampleAt(0.001, 0.5, 0), DefaultParams())
	if r.Layers.StaticGlowRaw < 0.95 {
		t.Errorf("edge glow near boundary = %v, want within 5%% of 1", r.Layers.StaticGlowRaw)
	}
}

func TestLapWaveIgnoresBreakup(t *testing.T) {
	s := sampleAt(0.03, 0.4, 2)
	off := DefaultParams()
	off.Layers.Breakup.Strength = 0
	on := DefaultParams()
	on.Layers.Breakup.Strength = 1

	if a, b := Evaluate(s, off).Layers.LapWave, Evaluate(s, on).Layers.LapWave; a != b {
		t.Errorf("lap wave changed with breakup strength: %v vs %v", a, b)
	}
}

func TestStreaksDisabledByDefault(t *testing.T) {
	sh := NewShader(DefaultParams(), nil)
	for u := float32(0.05); u < 1; u += 0.1 {
		if s := sh.Shade(sampleAt(u, 0.5, 1)).Layers.Streaks; s != 0 {
			t.Fatalf("streaks = %v with default strength, want 0", s)
		}
	}

	p := DefaultParams()
	p.Layers.Streaks.Strength = 0.5
	sh = NewShader(p, nil)
	var seen bool
	for u := float32(0.02); u < 1; u += 0.02 {
		for v := float32(0.02); v < 1; v += 0.05 {
			s := sh.Shade(sampleAt(u, v, 1)).Layers.Streaks
			if s < 0 || s > 0.5 {
				t.Fatalf("streaks = %v, outside [0, strength]", s)
			}
			seen = seen || s > 0
		}
	}
	if !seen {
		t.Error("enabled streaks never contributed")
	}
}

func TestCurrentsDecorrelated(t *testing.T) {
	p := DefaultParams()
	sh := NewShader(p, nil)
	adv := sh.Currents(math.Vec2{X: 0.4, Y: 0.6}, 1.5)

	if adv.Main == adv.Foam {
		t.Error("main and foam currents should differ")
	}
	if abs32(adv.Main.X) > p.Layers.MainCurrent.Strength || abs32(adv.Main.Y) > p.Layers.MainCurrent.Strength {
		t.Errorf("main current %v exceeds strength %v", adv.Main, p.Layers.MainCurrent.Strength)
	}
	if abs32(adv.Foam.X) > p.Layers.FoamCurrent.Strength || abs32(adv.Foam.Y) > p.Layers.FoamCurrent.Strength {
		t.Errorf("foam current %v exceeds strength %v", adv.Foam, p.Layers.FoamCurrent.Strength)
	}
}

func TestDarkLinesFollowCurrent(t *testing.T) {
	sh := NewShader(DefaultParams(), nil)
	p := math.Vec2{X: 0.4, Y: 0.5}

	// Shifting the sampling point by the current must equal advecting it
	adv := AdvectionState{Main: math.Vec2{X: 0.05, Y: -0.02}}
	moved := sh.DarkLines(p.Add(adv.Main), AdvectionState{}, 1, 1.0/600, 1)
	advected := sh.DarkLines(p, adv, 1, 1.0/600, 1)
	if abs32(moved-advected) > 1e-4 {
		t.Errorf("advected dark lines %v != shifted dark lines %v", advected, moved)
	}
}

func TestZeroPatternScale(t *testing.T) {
	p := DefaultParams()
	p.PatternScale = 0
	r := Evaluate(sampleAt(0.4, 0.6, 5), p)
	if !inUnit(r.Color.R) || !inUnit(r.Color.G) || !inUnit(r.Color.B) {
		t.Errorf("degenerate scale produced out-of-range colour %+v", r.Color)
	}
}

func TestAlternateFields(t *testing.T) {
	for _, kind := range noise.Kinds {
		field, err := noise.New(kind, 3)
		if err != nil {
			t.Fatalf("noise.New(%s): %v", kind, err)
		}
		sh := NewShader(DefaultParams(), field)
		for u := float32(0.1); u < 1; u += 0.2 {
			r := sh.Shade(sampleAt(u, 1-u, 2))
			if !inUnit(r.Color.R) || !inUnit(r.Color.G) || !inUnit(r.Color.B) {
				t.Fatalf("%s: colour out of range %+v", kind, r.Color)
			}
		}
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
