// Package water implements the procedural water-surface colour model.
//
// The model is a pure function of a Sample and a Params value: a stack of
// noise-driven pattern layers (advection currents, breakup mask, dark lines,
// foam bands, streaks, edge glow, lapping waves, radial waves) composited
// into one RGB colour and an alpha.
package water

import "github.com/Faultbox/watershade/pkg/math"

// Params holds every tunable of the model. It is passed by value into each
// evaluation and never mutated by the model.
type Params struct {
	PatternScale float32 // Global spatial frequency multiplier
	TimeScale    float32 // Global animation speed multiplier
	Alpha        float32 // Base opacity, used only when Transparent is set
	Transparent  bool

	// DerivativeStep is the one-pixel step in uv units used to approximate
	// screen-space derivatives. Zero means 1/Resolution.Y.
	DerivativeStep float32

	Palette Palette
	Layers  LayerParams
}

// LayerParams groups the tuning constants of every pattern layer.
type LayerParams struct {
	EdgeDistortion EdgeDistortionParams
	MainCurrent    CurrentParams
	FoamCurrent    CurrentParams
	Breakup        BreakupParams
	DarkLine       DarkLineParams
	FoamBand       FoamBandParams
	Streaks        StreakParams
	Glow           GlowParams
	LapWave        LapWaveParams
	RadialWave     RadialWaveParams
}

// EdgeDistortionParams perturbs the edge distance field of the lapping waves.
type EdgeDistortionParams struct {
	Frequency float32
	Speed     float32
	Strength  float32
	Offset    math.Vec3 // Offset of the second sample
}

// CurrentParams describes one advection current.
type CurrentParams struct {
	Frequency float32
	Speed     float32
	Strength  float32
	Base      math.Vec3 // Offset of the first sample
	Offset    math.Vec3 // Offset of the second sample relative to the first
}

// BreakupParams describes the large-scale breakup mask.
type BreakupParams struct {
	Frequency float32
	Speed     float32
	Threshold float32
	Softness  float32
	Strength  float32 // How strongly the mask suppresses dark lines and foam
	Offset    math.Vec3
}

// DarkLineParams describes the advected dark bands.
type DarkLineParams struct {
	Frequency float32
	Speed     float32
	Threshold float32 // Remapped noise below this is lit
	Sharpness float32 // Antialiasing width multiplier
	Opacity   float32
}

// FoamBandParams describes the advected foam bands.
type FoamBandParams struct {
	Frequency float32
	Speed     float32
	Start     float32
	End       float32
	Sharpness float32
	Opacity   float32
	Offset    math.Vec3
}

// StreakParams describes current-aligned streaks. Strength <= 0 disables
// the layer entirely.
type StreakParams struct {
	Strength  float32
	Frequency float32
	Speed     float32
	Stretch   float32 // Scale along the current direction
	Threshold float32
}

// GlowParams describes the static edge glow.
type GlowParams struct {
	Distance  float32
	Sharpness float32
	Alpha     float32
	DarkBoost float32 // Extra glow on dark lines
}

// LapWaveParams describes the shoreline lapping waves.
type LapWaveParams struct {
	Frequency    float32
	Speed        float32
	Sharpness    float32
	Intensity    float32
	FadeDistance float32
}

// RadialWaveParams describes the rotating spoke waves.
type RadialWaveParams struct {
	Origin         math.Vec2 // In uv2 space, aspect-corrected on use
	RotationSpeed  float32   // Radians per second
	JitterFreq     float32
	JitterSpeed    float32
	JitterAmount   float32 // Radians
	Spokes         int
	Frequency      float32
	Speed          float32
	Sharpness      float32
	MaskFreq       float32
	MaskSpeed      float32
	MaskThreshold  float32
	MaskSoftness   float32
	MaskOffset     math.Vec3
	Intensity      float32
	Radius         float32
	InnerFraction  float32 // Full strength inside Radius*InnerFraction
	OriginFadeSize float32 // Fade-in around the origin where the angle is undefined
}

// Default tuning.
var (
	DefaultEdgeDistortion = EdgeDistortionParams{
		Frequency: 6.0,
		Speed:     0.15,
		Strength:  0.02,
		Offset:    math.Vec3{X: 17.3, Y: 9.1, Z: 3.7},
	}
	DefaultMainCurrent = CurrentParams{
		Frequency: 1.2,
		Speed:     0.08,
		Strength:  0.12,
		Offset:    math.Vec3{X: 31.7, Y: 11.3, Z: 5.9},
	}
	DefaultFoamCurrent = CurrentParams{
		Frequency: 1.8,
		Speed:     0.11,
		Strength:  0.09,
		Base:      math.Vec3{X: 47.2, Y: 23.9, Z: 8.1},
		Offset:    math.Vec3{X: 5.4, Y: 71.8, Z: 2.3},
	}
	DefaultBreakup = BreakupParams{
		Frequency: 0.9,
		Speed:     0.05,
		Threshold: 0.55,
		Softness:  0.15,
		Strength:  0.85,
		Offset:    math.Vec3{X: 13.1, Y: 57.3},
	}
	DefaultDarkLine = DarkLineParams{
		Frequency: 4.0,
		Speed:     0.12,
		Threshold: 0.42,
		Sharpness: 1.5,
		Opacity:   0.65,
	}
	DefaultFoamBand = FoamBandParams{
		Frequency: 5.0,
		Speed:     0.15,
		Start:     0.70,
		End:       0.74,
		Sharpness: 1.5,
		Opacity:   0.8,
		Offset:    math.Vec3{X: 91.7, Y: 37.1},
	}
	DefaultStreaks = StreakParams{
		Strength:  0,
		Frequency: 8.0,
		Speed:     0.2,
		Stretch:   0.25,
		Threshold: 0.6,
	}
	DefaultGlow = GlowParams{
		Distance:  0.08,
		Sharpness: 2.0,
		Alpha:     0.35,
		DarkBoost: 1.8,
	}
	DefaultLapWave = LapWaveParams{
		Frequency:    18.0,
		Speed:        0.35,
		Sharpness:    6.0,
		Intensity:    0.55,
		FadeDistance: 0.12,
	}
	DefaultRadialWave = RadialWaveParams{
		Origin:         math.Vec2{X: 0.28, Y: 0.7},
		RotationSpeed:  0.05,
		JitterFreq:     3.0,
		JitterSpeed:    0.1,
		JitterAmount:   0.4,
		Spokes:         7,
		Frequency:      24.0,
		Speed:          0.6,
		Sharpness:      8.0,
		MaskFreq:       1.4,
		MaskSpeed:      0.07,
		MaskThreshold:  0.6,
		MaskSoftness:   0.1,
		MaskOffset:     math.Vec3{X: 63.2, Y: 19.4},
		Intensity:      0.45,
		Radius:         0.3,
		InnerFraction:  0.4,
		OriginFadeSize: 0.03,
	}
)

// DefaultLayerParams returns the reference layer tuning.
func DefaultLayerParams() LayerParams {
	return LayerParams{
		EdgeDistortion: DefaultEdgeDistortion,
		MainCurrent:    DefaultMainCurrent,
		FoamCurrent:    DefaultFoamCurrent,
		Breakup:        DefaultBreakup,
		DarkLine:       DefaultDarkLine,
		FoamBand:       DefaultFoamBand,
		Streaks:        DefaultStreaks,
		Glow:           DefaultGlow,
		LapWave:        DefaultLapWave,
		RadialWave:     DefaultRadialWave,
	}
}

// DefaultParams returns an opaque configuration with unit scales.
func DefaultParams() Params {
	return Params{
		PatternScale: 1.0,
		TimeScale:    1.0,
		Alpha:        0.85,
		Palette:      DefaultPalette(),
		Layers:       DefaultLayerParams(),
	}
}

// defaultDerivativeStep is used when neither Params nor the sample provide
// a usable pixel size.
const defaultDerivativeStep = 1.0 / 720.0

// derivativeStep returns the finite-difference step for a render target.
func (p Params) derivativeStep(resolution math.Vec2) float32 {
	if p.DerivativeStep > 0 {
		return p.DerivativeStep
	}
	if resolution.Y > 0 {
		return 1 / resolution.Y
	}
	return defaultDerivativeStep
}
