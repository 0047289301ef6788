// Package config handles watershade configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/watershade/internal/render"
	"github.com/Faultbox/watershade/internal/water"
	"github.com/Faultbox/watershade/pkg/noise"
)

// Config holds all settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Shader  ShaderConfig  `yaml:"shader"`
	Palette PaletteConfig `yaml:"palette"`
	Noise   NoiseConfig   `yaml:"noise"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds texture baking settings.
type RenderConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	TileSize  int     `yaml:"tile_size"`
	Workers   int     `yaml:"workers"` // 0 = GOMAXPROCS
	Format    string  `yaml:"format"`
	OutputDir string  `yaml:"output_dir"`
	Prefix    string  `yaml:"prefix"`
	FPS       float32 `yaml:"fps"`
	Frames    int     `yaml:"frames"`
}

// ShaderConfig holds the model's tunables.
type ShaderConfig struct {
	PatternScale    float32 `yaml:"pattern_scale"`
	TimeScale       float32 `yaml:"time_scale"`
	Alpha           float32 `yaml:"alpha"`
	Transparent     bool    `yaml:"transparent"`
	DerivativeStep  float32 `yaml:"derivative_step"` // 0 = one pixel
	Time            float32 `yaml:"time"`
	BreakupStrength float32 `yaml:"breakup_strength"`
	StreakStrength  float32 `yaml:"streak_strength"`
}

// PaletteConfig holds CSS colour strings.
type PaletteConfig struct {
	Background string `yaml:"background"`
	DarkLine   string `yaml:"dark_line"`
	Glow       string `yaml:"glow"`
	Foam       string `yaml:"foam"`
}

// NoiseConfig selects the noise field.
type NoiseConfig struct {
	Kind string `yaml:"kind"`
	Seed int64  `yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the reference values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:     800,
			Height:    600,
			TileSize:  render.DefaultTileSize,
			Workers:   0,
			Format:    string(render.FormatPNG),
			OutputDir: "",
			Prefix:    "water",
			FPS:       water.DefaultFPS,
			Frames:    60,
		},
		Shader: ShaderConfig{
			PatternScale:    1.0,
			TimeScale:       1.0,
			Alpha:           0.85,
			Transparent:     false,
			DerivativeStep:  0,
			Time:            0,
			BreakupStrength: water.DefaultBreakup.Strength,
			StreakStrength:  water.DefaultStreaks.Strength,
		},
		Palette: PaletteConfig{
			Background: water.DefaultBackgroundHex,
			DarkLine:   water.DefaultDarkLineHex,
			Glow:       water.DefaultGlowHex,
			Foam:       water.DefaultFoamHex,
		},
		Noise: NoiseConfig{
			Kind: string(noise.KindSimplex),
			Seed: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		errs = append(errs, fmt.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height))
	}
	if c.Render.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile_size must be positive, got %d", c.Render.TileSize))
	}
	if c.Render.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Render.Workers))
	}
	if _, err := render.ParseFormat(c.Render.Format); err != nil {
		errs = append(errs, err)
	}
	if c.Render.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %v", c.Render.FPS))
	}
	if c.Shader.DerivativeStep < 0 {
		errs = append(errs, fmt.Errorf("derivative_step must not be negative, got %v", c.Shader.DerivativeStep))
	}
	if _, err := noise.ParseKind(c.Noise.Kind); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Palette.parse(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (p PaletteConfig) parse() (water.Palette, error) {
	var pal water.Palette
	var errs []error
	for _, entry := range []struct {
		dst *water.Color
		src string
	}{
		{&pal.Background, p.Background},
		{&pal.DarkLine, p.DarkLine},
		{&pal.Glow, p.Glow},
		{&pal.Foam, p.Foam},
	} {
		c, err := water.ParseColor(entry.src)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*entry.dst = c
	}
	return pal, errors.Join(errs...)
}

// Params converts the shader and palette sections into model parameters.
func (c *Config) Params() (water.Params, error) {
	pal, err := c.Palette.parse()
	if err != nil {
		return water.Params{}, err
	}

	p := water.DefaultParams()
	p.PatternScale = c.Shader.PatternScale
	p.TimeScale = c.Shader.TimeScale
	p.Alpha = c.Shader.Alpha
	p.Transparent = c.Shader.Transparent
	p.DerivativeStep = c.Shader.DerivativeStep
	p.Palette = pal
	p.Layers.Breakup.Strength = c.Shader.BreakupStrength
	p.Layers.Streaks.Strength = c.Shader.StreakStrength
	return p, nil
}

// Field builds the configured noise field.
func (c *Config) Field() (noise.Field, error) {
	kind, err := noise.ParseKind(c.Noise.Kind)
	if err != nil {
		return nil, err
	}
	return noise.New(kind, c.Noise.Seed)
}

// NewShader builds a shader from the configuration.
func (c *Config) NewShader() (*water.Shader, error) {
	params, err := c.Params()
	if err != nil {
		return nil, err
	}
	field, err := c.Field()
	if err != nil {
		return nil, err
	}
	return water.NewShader(params, field), nil
}
