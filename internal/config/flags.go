package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagWidth     = flag.Int("width", 0, "Texture width")
	flagHeight    = flag.Int("height", 0, "Texture height")
	flagScale     = flag.Float64("scale", 0, "Pattern scale")
	flagTimeScale = flag.Float64("timescale", 0, "Animation speed")
	flagNoise     = flag.String("noise", "", "Noise field (simplex, opensimplex, perlin)")
	flagFormat    = flag.String("format", "", "Image format (png, bmp)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
	}
	if *flagScale > 0 {
		cfg.Shader.PatternScale = float32(*flagScale)
	}
	if *flagTimeScale > 0 {
		cfg.Shader.TimeScale = float32(*flagTimeScale)
	}
	if *flagNoise != "" {
		cfg.Noise.Kind = *flagNoise
	}
	if *flagFormat != "" {
		cfg.Render.Format = *flagFormat
	}
}
