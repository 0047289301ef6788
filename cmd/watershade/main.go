// watershade bakes the procedural water surface into image files.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/watershade/internal/config"
	"github.com/Faultbox/watershade/internal/logger"
	"github.com/Faultbox/watershade/internal/render"
	"github.com/Faultbox/watershade/internal/water"
)

func main() {
	config.ParseFlags()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch command {
	case "render":
		err = cmdRender(ctx, cfg, args)
	case "sequence", "seq":
		err = cmdSequence(ctx, cfg, args)
	case "sample":
		err = cmdSample(cfg, args)
	case "noise":
		err = cmdNoise(ctx, cfg, args)
	case "config":
		err = cmdConfig(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`watershade - procedural water surface baker

Usage:
  watershade [global options] <command> [options]

Global options:
  -config <file>     Config file (default ./watershade.yaml or user config dir)
  -debug             Enable debug logging
  -width, -height    Texture size
  -scale             Pattern scale
  -timescale         Animation speed
  -noise <kind>      Noise field: simplex, opensimplex, perlin
  -format <fmt>      Image format: png, bmp

Commands:
  render   [-t time] [-o file]                  Bake one frame
  sequence [-n frames] [-fps fps] [-dir dir]    Bake an animation as numbered frames
  sample   [-t time] <u> <v>                    Print every layer at one coordinate
  noise    [-kind k] [-freq f] [-t z] [-o file] Bake a raw noise field (adds cellular)
  config   [-save file]                         Print the effective config as YAML

Examples:
  watershade render -o water.png
  watershade -width 512 -height 512 sequence -n 90 -dir frames
  watershade sample -t 2.5 0.25 0.5
  watershade noise -kind cellular -freq 8`)
}

func newBaker(cfg *config.Config) (*render.Baker, error) {
	shader, err := cfg.NewShader()
	if err != nil {
		return nil, err
	}
	return render.NewBaker(shader,
		render.WithTileSize(cfg.Render.TileSize),
		render.WithWorkers(cfg.Render.Workers),
	), nil
}

func newWriter(cfg *config.Config, prefix string) (*render.Writer, error) {
	format, err := render.ParseFormat(cfg.Render.Format)
	if err != nil {
		return nil, err
	}
	return render.NewWriter(cfg.Render.OutputDir, prefix, format), nil
}

func save(w *render.Writer, path string, img image.Image) (string, error) {
	if path == "" {
		return w.Write(img)
	}
	return path, w.WriteTo(path, img)
}

func cmdRender(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	t := fs.Float64("t", float64(cfg.Shader.Time), "Time in seconds")
	out := fs.String("o", "", "Output file (default: timestamped name in output_dir)")
	fs.Parse(args)

	baker, err := newBaker(cfg)
	if err != nil {
		return err
	}
	writer, err := newWriter(cfg, cfg.Render.Prefix)
	if err != nil {
		return err
	}

	img, err := baker.Bake(ctx, cfg.Render.Width, cfg.Render.Height, float32(*t))
	if err != nil {
		return err
	}

	path, err := save(writer, *out, img)
	if err != nil {
		return err
	}
	logger.Info("texture written", zap.String("path", path))
	fmt.Println(path)
	return nil
}

func cmdSequence(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("sequence", flag.ExitOnError)
	frames := fs.Int("n", cfg.Render.Frames, "Number of frames")
	fps := fs.Float64("fps", float64(cfg.Render.FPS), "Frames per second")
	start := fs.Float64("start", float64(cfg.Shader.Time), "Start time in seconds")
	dir := fs.String("dir", "", "Output directory (default: output_dir)")
	fs.Parse(args)

	if *frames <= 0 {
		return fmt.Errorf("frame count must be positive, got %d", *frames)
	}
	if *fps <= 0 {
		return fmt.Errorf("fps must be positive, got %v", *fps)
	}

	baker, err := newBaker(cfg)
	if err != nil {
		return err
	}
	writer, err := newWriter(cfg, cfg.Render.Prefix)
	if err != nil {
		return err
	}
	if *dir != "" {
		writer.SetOutputDir(*dir)
	}

	return baker.BakeSequence(ctx, cfg.Render.Width, cfg.Render.Height, *frames, float32(*fps), float32(*start),
		func(index int, t float32, img *image.NRGBA) error {
			path, err := writer.WriteFrame(index, img)
			if err != nil {
				return err
			}
			logger.Debug("frame written", zap.Int("frame", index), zap.Float32("time", t), zap.String("path", path))
			return nil
		})
}

func cmdSample(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	t := fs.Float64("t", float64(cfg.Shader.Time), "Time in seconds")
	fs.Parse(args)

	if fs.NArg() < 2 {
		return fmt.Errorf("usage: watershade sample [-t time] <u> <v>")
	}
	uv, err := parseUV(fs.Arg(0), fs.Arg(1))
	if err != nil {
		return err
	}

	shader, err := cfg.NewShader()
	if err != nil {
		return err
	}

	grid := water.NewGrid(cfg.Render.Width, cfg.Render.Height)
	res := shader.Shade(water.SampleFromUV(uv, float32(*t), grid.Resolution()))
	printResult(os.Stdout, uv, float32(*t), res)
	return nil
}

func cmdNoise(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("noise", flag.ExitOnError)
	kind := fs.String("kind", cfg.Noise.Kind, "Field: simplex, opensimplex, perlin, cellular")
	freq := fs.Float64("freq", 4, "Frequency across the texture")
	z := fs.Float64("t", 0, "Third coordinate")
	out := fs.String("o", "", "Output file (default: timestamped name in output_dir)")
	fs.Parse(args)

	f, err := scalarField(*kind, cfg.Noise.Seed, float32(*freq), float32(*z))
	if err != nil {
		return err
	}

	baker := render.NewBaker(nil,
		render.WithTileSize(cfg.Render.TileSize),
		render.WithWorkers(cfg.Render.Workers),
	)
	writer, err := newWriter(cfg, "noise_"+*kind)
	if err != nil {
		return err
	}

	img, err := baker.BakeScalar(ctx, cfg.Render.Width, cfg.Render.Height, f)
	if err != nil {
		return err
	}

	path, err := save(writer, *out, img)
	if err != nil {
		return err
	}
	logger.Info("noise written", zap.String("kind", *kind), zap.String("path", path))
	fmt.Println(path)
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	path := fs.String("save", "", "Write the effective config to this file")
	fs.Parse(args)

	if *path != "" {
		if err := cfg.SaveTo(*path); err != nil {
			return err
		}
		logger.Info("config saved", zap.String("path", *path))
		return nil
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	os.Stdout.Write(data)
	return nil
}
