// Package render bakes the water model into images on the CPU.
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/watershade/internal/logger"
	"github.com/Faultbox/watershade/internal/water"
	"github.com/Faultbox/watershade/pkg/math"
)

// DefaultTileSize is the edge length of the square tiles baked in parallel.
const DefaultTileSize = 64

// Baker renders frames tile by tile across a bounded worker pool.
// Evaluation is pure, so tiles have no ordering requirement.
type Baker struct {
	shader   *water.Shader
	tileSize int
	workers  int
}

// Option configures a Baker.
type Option func(*Baker)

// WithTileSize sets the tile edge length. Non-positive values are ignored.
func WithTileSize(n int) Option {
	return func(b *Baker) {
		if n > 0 {
			b.tileSize = n
		}
	}
}

// WithWorkers sets how many tiles are baked at once. Non-positive values are
// ignored.
func WithWorkers(n int) Option {
	return func(b *Baker) {
		if n > 0 {
			b.workers = n
		}
	}
}

// NewBaker creates a baker for shader.
func NewBaker(shader *water.Shader, opts ...Option) *Baker {
	b := &Baker{
		shader:   shader,
		tileSize: DefaultTileSize,
		workers:  runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Tiles splits a width x height target into tiles of at most size x size.
func Tiles(width, height, size int) []image.Rectangle {
	if width <= 0 || height <= 0 || size <= 0 {
		return nil
	}
	var tiles []image.Rectangle
	for y := 0; y < height; y += size {
		for x := 0; x < width; x += size {
			tiles = append(tiles, image.Rect(x, y, min(x+size, width), min(y+size, height)))
		}
	}
	return tiles
}

// Bake renders one frame at time t.
func (b *Baker) Bake(ctx context.Context, width, height int, t float32) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	start := time.Now()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	grid := water.NewGrid(width, height)

	err := b.forEachTile(ctx, width, height, func(tile image.Rectangle) {
		for y := tile.Min.Y; y < tile.Max.Y; y++ {
			for x := tile.Min.X; x < tile.Max.X; x++ {
				r := b.shader.Shade(grid.Sample(x, y, t))
				img.SetNRGBA(x, y, r.Color.NRGBA(r.Alpha))
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("baking frame at t=%.3f: %w", t, err)
	}

	logger.Debug("frame baked",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float32("time", t),
		zap.Duration("elapsed", time.Since(start)))
	return img, nil
}

// FrameFunc receives each baked frame of a sequence.
type FrameFunc func(index int, t float32, img *image.NRGBA) error

// BakeSequence renders frames consecutive animation frames at fps starting
// from start seconds and hands each to fn in order.
func (b *Baker) BakeSequence(ctx context.Context, width, height, frames int, fps, start float32, fn FrameFunc) error {
	for i := 0; i < frames; i++ {
		t := water.FrameTime(i, fps, start)
		img, err := b.Bake(ctx, width, height, t)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if err := fn(i, t, img); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	logger.Info("sequence baked", zap.Int("frames", frames), zap.Float32("fps", fps))
	return nil
}

// ScalarFunc maps a surface coordinate to a value in [0, 1].
type ScalarFunc func(uv math.Vec2) float32

// BakeScalar renders f as a grayscale image, clamping its output to [0, 1].
func (b *Baker) BakeScalar(ctx context.Context, width, height int, f ScalarFunc) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	grid := water.NewGrid(width, height)

	err := b.forEachTile(ctx, width, height, func(tile image.Rectangle) {
		for y := tile.Min.Y; y < tile.Max.Y; y++ {
			for x := tile.Min.X; x < tile.Max.X; x++ {
				v := math.Saturate(f(grid.UV(x, y)))
				img.SetGray(x, y, color.Gray{Y: uint8(v*255 + 0.5)})
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("baking scalar field: %w", err)
	}
	return img, nil
}

// forEachTile runs fn over every tile on the worker pool. It stops handing
// out tiles once ctx is cancelled.
func (b *Baker) forEachTile(ctx context.Context, width, height int, fn func(image.Rectangle)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for _, tile := range Tiles(width, height, b.tileSize) {
		tile := tile
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(tile)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	// Cancellation can stop the loop before any tile reports it
	return ctx.Err()
}
