package water

import "github.com/Faultbox/watershade/pkg/math"

// Grid maps the pixels of a render target onto the unit surface.
type Grid struct {
	Width  int
	Height int
	FlipV  bool // Put v=0 on the bottom row, as a GL framebuffer does
}

// NewGrid creates a grid with GL orientation.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height, FlipV: true}
}

// Resolution returns the grid size as a vector.
func (g Grid) Resolution() math.Vec2 {
	return math.Vec2{X: float32(g.Width), Y: float32(g.Height)}
}

// UV returns the surface coordinate of the centre of pixel (x, y).
func (g Grid) UV(x, y int) math.Vec2 {
	if g.Width <= 0 || g.Height <= 0 {
		return math.Vec2{}
	}
	u := (float32(x) + 0.5) / float32(g.Width)
	v := (float32(y) + 0.5) / float32(g.Height)
	if g.FlipV {
		v = 1 - v
	}
	return math.Vec2{X: u, Y: v}
}

// Sample builds the evaluation input for pixel (x, y) at time t, using the
// pixel's uv for both channels.
func (g Grid) Sample(x, y int, t float32) Sample {
	return SampleFromUV(g.UV(x, y), t, g.Resolution())
}

// DefaultFPS is the default animation rate for baked frame sequences.
const DefaultFPS = 30.0

// FrameTime returns the clock value of animation frame index at fps,
// starting from start seconds.
func FrameTime(index int, fps, start float32) float32 {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return start + float32(index)/fps
}

// FrameCount returns how many frames cover duration seconds at fps.
func FrameCount(duration, fps float32) int {
	if duration <= 0 {
		return 0
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	n := int(duration * fps)
	if float32(n) < duration*fps {
		n++
	}
	return n
}
