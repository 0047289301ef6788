package water

import "testing"

func TestGridUV(t *testing.T) {
	g := Grid{Width: 4, Height: 2}

	uv := g.UV(0, 0)
	if uv.X != 0.125 || uv.Y != 0.25 {
		t.Errorf("UV(0, 0) = %v, want (0.125, 0.25)", uv)
	}

	flipped := NewGrid(4, 2).UV(0, 0)
	if flipped.X != 0.125 || flipped.Y != 0.75 {
		t.Errorf("flipped UV(0, 0) = %v, want (0.125, 0.75)", flipped)
	}

	if empty := (Grid{}).UV(1, 1); empty.X != 0 || empty.Y != 0 {
		t.Errorf("empty grid UV = %v, want zero", empty)
	}
}

func TestGridSample(t *testing.T) {
	g := NewGrid(800, 600)
	s := g.Sample(400, 300, 2.5)
	if s.UV != s.UV2 {
		t.Error("grid samples should reuse uv as uv2")
	}
	if s.Resolution.X != 800 || s.Resolution.Y != 600 || s.Time != 2.5 {
		t.Errorf("Sample() = %+v", s)
	}
}

func TestFrameTime(t *testing.T) {
	tests := []struct {
		index      int
		fps, start float32
		want       float32
	}{
		{0, 30, 0, 0},
		{30, 30, 0, 1},
		{15, 30, 2, 2.5},
		{30, 0, 0, 1}, // Falls back to DefaultFPS
	}
	for _, tt := range tests {
		if got := FrameTime(tt.index, tt.fps, tt.start); abs32(got-tt.want) > 1e-6 {
			t.Errorf("FrameTime(%d, %v, %v) = %v, want %v", tt.index, tt.fps, tt.start, got, tt.want)
		}
	}
}

func TestFrameCount(t *testing.T) {
	tests := []struct {
		duration, fps float32
		want          int
	}{
		{1, 30, 30},
		{0.5, 24, 12},
		{0.1, 24, 3},
		{0, 30, 0},
		{2, 0, 60},
	}
	for _, tt := range tests {
		if got := FrameCount(tt.duration, tt.fps); got != tt.want {
			t.Errorf("FrameCount(%v, %v) = %d, want %d", tt.duration, tt.fps, got, tt.want)
		}
	}
}
