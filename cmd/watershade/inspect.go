package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Faultbox/watershade/internal/render"
	"github.com/Faultbox/watershade/internal/water"
	"github.com/Faultbox/watershade/pkg/math"
	"github.com/Faultbox/watershade/pkg/noise"
)

const kindCellular = "cellular"

func parseUV(u, v string) (math.Vec2, error) {
	x, err := strconv.ParseFloat(u, 32)
	if err != nil {
		return math.Vec2{}, fmt.Errorf("invalid u %q: %w", u, err)
	}
	y, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return math.Vec2{}, fmt.Errorf("invalid v %q: %w", v, err)
	}
	return math.Vec2{X: float32(x), Y: float32(y)}, nil
}

// scalarField maps a noise kind onto the unit interval for grayscale output.
// Gradient fields are remapped from [-1, 1]; cellular distance is used as is.
func scalarField(kind string, seed int64, freq, z float32) (render.ScalarFunc, error) {
	if kind == kindCellular {
		return func(uv math.Vec2) float32 {
			return noise.Cellular3(uv.Scale(freq).Extend(z))
		}, nil
	}

	k, err := noise.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	field, err := noise.New(k, seed)
	if err != nil {
		return nil, err
	}
	return func(uv math.Vec2) float32 {
		return math.Remap01(field.Eval3(uv.X*freq, uv.Y*freq, z))
	}, nil
}

func printResult(out io.Writer, uv math.Vec2, t float32, res water.Result) {
	lv := res.Layers
	fmt.Fprintf(out, "uv:            (%.4f, %.4f)\n", uv.X, uv.Y)
	fmt.Fprintf(out, "time:          %.3f\n", t)
	fmt.Fprintf(out, "color:         %s\n", res.Color.Hex())
	fmt.Fprintf(out, "alpha:         %.4f\n", res.Alpha)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Layers:")
	for _, row := range []struct {
		name  string
		value float32
	}{
		{"edge distance", lv.EdgeDistance},
		{"breakup", lv.Breakup},
		{"visibility", lv.Visibility},
		{"dark line", lv.DarkLine},
		{"foam band", lv.FoamBand},
		{"streaks", lv.Streaks},
		{"static glow", lv.StaticGlow},
		{"lap wave", lv.LapWave},
		{"radial wave", lv.RadialWave},
		{"total foam", lv.TotalFoam},
	} {
		fmt.Fprintf(out, "  %-14s %.4f\n", row.name, row.value)
	}
	fmt.Fprintf(out, "  %-14s (%.4f, %.4f)\n", "main current", lv.Currents.Main.X, lv.Currents.Main.Y)
	fmt.Fprintf(out, "  %-14s (%.4f, %.4f)\n", "foam current", lv.Currents.Foam.X, lv.Currents.Foam.Y)
}
