package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Faultbox/watershade/internal/water"
	"github.com/Faultbox/watershade/pkg/math"
)

func TestParseUV(t *testing.T) {
	uv, err := parseUV("0.25", "0.75")
	if err != nil {
		t.Fatalf("parseUV: %v", err)
	}
	if uv.X != 0.25 || uv.Y != 0.75 {
		t.Errorf("got %+v, want (0.25, 0.75)", uv)
	}

	if _, err := parseUV("x", "0.5"); err == nil {
		t.Error("expected error for invalid u")
	}
	if _, err := parseUV("0.5", ""); err == nil {
		t.Error("expected error for empty v")
	}
}

func TestScalarField(t *testing.T) {
	for _, kind := range []string{"simplex", "opensimplex", "perlin", "cellular"} {
		t.Run(kind, func(t *testing.T) {
			f, err := scalarField(kind, 7, 6, 0.5)
			if err != nil {
				t.Fatalf("scalarField: %v", err)
			}
			for _, uv := range []math.Vec2{{X: 0, Y: 0}, {X: 0.31, Y: 0.77}, {X: 0.9, Y: 0.1}} {
				v := f(uv)
				if v < 0 || v > 2 {
					t.Errorf("value at %+v = %f out of range", uv, v)
				}
			}
		})
	}

	if _, err := scalarField("worley", 0, 1, 0); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestPrintResult(t *testing.T) {
	uv := math.Vec2{X: 0.5, Y: 0.5}
	res := water.Evaluate(water.SampleFromUV(uv, 0, math.Vec2{X: 800, Y: 600}), water.DefaultParams())

	var buf bytes.Buffer
	printResult(&buf, uv, 0, res)

	out := buf.String()
	for _, want := range []string{"color:", res.Color.Hex(), "visibility", "total foam", "main current"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
