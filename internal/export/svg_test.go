package export

import (
	"strings"
	"testing"

	"github.com/windlab/sailforce/internal/rig"
	"github.com/windlab/sailforce/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 19)

	svg := CanvasToSVG(c, 4)

	if !strings.Contains(svg, "<svg") {
		t.Error("expected svg root element")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("expected dots for lit sub-pixels")
	}
}

func TestCanvasToSVGNil(t *testing.T) {
	if svg := CanvasToSVG(nil, 4); svg != "" {
		t.Errorf("expected empty string for nil canvas, got %q", svg)
	}
}

func TestForcesToSVG(t *testing.T) {
	out := rig.Compute(rig.DefaultInputs())
	svg := ForcesToSVG(viz.Vectors(out), 600, 600)

	if !strings.Contains(svg, "<svg") {
		t.Error("expected svg root element")
	}
	for _, label := range []string{"apparent wind", "lift", "drag", "resultant"} {
		if !strings.Contains(svg, label) {
			t.Errorf("expected label %q in svg", label)
		}
	}
	// Shaft plus two head strokes per vector.
	if n := strings.Count(svg, "<line"); n < 12 {
		t.Errorf("expected at least 12 line elements, got %d", n)
	}
}

func TestForcesToSVGEmpty(t *testing.T) {
	if svg := ForcesToSVG(nil, 100, 100); svg != "" {
		t.Errorf("expected empty string for no vectors, got %q", svg)
	}
}
