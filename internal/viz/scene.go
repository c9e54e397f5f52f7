package viz

import (
	"math"

	"github.com/windlab/sailforce/internal/rig"
)

// Vector is a labeled board-frame vector for drawing and export.
type Vector struct {
	Label string
	X, Y  float64
}

// Vectors extracts the drawable vectors from a force-model output in a
// fixed order: apparent wind, lift, drag, resultant.
func Vectors(out rig.Outputs) []Vector {
	return []Vector{
		{Label: "apparent wind", X: out.VaX, Y: out.VaY},
		{Label: "lift", X: out.LiftX, Y: out.LiftY},
		{Label: "drag", X: out.DragX, Y: out.DragY},
		{Label: "resultant", X: out.FX, Y: out.FY},
	}
}

// RenderForces draws the output vectors as arrows from a common origin onto
// a w x h character canvas. The board frame maps +x (forward) to screen-up
// and +y (starboard) to screen-right. The wind vector and the force vectors
// are auto-scaled independently since they carry different units.
func RenderForces(out rig.Outputs, w, h int) *Canvas {
	c := NewCanvas(w, h)

	// Sub-pixel space.
	pw := w * 2
	ph := h * 4
	cx := pw / 2
	cy := ph / 2
	reach := 0.9 * float64(minInt(cx, cy))

	vecs := Vectors(out)

	windMag := math.Hypot(vecs[0].X, vecs[0].Y)
	forceMag := 0.0
	for _, v := range vecs[1:] {
		if m := math.Hypot(v.X, v.Y); m > forceMag {
			forceMag = m
		}
	}

	for i, v := range vecs {
		mag := forceMag
		if i == 0 {
			mag = windMag
		}
		if mag == 0 {
			continue
		}
		scale := reach / mag

		// +x forward is up on screen, +y starboard is right.
		tx := cx + int(math.Round(v.Y*scale))
		ty := cy - int(math.Round(v.X*scale))
		c.DrawArrow(cx, cy, tx, ty)
	}

	// Origin marker.
	c.Set(cx, cy)

	return c
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
