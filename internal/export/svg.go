// Package export converts computed force data into SVG, CSV and JSON.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/windlab/sailforce/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG, one dot per lit sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

var vectorColors = map[string]string{
	"apparent wind": "#00ccff",
	"lift":          "#00ff88",
	"drag":          "#ff4444",
	"resultant":     "#ffcc00",
}

// ForcesToSVG renders labeled board-frame vectors as arrows from the image
// center. +x (forward) points up, +y (starboard) points right. Wind and
// force vectors are scaled independently: the first vector is assumed to be
// the wind, the rest forces, matching viz.Vectors order.
func ForcesToSVG(vecs []viz.Vector, width, height int) string {
	if len(vecs) == 0 {
		return ""
	}

	cx := float64(width) / 2
	cy := float64(height) / 2
	reach := 0.42 * math.Min(float64(width), float64(height))

	windMag := math.Hypot(vecs[0].X, vecs[0].Y)
	forceMag := 0.0
	for _, v := range vecs[1:] {
		if m := math.Hypot(v.X, v.Y); m > forceMag {
			forceMag = m
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, v := range vecs {
		mag := forceMag
		if i == 0 {
			mag = windMag
		}
		if mag == 0 {
			continue
		}
		scale := reach / mag

		tx := cx + v.Y*scale
		ty := cy - v.X*scale

		color, ok := vectorColors[v.Label]
		if !ok {
			color = "#ffffff"
		}

		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, cx, cy, tx, ty, color))

		// Arrowhead: two strokes swept back from the tip.
		angle := math.Atan2(ty-cy, tx-cx)
		headLen := 10.0
		for _, a := range []float64{angle + 2.6, angle - 2.6} {
			hx := tx + headLen*math.Cos(a)
			hy := ty + headLen*math.Sin(a)
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, tx, ty, hx, hy, color))
		}

		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="12">%s</text>
`, tx+6, ty-6, color, v.Label))
	}

	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2" fill="#ffffff"/>
</svg>`, cx, cy))
	return sb.String()
}
