package export

import (
	"fmt"
	"strings"

	"github.com/rotorlab/rotorsim/internal/rotor"
)

var strokeColors = []string{"#00ccff", "#ff8800", "#00ff88", "#ff44aa"}

// SignalsToSVG renders the displacement proxy of every case as a polyline on
// a shared time/displacement plane.
func SignalsToSVG(times []float64, results []*rotor.Result, width, height int) string {
	if len(times) < 2 || len(results) == 0 {
		return ""
	}

	minY, maxY := 0.0, 0.0
	for _, r := range results {
		for _, v := range r.Signal {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	minX, maxX := times[0], times[len(times)-1]
	rangeX := maxX - minX
	if rangeX == 0 {
		rangeX = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Zero-displacement axis.
	zeroY := float64(height) - (0-minY)/rangeY*float64(height)
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#333333" stroke-width="1"/>
`, zeroY, width, zeroY))

	for idx, r := range results {
		color := strokeColors[idx%len(strokeColors)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))

		for i, v := range r.Signal {
			x := (times[i] - minX) / rangeX * float64(width)
			y := float64(height) - (v-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
