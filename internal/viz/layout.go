package viz

import (
	"math"

	"github.com/rotorlab/rotorsim/internal/rotor"
)

// DrawCrossSection renders the rotor seen along the spin axis: the disk
// outline, one mass marker per component (axial position ignored), the axis
// center, and a cross at the combined center of mass.
func DrawCrossSection(c rotor.Case, result *rotor.Result, width, height int) string {
	canvas := NewCanvas(width, height)
	cw, ch := canvas.PixelSize()
	cx, cy := cw/2, ch/2

	// Fit the farthest component (and the COM) inside the disk.
	maxR := result.RadialOffset
	for _, comp := range c.Components {
		if r := comp.Position.PlanarNorm(); r > maxR {
			maxR = r
		}
	}
	if maxR == 0 {
		maxR = 1
	}

	diskR := minInt(cx, cy) - 2
	scale := float64(diskR) * 0.85 / maxR

	canvas.DrawCircle(cx, cy, diskR)
	canvas.Set(cx, cy)
	canvas.Set(cx+1, cy)

	maxMass := 0.0
	for _, comp := range c.Components {
		if comp.Mass > maxMass {
			maxMass = comp.Mass
		}
	}

	for _, comp := range c.Components {
		px := cx + int(comp.Position.X*scale)
		py := cy - int(comp.Position.Y*scale/2) // cell aspect correction
		size := 1
		if maxMass > 0 && comp.Mass/maxMass > 0.6 {
			size = 2
		}
		canvas.DrawDot(px, py, size)
	}

	comX := cx + int(result.CenterOfMass.X*scale)
	comY := cy - int(result.CenterOfMass.Y*scale/2)
	canvas.DrawLine(comX-3, comY, comX+3, comY)
	canvas.DrawLine(comX, comY-3, comX, comY+3)

	return canvas.String()
}

// DrawSignal renders a displacement signal as a polyline filling the canvas.
func DrawSignal(signal []float64, width, height int) string {
	canvas := NewCanvas(width, height)
	if len(signal) < 2 {
		return canvas.String()
	}
	cw, ch := canvas.PixelSize()

	maxAbs := 0.0
	for _, v := range signal {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	mid := ch / 2
	scaleY := float64(mid-1) / maxAbs
	prevX, prevY := 0, mid-int(signal[0]*scaleY)
	for i := 1; i < len(signal); i++ {
		x := i * (cw - 1) / (len(signal) - 1)
		y := mid - int(signal[i]*scaleY)
		canvas.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}

	return canvas.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
