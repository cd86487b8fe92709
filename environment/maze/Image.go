package maze

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/tabular/utils/floatutils"
)

// DefaultUnit is the default width in pixels of a single maze cell
const DefaultUnit float64 = 40

// Image draws the maze with cells unit pixels wide. The explorer is a red
// square, hells are black squares and the goal is a yellow circle.
//
// If values is non-nil, each ground cell with an entry is shaded green
// (positive value) or red (negative value) with an opacity proportional
// to the magnitude of its value, clipped to 1.
func (m *Maze) Image(unit float64, values map[Cell]float64) image.Image {
	width := int(math.Ceil(unit * float64(m.cols)))
	height := int(math.Ceil(unit * float64(m.rows)))
	dc := gg.NewContext(width, height)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for c, v := range values {
		if c == m.goal || m.hells[c] {
			continue
		}
		alpha := floatutils.Clip(math.Abs(v), 0, 1)
		if v >= 0 {
			dc.SetRGBA(0, 0.6, 0, alpha)
		} else {
			dc.SetRGBA(0.8, 0, 0, alpha)
		}
		dc.DrawRectangle(float64(c.X)*unit, float64(c.Y)*unit, unit, unit)
		dc.Fill()
	}

	// Grid lines
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	for x := 0; x <= m.cols; x++ {
		dc.DrawLine(float64(x)*unit, 0, float64(x)*unit, float64(height))
	}
	for y := 0; y <= m.rows; y++ {
		dc.DrawLine(0, float64(y)*unit, float64(width), float64(y)*unit)
	}
	dc.Stroke()

	inset := unit / 8
	for c := range m.hells {
		dc.SetRGB(0, 0, 0)
		dc.DrawRectangle(float64(c.X)*unit+inset, float64(c.Y)*unit+inset,
			unit-2*inset, unit-2*inset)
		dc.Fill()
	}

	dc.SetRGB(1, 0.85, 0)
	dc.DrawCircle((float64(m.goal.X)+0.5)*unit, (float64(m.goal.Y)+0.5)*unit,
		unit/2-inset)
	dc.Fill()

	dc.SetRGB(1, 0, 0)
	dc.DrawRectangle(float64(m.position.X)*unit+inset,
		float64(m.position.Y)*unit+inset, unit-2*inset, unit-2*inset)
	dc.Fill()

	return dc.Image()
}

// SavePNG saves the image of the maze returned by Image to a PNG file
func (m *Maze) SavePNG(path string, unit float64,
	values map[Cell]float64) error {
	return gg.SavePNG(path, m.Image(unit, values))
}
