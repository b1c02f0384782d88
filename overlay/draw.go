package overlay

import (
	"image"
	"image/color"
	"image/draw"
)

var (
	fillColor   = color.NRGBA{R: 255, G: 215, B: 0, A: 64}
	strokeColor = color.NRGBA{R: 255, G: 215, B: 0, A: 255}
	dotColor    = color.NRGBA{R: 220, G: 40, B: 40, A: 255}
)

// Draw paints the indicator onto the frame buffer: translucent circle fill,
// circle outline, solid center dot. Shapes are clipped to dst bounds by the
// draw package, so a cursor near the region edge is safe.
func Draw(dst *image.RGBA, g Geometry) {
	drawMasked(dst, g.Circle, fillColor, &circleMask{rect: g.Circle})
	drawMasked(dst, g.Circle, strokeColor, &ringMask{rect: g.Circle, width: g.PenWidth})
	drawMasked(dst, g.Dot, dotColor, &circleMask{rect: g.Dot})
}

func drawMasked(dst *image.RGBA, r image.Rectangle, c color.Color, mask image.Image) {
	draw.DrawMask(dst, r, &image.Uniform{C: c}, image.Point{}, mask, r.Min, draw.Over)
}

// circleMask is an alpha mask for the disc inscribed in rect.
type circleMask struct {
	rect image.Rectangle
}

func (m *circleMask) ColorModel() color.Model { return color.AlphaModel }
func (m *circleMask) Bounds() image.Rectangle { return m.rect }

func (m *circleMask) At(x, y int) color.Color {
	cx := float64(m.rect.Min.X+m.rect.Max.X) / 2
	cy := float64(m.rect.Min.Y+m.rect.Max.Y) / 2
	r := float64(m.rect.Dx()) / 2
	dx := float64(x) + 0.5 - cx
	dy := float64(y) + 0.5 - cy
	if dx*dx+dy*dy <= r*r {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

// ringMask is an alpha mask for the annulus of the given stroke width along
// the inside of the disc inscribed in rect.
type ringMask struct {
	rect  image.Rectangle
	width float64
}

func (m *ringMask) ColorModel() color.Model { return color.AlphaModel }
func (m *ringMask) Bounds() image.Rectangle { return m.rect }

func (m *ringMask) At(x, y int) color.Color {
	cx := float64(m.rect.Min.X+m.rect.Max.X) / 2
	cy := float64(m.rect.Min.Y+m.rect.Max.Y) / 2
	outer := float64(m.rect.Dx()) / 2
	inner := outer - m.width
	if inner < 0 {
		inner = 0
	}
	dx := float64(x) + 0.5 - cx
	dy := float64(y) + 0.5 - cy
	d2 := dx*dx + dy*dy
	if d2 <= outer*outer && d2 >= inner*inner {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}
