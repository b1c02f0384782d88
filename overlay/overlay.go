package overlay

import (
	"image"

	"screen-mirror/screenshot"
)

// Style holds the base sizes of the cursor indicator, expressed in render
// pixels. The diameters are what the indicator should measure on screen when
// the capture region and the render surface are the same size (scale 1).
type Style struct {
	CircleDiameter float64
	DotDiameter    float64
	PenWidth       float64
}

// DefaultStyle matches the sizes the viewer window uses out of the box.
func DefaultStyle() Style {
	return Style{CircleDiameter: 15, DotDiameter: 5, PenWidth: 2}
}

// Geometry is the per-tick indicator shape set, in buffer-local pixels.
// It is computed fresh every tick and discarded after drawing.
type Geometry struct {
	Circle   image.Rectangle
	Dot      image.Rectangle
	PenWidth float64
	Scale    float64
}

// Compute translates the cursor into buffer-local coordinates and scales the
// indicator so it keeps a constant on-screen size after the destination
// surface scales the buffer down. The scale factor is the larger of the two
// axis ratios: whichever axis limits the downscale is the one the indicator
// must compensate for.
//
// Returns ok=false when the cursor is outside the capture region (no
// indicator that tick) or when the render size is not positive.
func Compute(cursorX, cursorY int, region screenshot.Region, renderW, renderH int, style Style) (Geometry, bool) {
	if renderW <= 0 || renderH <= 0 {
		return Geometry{}, false
	}
	if !region.Contains(cursorX, cursorY) {
		return Geometry{}, false
	}

	localX := cursorX - region.X
	localY := cursorY - region.Y

	scale := float64(region.Width) / float64(renderW)
	if s := float64(region.Height) / float64(renderH); s > scale {
		scale = s
	}

	return Geometry{
		Circle:   centeredSquare(localX, localY, style.CircleDiameter*scale),
		Dot:      centeredSquare(localX, localY, style.DotDiameter*scale),
		PenWidth: style.PenWidth * scale,
		Scale:    scale,
	}, true
}

// centeredSquare builds the bounding square for a circle of the given
// diameter centered on (x, y). The sizes are diameters throughout, so the
// square's top-left sits half a side up and left of the center.
func centeredSquare(x, y int, diameter float64) image.Rectangle {
	side := int(diameter + 0.5)
	if side < 1 {
		side = 1
	}
	half := side / 2
	return image.Rect(x-half, y-half, x-half+side, y-half+side)
}
