package hitregion

import (
	"image"
)

// Direction identifies which resize handle of the borderless window a point
// belongs to. DirNone means "not on a handle" and leaves the host's default
// behavior (window drag or nothing) in effect.
type Direction int

const (
	DirNone Direction = iota
	DirTopLeft
	DirTopRight
	DirBottomLeft
	DirBottomRight
	DirTop
	DirLeft
	DirRight
	DirBottom
)

func (d Direction) String() string {
	switch d {
	case DirTopLeft:
		return "top-left"
	case DirTopRight:
		return "top-right"
	case DirBottomLeft:
		return "bottom-left"
	case DirBottomRight:
		return "bottom-right"
	case DirTop:
		return "top"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirBottom:
		return "bottom"
	}
	return "none"
}

// RegionSet holds the eight resize rectangles in client coordinates. It is
// recomputed whenever the client size changes and read-only in between.
type RegionSet struct {
	Top         image.Rectangle
	Left        image.Rectangle
	Bottom      image.Rectangle
	Right       image.Rectangle
	TopLeft     image.Rectangle
	TopRight    image.Rectangle
	BottomLeft  image.Rectangle
	BottomRight image.Rectangle
}

// Compute derives the resize rectangles for a client area of the given size.
// Each edge strip spans the full side at depth margin; each corner is a
// margin x margin square. Pure function of its inputs.
func Compute(clientWidth, clientHeight, margin int) RegionSet {
	w, h, m := clientWidth, clientHeight, margin
	return RegionSet{
		Top:         image.Rect(0, 0, w, m),
		Left:        image.Rect(0, 0, m, h),
		Bottom:      image.Rect(0, h-m, w, h),
		Right:       image.Rect(w-m, 0, w, h),
		TopLeft:     image.Rect(0, 0, m, m),
		TopRight:    image.Rect(w-m, 0, w, m),
		BottomLeft:  image.Rect(0, h-m, m, h),
		BottomRight: image.Rect(w-m, h-m, w, h),
	}
}

// TestHitPoint maps a client-space point to a resize direction. Corners are
// tested before edges in a fixed order so that a point inside both a corner
// square and the edge strip it overlaps resolves to the corner; otherwise
// diagonal resize would be unreachable.
func TestHitPoint(pt image.Point, rs RegionSet) Direction {
	switch {
	case pt.In(rs.TopLeft):
		return DirTopLeft
	case pt.In(rs.TopRight):
		return DirTopRight
	case pt.In(rs.BottomLeft):
		return DirBottomLeft
	case pt.In(rs.BottomRight):
		return DirBottomRight
	case pt.In(rs.Top):
		return DirTop
	case pt.In(rs.Left):
		return DirLeft
	case pt.In(rs.Right):
		return DirRight
	case pt.In(rs.Bottom):
		return DirBottom
	}
	return DirNone
}
