package screenshot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/kbinani/screenshot"
)

// Region represents a screen region to mirror
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Validate rejects regions with non-positive dimensions.
func (r Region) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("invalid region dimensions: width=%d, height=%d", r.Width, r.Height)
	}
	return nil
}

// Bounds returns the region as an image.Rectangle in source-surface coordinates.
func (r Region) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Contains reports whether the source-surface point (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func Init() {
	// Initialize screenshot package if needed
}

// CaptureRegion captures a specific region of the screen as raw pixels.
func CaptureRegion(region Region) (*image.RGBA, error) {
	if err := region.Validate(); err != nil {
		return nil, err
	}

	img, err := screenshot.CaptureRect(region.Bounds())
	if err != nil {
		return nil, fmt.Errorf("failed to capture region: %v", err)
	}
	return img, nil
}

// EncodePNG converts a captured frame to PNG bytes (for snapshots and the clipboard).
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image as PNG: %v", err)
	}
	return buf.Bytes(), nil
}

// DisplayRegion returns the full bounds of display n as a Region.
func DisplayRegion(n int) (Region, error) {
	count := screenshot.NumActiveDisplays()
	if count == 0 {
		return Region{}, fmt.Errorf("no active displays found")
	}
	if n < 0 || n >= count {
		return Region{}, fmt.Errorf("display %d out of range (have %d)", n, count)
	}

	bounds := screenshot.GetDisplayBounds(n)
	return Region{X: bounds.Min.X, Y: bounds.Min.Y, Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

// GetDisplayBounds returns the bounds of the primary display
func GetDisplayBounds() (image.Rectangle, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return image.Rectangle{}, fmt.Errorf("no active displays found")
	}

	bounds := screenshot.GetDisplayBounds(0)
	return bounds, nil
}
