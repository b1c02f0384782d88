package mirror

import (
	"image"

	"screen-mirror/cursor"
	"screen-mirror/screenshot"
)

// ScreenCapturer captures from the real display via the screenshot package.
type ScreenCapturer struct{}

func (ScreenCapturer) Capture(r screenshot.Region) (*image.RGBA, error) {
	return screenshot.CaptureRegion(r)
}

// SystemPointer reads the real global cursor position.
type SystemPointer struct{}

func (SystemPointer) Position() (int, int) {
	return cursor.Position()
}
