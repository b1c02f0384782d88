package clipboard

import (
	"golang.design/x/clipboard"
)

func Init() error {
	return clipboard.Init()
}

func Write(text string) error {
	// Write to clipboard - this returns a channel, not an error
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// WriteImage places a PNG-encoded frame on the clipboard.
func WriteImage(pngData []byte) error {
	clipboard.Write(clipboard.FmtImage, pngData)
	return nil
}
