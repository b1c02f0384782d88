//go:build !windows

package gui

import (
	"fyne.io/fyne/v2"
)

// Off Windows the window keeps its native decorations, so there is no
// low-level hit-test query to answer.
func installHitTest(w fyne.Window, margin int) {}

func resizeHitRegions(w, h, margin int) {}
