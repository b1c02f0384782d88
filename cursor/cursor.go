package cursor

import (
	"github.com/go-vgo/robotgo"
)

// Position returns the current global pointer position in source-surface
// coordinates (the same space capture regions are expressed in).
func Position() (x, y int) {
	return robotgo.Location()
}
