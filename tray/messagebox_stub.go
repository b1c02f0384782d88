//go:build !windows

package tray

import "log"

// showMessageBox has no native dialog off Windows; the details go to the log.
func showMessageBox(title, message string) {
	log.Printf("%s: %s", title, message)
}
