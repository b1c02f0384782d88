package hotkey

import (
	"log"
	"strings"

	gohook "github.com/robotn/gohook"
)

// Listen registers global hotkey combinations and starts the low-level hook.
// Each binding maps a combo string like "Ctrl+Alt+P" to a callback; callbacks
// run on the hook goroutine and should only post into a channel.
func Listen(bindings map[string]func()) {
	if len(bindings) == 0 {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in hotkey goroutine: %v", r)
			}
		}()

		for combo, callback := range bindings {
			keys := parseHotkey(combo)
			if len(keys) == 0 {
				log.Printf("Skipping empty hotkey binding %q", combo)
				continue
			}
			log.Printf("Registering hotkey %q as %v", combo, keys)
			cb := callback
			gohook.Register(gohook.KeyDown, keys, func(e gohook.Event) {
				cb()
			})
		}

		s := gohook.Start()
		if s == nil {
			log.Printf("ERROR: gohook.Start() returned nil channel")
			return
		}
		<-gohook.Process(s)
		log.Printf("Hotkey event loop ended")
	}()
}

// parseHotkey converts a hotkey string like "Ctrl+Alt+p" to gohook key names
func parseHotkey(hotkeyConfig string) []string {
	// Convert to lowercase and split by +
	parts := strings.Split(strings.ToLower(hotkeyConfig), "+")
	var keys []string

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch part {
		case "ctrl":
			keys = append(keys, "ctrl")
		case "alt":
			keys = append(keys, "alt")
		case "shift":
			keys = append(keys, "shift")
		case "win", "cmd", "super":
			keys = append(keys, "cmd")
		default:
			// Regular key
			keys = append(keys, part)
		}
	}

	return keys
}
