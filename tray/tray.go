package tray

import (
	"image"
	"log"
	"sync"

	"github.com/getlantern/systray"

	"screen-mirror/overlay"
	"screen-mirror/screenshot"
)

// Config wires tray menu actions back into the application event loop.
// Callbacks fire on the tray goroutine and should only post into channels.
type Config struct {
	Title          string
	Tooltip        string
	OnPause        func()
	OnSnapshotFile func()
	OnSnapshotClip func()
	OnExit         func()
}

var (
	mu         sync.Mutex
	mPause     *systray.MenuItem
	aboutExtra string
	aboutTitle string
)

// Run starts the system tray icon and blocks until Quit. Call from a
// dedicated goroutine; OnExit fires when the tray shuts down.
func Run(cfg Config) {
	systray.Run(func() { onReady(cfg) }, func() {
		if cfg.OnExit != nil {
			cfg.OnExit()
		}
	})
}

// Quit tears the tray icon down and unblocks Run.
func Quit() {
	systray.Quit()
}

// UpdateTooltip refreshes the hover text (used for mirroring/paused state).
func UpdateTooltip(tt string) {
	systray.SetTooltip(tt)
}

// SetAboutExtra appends runtime details (capture region, interval) to the
// About box.
func SetAboutExtra(extra string) {
	mu.Lock()
	aboutExtra = extra
	mu.Unlock()
}

// SetPaused flips the pause menu entry between its two labels.
func SetPaused(paused bool) {
	mu.Lock()
	defer mu.Unlock()
	if mPause == nil {
		return
	}
	if paused {
		mPause.SetTitle("Resume mirroring")
	} else {
		mPause.SetTitle("Pause mirroring")
	}
}

func onReady(cfg Config) {
	systray.SetIcon(iconPNG())
	systray.SetTitle(cfg.Title)
	systray.SetTooltip(cfg.Tooltip)

	mu.Lock()
	aboutTitle = cfg.Title
	mPause = systray.AddMenuItem("Pause mirroring", "Stop capturing until resumed")
	mu.Unlock()
	mSnap := systray.AddMenuItem("Save snapshot", "Write the current frame to a PNG file")
	mClip := systray.AddMenuItem("Copy frame", "Copy the current frame to the clipboard")
	mAbout := systray.AddMenuItem("About", "Show runtime details")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Quit the application")

	// Handle menu item events
	go func() {
		for {
			select {
			case <-mPause.ClickedCh:
				if cfg.OnPause != nil {
					cfg.OnPause()
				}
			case <-mSnap.ClickedCh:
				if cfg.OnSnapshotFile != nil {
					cfg.OnSnapshotFile()
				}
			case <-mClip.ClickedCh:
				if cfg.OnSnapshotClip != nil {
					cfg.OnSnapshotClip()
				}
			case <-mAbout.ClickedCh:
				showAbout()
			case <-mQuit.ClickedCh:
				systray.Quit()
			}
		}
	}()
}

func showAbout() {
	mu.Lock()
	title, extra := aboutTitle, aboutExtra
	mu.Unlock()
	text := "Mirrors a screen region into an always-on-top window."
	if extra != "" {
		text += "\n" + extra
	}
	showMessageBox(title, text)
}

// iconPNG renders the tray icon with the app's own indicator drawing: the
// highlight circle and center dot on a transparent 16x16 tile.
func iconPNG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	overlay.Draw(img, overlay.Geometry{
		Circle:   image.Rect(1, 1, 15, 15),
		Dot:      image.Rect(6, 6, 10, 10),
		PenWidth: 1.5,
	})
	data, err := screenshot.EncodePNG(img)
	if err != nil {
		log.Printf("Failed to render tray icon: %v", err)
		return nil
	}
	return data
}
