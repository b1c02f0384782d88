package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"screen-mirror/clipboard"
	"screen-mirror/config"
	"screen-mirror/eventloop"
	"screen-mirror/gui"
	"screen-mirror/hotkey"
	"screen-mirror/logutil"
	"screen-mirror/mirror"
	"screen-mirror/overlay"
	"screen-mirror/screenshot"
	"screen-mirror/tray"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup logging
	logutil.Setup(cfg.EnableFileLogging)

	// Initialize packages
	screenshot.Init()
	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard init failed, copy-to-clipboard disabled: %v", err)
	}

	// Resolve the capture target: explicit region, otherwise the whole display
	region := cfg.Region
	if region == (screenshot.Region{}) {
		region, err = screenshot.DisplayRegion(cfg.Display)
		if err != nil {
			log.Fatalf("Failed to resolve display %d: %v", cfg.Display, err)
		}
	}

	loop, err := mirror.New(mirror.ScreenCapturer{}, mirror.SystemPointer{}, mirror.Config{
		Region:   region,
		Interval: cfg.Interval,
		Style: overlay.Style{
			CircleDiameter: cfg.CircleDiameter,
			DotDiameter:    cfg.DotDiameter,
			PenWidth:       cfg.PenWidth,
		},
	})
	if err != nil {
		log.Fatalf("Failed to create capture loop: %v", err)
	}

	log.Printf("Screen Mirror initialized")
	log.Printf("Capture region: %dx%d at (%d,%d)", region.Width, region.Height, region.X, region.Y)
	log.Printf("Interval: %s", cfg.Interval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evloop := eventloop.New(loop, cfg.SnapshotDir)
	evloop.SetDefaultTooltip(fmt.Sprintf("Screen Mirror - %dx%d every %s", region.Width, region.Height, cfg.Interval))

	// System tray icon
	go tray.Run(tray.Config{
		Title:          "Screen Mirror",
		Tooltip:        fmt.Sprintf("Screen Mirror - Press %s to pause", cfg.HotkeyPause),
		OnPause:        func() { evloop.Post(eventloop.CmdTogglePause) },
		OnSnapshotFile: func() { evloop.Post(eventloop.CmdSnapshotFile) },
		OnSnapshotClip: func() { evloop.Post(eventloop.CmdSnapshotClip) },
		OnExit: func() {
			log.Printf("Exit requested from tray icon")
			cancel()
		},
	})

	// Global hotkeys
	hotkey.Listen(map[string]func(){
		cfg.HotkeyPause:    func() { evloop.Post(eventloop.CmdTogglePause) },
		cfg.HotkeySnapshot: func() { evloop.Post(eventloop.CmdSnapshotFile) },
	})

	// Event loop (owns the capture loop lifetime)
	go func() {
		if err := evloop.Run(ctx); err != nil && err != context.Canceled {
			log.Printf("Event loop exited: %v", err)
		}
	}()

	// Shut down on interrupt
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Printf("Shutting down due to signal...")
		cancel()
	}()

	// The viewer owns the main thread until ctx is cancelled
	viewer := gui.NewViewer(loop, cfg.ResizeMargin)
	viewer.Run(ctx)

	tray.Quit()
	log.Printf("Screen Mirror stopped")
}
