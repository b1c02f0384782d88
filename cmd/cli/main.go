package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"screen-mirror/config"
	"screen-mirror/mirror"
	"screen-mirror/overlay"
	"screen-mirror/screenshot"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	regionFlag := flag.String("region", "", "Capture region as x,y,w,h (default: whole display)")
	display := flag.Int("display", 0, "Display index to capture when -region is not set")
	out := flag.String("o", "frame.png", "Output PNG path (frame number appended when -frames > 1)")
	frames := flag.Int("frames", 1, "Number of frames to capture")
	interval := flag.Int("interval", 100, "Milliseconds between frames")
	verbose := flag.Bool("v", false, "Verbose output to stderr")
	flag.Parse()

	if *frames < 1 {
		return fmt.Errorf("-frames must be at least 1")
	}

	// Load configuration for the overlay style; flags win for the rest
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	region, err := resolveRegion(*regionFlag, *display)
	if err != nil {
		return err
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "[verbose] Capturing %dx%d at (%d,%d), %d frame(s)\n",
			region.Width, region.Height, region.X, region.Y, *frames)
	}

	loop, err := mirror.New(mirror.ScreenCapturer{}, mirror.SystemPointer{}, mirror.Config{
		Region:   region,
		Interval: time.Duration(*interval) * time.Millisecond,
		Style: overlay.Style{
			CircleDiameter: cfg.CircleDiameter,
			DotDiameter:    cfg.DotDiameter,
			PenWidth:       cfg.PenWidth,
		},
	})
	if err != nil {
		return err
	}
	defer loop.Stop()
	loop.Start()

	for i := 0; i < *frames; i++ {
		select {
		case <-loop.Redraw():
		case <-time.After(10 * time.Second):
			return fmt.Errorf("timed out waiting for frame %d", i+1)
		}

		frame := loop.Snapshot()
		if frame == nil {
			return fmt.Errorf("no frame published for tick %d", i+1)
		}

		data, err := screenshot.EncodePNG(frame)
		if err != nil {
			return err
		}
		path := outputPath(*out, i, *frames)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if *verbose {
			fmt.Fprintf(os.Stderr, "[verbose] Wrote %s (%d bytes)\n", path, len(data))
		}
	}

	return nil
}

func resolveRegion(spec string, display int) (screenshot.Region, error) {
	if spec == "" {
		return screenshot.DisplayRegion(display)
	}
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return screenshot.Region{}, fmt.Errorf("-region must be \"x,y,w,h\", got %q", spec)
	}
	var vals [4]int
	for i, p := range parts {
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%d", &vals[i]); err != nil {
			return screenshot.Region{}, fmt.Errorf("-region has invalid number %q", p)
		}
	}
	region := screenshot.Region{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
	if err := region.Validate(); err != nil {
		return screenshot.Region{}, err
	}
	return region, nil
}

func outputPath(out string, i, total int) string {
	if total == 1 {
		return out
	}
	ext := filepath.Ext(out)
	base := strings.TrimSuffix(out, ext)
	return fmt.Sprintf("%s_%03d%s", base, i+1, ext)
}
