// Package mirror runs the capture-render loop: a timer-driven job that grabs
// the configured screen region, stamps the cursor indicator onto it, and
// publishes the finished frame for the viewer to draw.
package mirror

import (
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"screen-mirror/overlay"
	"screen-mirror/screenshot"
)

// Capturer copies the pixels of a source-surface rectangle. Implementations
// return a freshly allocated frame sized to the region.
type Capturer interface {
	Capture(region screenshot.Region) (*image.RGBA, error)
}

// PointerSource reads the current global pointer position in source-surface
// coordinates.
type PointerSource interface {
	Position() (x, y int)
}

// Config carries the initial loop settings.
type Config struct {
	Region   screenshot.Region
	Interval time.Duration
	Style    overlay.Style
}

// Loop is the periodic capture job. All shared state (region, interval,
// render size, latest frame) lives behind mu; a published frame is never
// written again, so Snapshot can hand it out without copying.
type Loop struct {
	capturer Capturer
	pointer  PointerSource

	mu       sync.Mutex
	region   screenshot.Region
	interval time.Duration
	renderW  int
	renderH  int
	style    overlay.Style
	frame    *image.RGBA
	paused   bool

	redraw chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// New validates the configuration and builds a stopped loop.
func New(capturer Capturer, pointer PointerSource, cfg Config) (*Loop, error) {
	if capturer == nil || pointer == nil {
		return nil, fmt.Errorf("mirror: capturer and pointer sources are required")
	}
	if err := cfg.Region.Validate(); err != nil {
		return nil, err
	}
	if cfg.Interval < 0 {
		cfg.Interval = 0
	}
	return &Loop{
		capturer: capturer,
		pointer:  pointer,
		region:   cfg.Region,
		interval: cfg.Interval,
		renderW:  cfg.Region.Width,
		renderH:  cfg.Region.Height,
		style:    cfg.Style,
		redraw:   make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start launches the capture goroutine. Subsequent calls are no-ops.
func (l *Loop) Start() {
	l.startOnce.Do(func() {
		go l.run()
	})
}

// Stop disarms the loop and waits for any tick in flight to finish. After
// Stop returns no further capture is attempted. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
	// If the loop was never started, claim the start slot so a later Start
	// cannot launch a tick, and unblock the wait below.
	l.startOnce.Do(func() {
		close(l.done)
	})
	<-l.done
}

// Redraw delivers at-most-one pending "frame ready" signal. Sends are
// non-blocking on the capture side, so a slow consumer only coalesces
// notifications, it never stalls the loop.
func (l *Loop) Redraw() <-chan struct{} {
	return l.redraw
}

// Snapshot returns the most recently published frame, or nil before the
// first successful tick or right after a region change. The returned image
// is immutable.
func (l *Loop) Snapshot() *image.RGBA {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frame
}

// Region returns the current capture region.
func (l *Loop) Region() screenshot.Region {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.region
}

// Interval returns the current tick interval.
func (l *Loop) Interval() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.interval
}

// SetRegion switches the capture target. Invalid regions are rejected and
// the previous configuration stays in effect. The stale frame is dropped so
// the buffer dimensions always match the region; the next tick publishes a
// frame of the new size.
func (l *Loop) SetRegion(r screenshot.Region) error {
	if err := r.Validate(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.region = r
	l.frame = nil
	return nil
}

// SetInterval changes the tick cadence, effective at the next rearm.
// Negative values mean "as fast as possible".
func (l *Loop) SetInterval(d time.Duration) {
	if d < 0 {
		d = 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.interval = d
}

// SetPaused freezes or resumes capturing. While paused the timer keeps
// running but ticks publish nothing, so the viewer holds the last frame.
func (l *Loop) SetPaused(p bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paused = p
}

// Paused reports whether capturing is currently frozen.
func (l *Loop) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused
}

// SetRenderSize tells the loop how big the destination surface currently is,
// so overlay sizes stay constant on screen. Called by the viewer on resize.
func (l *Loop) SetRenderSize(w, h int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.renderW = w
	l.renderH = h
}

func (l *Loop) run() {
	defer close(l.done)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-timer.C:
		}

		if l.tick() {
			select {
			case l.redraw <- struct{}{}:
			default:
			}
		}

		timer.Reset(l.Interval())
	}
}

// tick performs one capture+draw pass under the lock and reports whether a
// new frame was published. Any failure skips the tick; the loop keeps going.
func (l *Loop) tick() (published bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("mirror: tick panic recovered: %v", r)
			published = false
		}
	}()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.paused {
		return false
	}

	img, err := l.capturer.Capture(l.region)
	if err != nil {
		log.Printf("mirror: capture failed, skipping tick: %v", err)
		return false
	}
	if img == nil || img.Bounds().Dx() != l.region.Width || img.Bounds().Dy() != l.region.Height {
		log.Printf("mirror: capture returned wrong-sized frame, skipping tick")
		return false
	}

	x, y := l.pointer.Position()
	if g, ok := overlay.Compute(x, y, l.region, l.renderW, l.renderH, l.style); ok {
		overlay.Draw(img, g)
	}

	l.frame = img
	return true
}
