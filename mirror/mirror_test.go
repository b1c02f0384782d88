package mirror

import (
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"screen-mirror/overlay"
	"screen-mirror/screenshot"
)

type fakeCapturer struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (f *fakeCapturer) Capture(r screenshot.Region) (*image.RGBA, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return nil, errors.New("source rectangle unavailable")
	}
	return image.NewRGBA(image.Rect(0, 0, r.Width, r.Height)), nil
}

func (f *fakeCapturer) setFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = fail
}

func (f *fakeCapturer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakePointer struct {
	mu   sync.Mutex
	x, y int
}

func (f *fakePointer) Position() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.x, f.y
}

func (f *fakePointer) move(x, y int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.x, f.y = x, y
}

func newTestLoop(t *testing.T, cap Capturer, ptr PointerSource) *Loop {
	t.Helper()
	l, err := New(cap, ptr, Config{
		Region:   screenshot.Region{X: 0, Y: 0, Width: 64, Height: 48},
		Interval: time.Millisecond,
		Style:    overlay.DefaultStyle(),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return l
}

func waitRedraw(t *testing.T, l *Loop) {
	t.Helper()
	select {
	case <-l.Redraw():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a redraw signal")
	}
}

func TestNewRejectsInvalidRegion(t *testing.T) {
	_, err := New(&fakeCapturer{}, &fakePointer{}, Config{
		Region: screenshot.Region{Width: 0, Height: 10},
	})
	if err == nil {
		t.Fatal("expected error for zero-width region")
	}
}

func TestTickPublishesFrame(t *testing.T) {
	cap := &fakeCapturer{}
	l := newTestLoop(t, cap, &fakePointer{x: -100, y: -100})
	l.Start()
	defer l.Stop()

	waitRedraw(t, l)
	frame := l.Snapshot()
	if frame == nil {
		t.Fatal("no frame after redraw signal")
	}
	if frame.Bounds().Dx() != 64 || frame.Bounds().Dy() != 48 {
		t.Errorf("frame bounds = %v, want 64x48", frame.Bounds())
	}
}

func TestCaptureFailureSkipsTickAndRecovers(t *testing.T) {
	cap := &fakeCapturer{fail: true}
	l := newTestLoop(t, cap, &fakePointer{})
	l.Start()
	defer l.Stop()

	// Let a few failing ticks pass: nothing published, loop still alive
	time.Sleep(20 * time.Millisecond)
	if l.Snapshot() != nil {
		t.Fatal("frame published despite capture failures")
	}
	if cap.callCount() < 2 {
		t.Fatal("loop stopped retrying after a capture failure")
	}

	cap.setFail(false)
	waitRedraw(t, l)
	if l.Snapshot() == nil {
		t.Fatal("no frame after capture recovered")
	}
}

func TestSetRegionValidation(t *testing.T) {
	l := newTestLoop(t, &fakeCapturer{}, &fakePointer{})

	if err := l.SetRegion(screenshot.Region{Width: -1, Height: 10}); err == nil {
		t.Fatal("expected error for negative-width region")
	}
	// Previous configuration retained
	if got := l.Region(); got.Width != 64 || got.Height != 48 {
		t.Errorf("region after rejected change = %+v, want 64x48", got)
	}
}

func TestSetRegionSwapsBuffer(t *testing.T) {
	l := newTestLoop(t, &fakeCapturer{}, &fakePointer{x: -1, y: -1})
	l.Start()
	defer l.Stop()

	waitRedraw(t, l)

	if err := l.SetRegion(screenshot.Region{X: 5, Y: 5, Width: 32, Height: 24}); err != nil {
		t.Fatalf("SetRegion failed: %v", err)
	}

	// Frames of the old size are gone immediately; the next published frame
	// matches the new region.
	deadline := time.After(2 * time.Second)
	for {
		frame := l.Snapshot()
		if frame != nil && frame.Bounds().Dx() == 32 && frame.Bounds().Dy() == 24 {
			return
		}
		if frame != nil && frame.Bounds().Dx() == 64 {
			t.Fatal("stale frame of the old size still published")
		}
		select {
		case <-deadline:
			t.Fatal("no frame of the new size arrived")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestStopIsIdempotentAndFinal(t *testing.T) {
	cap := &fakeCapturer{}
	l := newTestLoop(t, cap, &fakePointer{})
	l.Start()
	waitRedraw(t, l)

	l.Stop()
	calls := cap.callCount()
	time.Sleep(20 * time.Millisecond)
	if got := cap.callCount(); got != calls {
		t.Errorf("capture attempted after Stop returned: %d then %d", calls, got)
	}

	// Second Stop is a no-op
	l.Stop()
}

func TestPauseFreezesPublishing(t *testing.T) {
	l := newTestLoop(t, &fakeCapturer{}, &fakePointer{})
	l.Start()
	defer l.Stop()

	waitRedraw(t, l)
	l.SetPaused(true)

	// Drain any already-pending signal, then expect silence.
	select {
	case <-l.Redraw():
	default:
	}
	select {
	case <-l.Redraw():
		t.Fatal("redraw signalled while paused")
	case <-time.After(20 * time.Millisecond):
	}

	l.SetPaused(false)
	waitRedraw(t, l)
}

func TestOverlayDrawnWhenCursorInside(t *testing.T) {
	ptr := &fakePointer{x: 32, y: 24}
	l := newTestLoop(t, &fakeCapturer{}, ptr)
	l.SetRenderSize(64, 48) // scale 1
	l.Start()
	defer l.Stop()

	waitRedraw(t, l)
	frame := l.Snapshot()
	if frame == nil {
		t.Fatal("no frame published")
	}
	if frame.RGBAAt(32, 24).A == 0 {
		t.Error("no indicator at the cursor position")
	}

	// Move the cursor out of the region: the next frames are clean.
	ptr.move(-50, -50)
	waitRedraw(t, l)
	waitRedraw(t, l)
	frame = l.Snapshot()
	if frame.RGBAAt(32, 24).A != 0 {
		t.Error("indicator drawn with cursor outside the region")
	}
}

func TestRedrawCoalesces(t *testing.T) {
	l := newTestLoop(t, &fakeCapturer{}, &fakePointer{})
	l.Start()
	defer l.Stop()

	// Let many ticks pass without consuming; at most one signal is pending.
	time.Sleep(30 * time.Millisecond)
	pending := 0
	for {
		select {
		case <-l.Redraw():
			pending++
		default:
			if pending != 1 {
				t.Errorf("pending redraw signals = %d, want exactly 1", pending)
			}
			return
		}
	}
}

func TestSetIntervalTakesEffect(t *testing.T) {
	l := newTestLoop(t, &fakeCapturer{}, &fakePointer{})
	l.SetInterval(-5 * time.Millisecond)
	if l.Interval() != 0 {
		t.Errorf("negative interval not clamped to 0, got %v", l.Interval())
	}
	l.SetInterval(250 * time.Millisecond)
	if l.Interval() != 250*time.Millisecond {
		t.Errorf("Interval = %v, want 250ms", l.Interval())
	}
}
