package worker

import (
	"context"
	"image"
	"os"
	"strings"
	"testing"
	"time"
)

func testFrame() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 8, 8))
}

func TestPoolWritesSnapshotFile(t *testing.T) {
	p := New(1)
	defer p.Close()

	dir := t.TempDir()
	done := make(chan string, 1)
	ok := p.Submit(context.Background(), Request{Frame: testFrame(), Dir: dir}, func(path string, err error) {
		if err != nil {
			t.Errorf("snapshot failed: %v", err)
		}
		done <- path
	})
	if !ok {
		t.Fatal("submit should succeed on an idle pool")
	}

	select {
	case path := <-done:
		if !strings.HasPrefix(path, dir) || !strings.HasSuffix(path, ".png") {
			t.Errorf("unexpected snapshot path %q", path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("snapshot file missing: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
}

func TestPoolRejectsNilFrame(t *testing.T) {
	p := New(1)
	defer p.Close()

	done := make(chan error, 1)
	p.Submit(context.Background(), Request{Frame: nil, Dir: t.TempDir()}, func(_ string, err error) {
		done <- err
	})

	select {
	case err := <-done:
		if err == nil {
			t.Error("expected error for nil frame")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out")
	}
}

func TestPoolSubmitDropWhenBusy(t *testing.T) {
	p := New(1)
	defer p.Close()
	ctx := context.Background()
	dir := t.TempDir()

	release := make(chan struct{})
	// First submit occupies the single worker; its callback blocks until released
	ok := p.Submit(ctx, Request{Frame: testFrame(), Dir: dir}, func(string, error) { <-release })
	if !ok {
		t.Fatal("first submit should succeed")
	}
	// Give the worker time to pick the job up, then fill the 1-slot queue
	time.Sleep(20 * time.Millisecond)
	p.Submit(ctx, Request{Frame: testFrame(), Dir: dir}, func(string, error) {})
	// With one job in flight and one queued, the next must drop
	ok3 := p.Submit(ctx, Request{Frame: testFrame(), Dir: dir}, func(string, error) {})
	if ok3 {
		t.Error("third submit should drop with a full queue")
	}
	close(release)
}

func TestPoolHonorsCancelledContext(t *testing.T) {
	p := New(1)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	p.Submit(ctx, Request{Frame: testFrame(), Dir: t.TempDir()}, func(_ string, err error) {
		done <- err
	})

	select {
	case err := <-done:
		if err == nil {
			t.Error("expected context error for cancelled job")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out")
	}
}
