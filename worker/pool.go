package worker

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"screen-mirror/clipboard"
	"screen-mirror/screenshot"
)

// ResultCallback is invoked on snapshot completion (from a worker goroutine).
// The event loop should pass a closure that posts back into the event loop safely.
// path is empty for clipboard snapshots.
type ResultCallback func(path string, err error)

// Request describes one snapshot job: encode the frame as PNG and deliver it
// either to a file under Dir or to the clipboard.
type Request struct {
	Frame       *image.RGBA
	Dir         string
	ToClipboard bool
}

// Pool is a fixed-size snapshot worker pool with a 1-slot input queue
// (strict back-pressure: Submit reports false instead of queueing up).
type Pool struct {
	jobs chan job
	wg   sync.WaitGroup
}

type job struct {
	ctx context.Context
	req Request
	cb  ResultCallback
}

// New creates a worker pool. Size defaults to NumCPU when size<=0. Queue is 1 slot.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	p := &Pool{jobs: make(chan job, 1)}
	p.start(size)
	return p
}

func (p *Pool) start(n int) {
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				path, err := process(j.ctx, j.req)
				if err != nil {
					log.Printf("Worker: snapshot failed: %v", err)
				} else {
					log.Printf("Worker: snapshot done, path=%q", path)
				}
				j.cb(path, err)
			}
		}()
	}
}

// Submit enqueues a snapshot job if the single-slot queue is free. Returns false if dropped.
func (p *Pool) Submit(ctx context.Context, req Request, cb ResultCallback) bool {
	select {
	case p.jobs <- job{ctx: ctx, req: req, cb: cb}:
		return true
	default:
		return false
	}
}

// Close stops the pool after draining current work.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
}

func process(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req.Frame == nil {
		return "", fmt.Errorf("no frame available yet")
	}

	data, err := screenshot.EncodePNG(req.Frame)
	if err != nil {
		return "", err
	}

	if req.ToClipboard {
		return "", clipboard.WriteImage(data)
	}

	name := fmt.Sprintf("mirror_%s.png", time.Now().Format("20060102_150405"))
	path := filepath.Join(req.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %v", err)
	}
	return path, nil
}
