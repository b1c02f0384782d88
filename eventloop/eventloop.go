package eventloop

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"screen-mirror/mirror"
	"screen-mirror/tray"
	"screen-mirror/worker"
)

// Command is a user action posted into the loop from the tray or a hotkey.
type Command int

const (
	CmdTogglePause Command = iota
	CmdSnapshotFile
	CmdSnapshotClip
)

// Loop is the single-threaded coordinator for tray commands, hotkeys and
// snapshot results. All state mutation happens on the Run goroutine.
type Loop struct {
	mirror         *mirror.Loop
	pool           *worker.Pool
	snapshotDir    string
	busy           bool
	results        chan result
	commands       chan Command
	defaultTooltip string
}

type result struct {
	path string
	err  error
}

// New creates a new event loop with defaults.
func New(m *mirror.Loop, snapshotDir string) *Loop {
	return &Loop{
		mirror:         m,
		pool:           worker.New(0),
		snapshotDir:    snapshotDir,
		results:        make(chan result, 1),
		commands:       make(chan Command, 4),
		defaultTooltip: "Screen Mirror",
	}
}

// SetDefaultTooltip optionally sets the tray tooltip base text.
func (l *Loop) SetDefaultTooltip(tt string) { l.defaultTooltip = tt }

// Post queues a command without blocking; commands arriving while the queue
// is full are dropped (the user can click again).
func (l *Loop) Post(cmd Command) {
	select {
	case l.commands <- cmd:
	default:
	}
}

func (l *Loop) setBusy(b bool) {
	l.busy = b
	if b {
		tray.UpdateTooltip("Screen Mirror: saving snapshot...")
	} else {
		tray.UpdateTooltip(l.defaultTooltip)
	}
}

// Run starts the capture loop and processes commands until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	l.mirror.Start()
	defer l.mirror.Stop()
	defer l.pool.Close()

	region := l.mirror.Region()
	tray.SetAboutExtra(fmt.Sprintf("Capturing %dx%d at (%d,%d), interval %s",
		region.Width, region.Height, region.X, region.Y, l.mirror.Interval()))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-l.commands:
			l.handleCommand(ctx, cmd)
		case res := <-l.results:
			l.handleResult(res)
		}
	}
}

func (l *Loop) handleCommand(ctx context.Context, cmd Command) {
	switch cmd {
	case CmdTogglePause:
		paused := !l.mirror.Paused()
		l.mirror.SetPaused(paused)
		tray.SetPaused(paused)
		if paused {
			tray.UpdateTooltip(l.defaultTooltip + " (paused)")
		} else {
			tray.UpdateTooltip(l.defaultTooltip)
		}
		log.Printf("Mirroring paused=%v", paused)
	case CmdSnapshotFile:
		l.submitSnapshot(ctx, false)
	case CmdSnapshotClip:
		l.submitSnapshot(ctx, true)
	}
}

func (l *Loop) submitSnapshot(ctx context.Context, toClipboard bool) {
	if l.busy {
		log.Printf("Snapshot request dropped: still busy")
		return
	}

	req := worker.Request{
		Frame:       l.mirror.Snapshot(),
		Dir:         l.snapshotDir,
		ToClipboard: toClipboard,
	}

	jobCtx, cancel := context.WithTimeout(ctx, snapshotDeadline())
	l.setBusy(true)
	submitted := l.pool.Submit(jobCtx, req, func(path string, err error) {
		defer cancel()
		l.results <- result{path: path, err: err}
	})
	if !submitted {
		cancel()
		l.setBusy(false)
		log.Printf("Snapshot request dropped: queue full")
	}
}

func (l *Loop) handleResult(res result) {
	defer func() { l.setBusy(false) }()
	if res.err != nil {
		log.Printf("Snapshot failed: %v", res.err)
		return
	}
	if res.path != "" {
		log.Printf("Snapshot saved to %s", res.path)
	} else {
		log.Printf("Snapshot copied to clipboard")
	}
}

func snapshotDeadline() time.Duration {
	v := os.Getenv("SNAPSHOT_DEADLINE_SEC")
	if v == "" {
		return 15 * time.Second
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Invalid SNAPSHOT_DEADLINE_SEC=%q, using default 15s", v)
		return 15 * time.Second
	}
	return time.Duration(n) * time.Second
}
