package gui

import (
	"context"
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"screen-mirror/mirror"
)

// Viewer is the always-on-top mirror window. It consumes redraw signals from
// the capture loop, swaps the canvas image to the latest snapshot, and feeds
// size changes back into the loop so the overlay keeps its on-screen size.
type Viewer struct {
	app    fyne.App
	win    fyne.Window
	img    *canvas.Image
	loop   *mirror.Loop
	margin int

	hitInstalled bool
	lastW        int
	lastH        int
}

// NewViewer builds the window. margin is the resize-handle depth in pixels
// used by the borderless hit-testing on platforms that support it.
func NewViewer(loop *mirror.Loop, margin int) *Viewer {
	a := app.New()
	w := a.NewWindow("Screen Mirror")

	region := loop.Region()
	placeholder := image.NewRGBA(image.Rect(0, 0, region.Width, region.Height))
	img := canvas.NewImageFromImage(placeholder)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleFastest

	w.SetContent(img)
	w.Resize(fyne.NewSize(480, 270))

	return &Viewer{app: a, win: w, img: img, loop: loop, margin: margin}
}

// Run shows the window and blocks on the fyne main loop. The redraw consumer
// runs in its own goroutine and marshals frame swaps onto the UI thread; a
// burst of ticks collapses into however many refreshes the UI keeps up with.
func (v *Viewer) Run(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-v.loop.Redraw():
				frame := v.loop.Snapshot()
				if frame == nil {
					continue
				}
				fyne.Do(func() { v.refresh(frame) })
			}
		}
	}()

	go func() {
		<-ctx.Done()
		fyne.Do(func() { v.app.Quit() })
	}()

	v.win.Show()
	log.Printf("Viewer window shown")
	v.app.Run()
}

// refresh runs on the UI thread: swap in the new frame and pick up any
// client-size change before the next hit-test query needs it. The hit-test
// hook installs on the first frame, once the native window exists.
func (v *Viewer) refresh(frame *image.RGBA) {
	if !v.hitInstalled {
		v.hitInstalled = true
		installHitTest(v.win, v.margin)
	}

	v.img.Image = frame
	v.img.Refresh()

	size := v.win.Canvas().Size()
	w, h := int(size.Width), int(size.Height)
	if w != v.lastW || h != v.lastH {
		v.lastW, v.lastH = w, h
		v.loop.SetRenderSize(w, h)
		resizeHitRegions(w, h, v.margin)
		log.Printf("Viewer resized to %dx%d", w, h)
	}
}
