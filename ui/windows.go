package ui

import (
	"fyne.io/fyne/v2"

	"fynemvp/core/navigation"
	"fynemvp/internal/debuglog"
	"fynemvp/internal/mainthread"
)

const logPrefix = "ui"

// NewWindowHost returns the navigation.WindowHost over app. All window
// mutation is forced onto the UI goroutine, so navigator calls are legal
// from background goroutines (which is where ShowModal must live anyway).
func NewWindowHost(app fyne.App) navigation.WindowHost {
	return &fyneHost{app: app}
}

type fyneHost struct {
	app fyne.App
}

func (h *fyneHost) NewWindow(title string) navigation.Window {
	var w fyne.Window
	runOnMainAndWait(func() { w = h.app.NewWindow(title) })
	return &fyneWindow{w: w}
}

type fyneWindow struct {
	w fyne.Window
}

func (f *fyneWindow) SetTitle(title string) {
	runOnMain(func() { f.w.SetTitle(title) })
}

func (f *fyneWindow) SetContent(content any) {
	co, ok := content.(fyne.CanvasObject)
	if !ok {
		debuglog.Log(logPrefix, debuglog.LevelError, debuglog.UseGlobal,
			"view content %T is not a fyne.CanvasObject, window left empty", content)
		return
	}
	runOnMain(func() { f.w.SetContent(co) })
}

func (f *fyneWindow) Show() {
	runOnMain(func() { f.w.Show() })
}

func (f *fyneWindow) Activate() {
	runOnMain(func() {
		f.w.Show()
		f.w.RequestFocus()
	})
}

func (f *fyneWindow) Close() {
	runOnMain(func() { f.w.Close() })
}

func (f *fyneWindow) SetOnClosed(fn func()) {
	runOnMain(func() { f.w.SetOnClosed(fn) })
}

func runOnMain(fn func()) {
	if mainthread.OnMain() {
		fn()
		return
	}
	fyne.Do(fn)
}

// runOnMainAndWait is for calls whose result the caller needs, such as
// window construction. fyne.DoAndWait would deadlock on the UI goroutine,
// hence the inline path.
func runOnMainAndWait(fn func()) {
	if mainthread.OnMain() {
		fn()
		return
	}
	fyne.DoAndWait(fn)
}
