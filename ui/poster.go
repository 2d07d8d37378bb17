package ui

import (
	"fyne.io/fyne/v2"

	"fynemvp/core/events"
	"fynemvp/internal/mainthread"
)

// UIPoster returns the events.Poster backing the aggregator: work posted
// from a background goroutine goes through fyne.Do, while work posted
// from the UI goroutine itself runs inline. mainthread.Capture must have
// been called from main before the event loop started.
func UIPoster() events.Poster {
	return events.PosterFunc(func(fn func()) {
		if mainthread.OnMain() {
			fn()
			return
		}
		fyne.Do(fn)
	})
}
