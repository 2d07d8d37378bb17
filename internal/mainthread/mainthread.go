// Package mainthread records which goroutine runs the Fyne event loop so
// callers can tell whether UI work needs to be posted or can run inline.
package mainthread

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
)

var mainID atomic.Uint64

// Capture records the calling goroutine as the UI goroutine.
// Call it once from main before the toolkit event loop starts.
func Capture() {
	mainID.Store(currentID())
}

// OnMain reports whether the caller runs on the captured UI goroutine.
// Returns false when Capture was never called.
func OnMain() bool {
	id := mainID.Load()
	return id != 0 && id == currentID()
}

// currentID parses the goroutine id out of the runtime.Stack header
// ("goroutine 12 [running]:"). There is no supported API for this; the
// header format has been stable across Go releases and the result is used
// only to choose between inline and posted delivery.
func currentID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
