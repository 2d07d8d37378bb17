// Package navigation opens presenter/view pairs as windows and routes a
// typed interaction result back to the opener. The toolkit is reached only
// through the WindowHost interface, so the package tests with a fake host
// and the Fyne glue lives elsewhere.
package navigation

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"fynemvp/internal/debuglog"
	"fynemvp/internal/mainthread"
)

const logPrefix = "navigation"

// View supplies a window's title and root content. Content returns the
// toolkit's widget tree root (a fyne.CanvasObject under the Fyne host);
// the navigator passes it through without looking inside.
type View interface {
	Title() string
	Content() any
}

// CloseRequester is the presenter side of the close protocol: the
// navigator registers a callback, and the presenter fires it with the
// outcome when it wants its window closed.
type CloseRequester[T any] interface {
	OnCloseRequested(fn func(Result[T]))
}

// CloseRequest is an embeddable CloseRequester implementation for
// presenters.
type CloseRequest[T any] struct {
	mu sync.Mutex
	fn func(Result[T])
}

// OnCloseRequested stores the navigator's callback.
func (c *CloseRequest[T]) OnCloseRequested(fn func(Result[T])) {
	c.mu.Lock()
	c.fn = fn
	c.mu.Unlock()
}

// RequestClose fires the close protocol with result. A presenter shown
// outside a navigator has no callback; the request is then logged and
// dropped.
func (c *CloseRequest[T]) RequestClose(result Result[T]) {
	c.mu.Lock()
	fn := c.fn
	c.mu.Unlock()
	if fn == nil {
		debuglog.Log(logPrefix, debuglog.LevelWarn, debuglog.UseGlobal,
			"close requested with no navigator attached, dropped")
		return
	}
	fn(result)
}

// Window is the navigator's handle on one toolkit window.
type Window interface {
	SetTitle(title string)
	SetContent(content any)
	Show()
	Activate()
	Close()
	SetOnClosed(fn func())
}

// WindowHost creates windows. Implemented over Fyne in the ui package and
// by a fake in tests.
type WindowHost interface {
	NewWindow(title string) Window
}

// Navigator tracks open windows and enforces singleton identity.
type Navigator struct {
	host WindowHost

	mu         sync.Mutex
	singletons map[any]*windowSlot
}

// NewNavigator creates a navigator over host. A nil host panics.
func NewNavigator(host WindowHost) *Navigator {
	if host == nil {
		panic("navigation: NewNavigator called with nil host")
	}
	return &Navigator{host: host, singletons: make(map[any]*windowSlot)}
}

// windowSlot is one singleton entry. The key is reserved under the
// navigator lock before the host builds the window, so a racing Show for
// the same key finds the reservation instead of opening a second window.
// An activation arriving while the window is still under construction is
// replayed once it lands.
type windowSlot struct {
	mu              sync.Mutex
	w               Window
	pendingActivate bool
}

func (s *windowSlot) attach(w Window) {
	s.mu.Lock()
	s.w = w
	replay := s.pendingActivate
	s.pendingActivate = false
	s.mu.Unlock()
	if replay {
		w.Activate()
	}
}

func (s *windowSlot) activate() {
	s.mu.Lock()
	if s.w == nil {
		s.pendingActivate = true
		s.mu.Unlock()
		return
	}
	w := s.w
	s.mu.Unlock()
	w.Activate()
}

// ShowOptions configures a non-modal Show.
type ShowOptions[T any] struct {
	// Key is the window's logical singleton identity. When a window with
	// the same key is already open it is activated instead of duplicated.
	// Nil opens a fresh window every time.
	Key any

	// OnClosed receives the interaction result once the window closes,
	// whether through the close protocol or the window chrome.
	OnClosed func(Result[T])
}

// Show opens presenter's view non-modally and returns immediately. The
// result is delivered exactly once through opts.OnClosed: the presenter's
// close request carries Ok or Cancelled, and a window closed through its
// chrome yields Cancelled. Nil presenter or view is a wiring defect
// reported as an error.
func Show[T any](n *Navigator, presenter CloseRequester[T], view View, opts ShowOptions[T]) error {
	if presenter == nil {
		return fmt.Errorf("navigation: Show: nil presenter")
	}
	if view == nil {
		return fmt.Errorf("navigation: Show: nil view")
	}

	// Check-and-reserve happens in one critical section so concurrent
	// Shows for the same key cannot each miss the other's window.
	var slot *windowSlot
	if opts.Key != nil {
		n.mu.Lock()
		if existing, open := n.singletons[opts.Key]; open {
			n.mu.Unlock()
			debuglog.Log(logPrefix, debuglog.LevelVerbose, debuglog.UseGlobal,
				"activating existing window for key %v", opts.Key)
			existing.activate()
			return nil
		}
		slot = &windowSlot{}
		n.singletons[opts.Key] = slot
		n.mu.Unlock()
	}

	instance := uuid.NewString()
	w := n.host.NewWindow(view.Title())
	w.SetContent(view.Content())

	var once sync.Once
	deliver := func(r Result[T]) {
		once.Do(func() {
			debuglog.Log(logPrefix, debuglog.LevelVerbose, debuglog.UseGlobal,
				"window %s closed: %v", instance, r)
			if opts.OnClosed != nil {
				opts.OnClosed(r)
			}
		})
	}

	presenter.OnCloseRequested(func(r Result[T]) {
		deliver(r)
		w.Close()
	})
	w.SetOnClosed(func() {
		if slot != nil {
			n.mu.Lock()
			if n.singletons[opts.Key] == slot {
				delete(n.singletons, opts.Key)
			}
			n.mu.Unlock()
		}
		deliver(Cancelled[T]())
	})

	if slot != nil {
		slot.attach(w)
	}

	debuglog.Log(logPrefix, debuglog.LevelVerbose, debuglog.UseGlobal,
		"window %s opened: %s", instance, view.Title())
	w.Show()
	return nil
}

// ShowModal opens presenter's view and blocks the calling goroutine until
// the window closes, returning the interaction result. It must not be
// called from the UI goroutine, which has to keep pumping events for the
// window to function; call it from a background goroutine instead.
func ShowModal[T any](n *Navigator, presenter CloseRequester[T], view View) (Result[T], error) {
	if mainthread.OnMain() {
		return Cancelled[T](), fmt.Errorf("navigation: ShowModal called on the UI goroutine")
	}

	done := make(chan Result[T], 1)
	err := Show(n, presenter, view, ShowOptions[T]{
		OnClosed: func(r Result[T]) { done <- r },
	})
	if err != nil {
		return Cancelled[T](), err
	}
	return <-done, nil
}

// OpenCount returns how many singleton-keyed windows are currently open.
func (n *Navigator) OpenCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.singletons)
}
