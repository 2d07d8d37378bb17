package navigation

import (
	"sync"
	"testing"
	"time"
)

// fakeWindow records navigator calls and simulates the toolkit close
// notification.
type fakeWindow struct {
	title    string
	content  any
	shown    bool
	closed   bool
	activate int
	onClosed func()
}

func (w *fakeWindow) SetTitle(title string)  { w.title = title }
func (w *fakeWindow) SetContent(content any) { w.content = content }
func (w *fakeWindow) Show()                  { w.shown = true }
func (w *fakeWindow) Activate()              { w.activate++ }
func (w *fakeWindow) SetOnClosed(fn func())  { w.onClosed = fn }
func (w *fakeWindow) Close() {
	if w.closed {
		return
	}
	w.closed = true
	if w.onClosed != nil {
		w.onClosed()
	}
}

type fakeHost struct {
	mu      sync.Mutex
	windows []*fakeWindow
}

func (h *fakeHost) NewWindow(title string) Window {
	h.mu.Lock()
	defer h.mu.Unlock()
	w := &fakeWindow{title: title}
	h.windows = append(h.windows, w)
	return w
}

func (h *fakeHost) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.windows)
}

// gatedHost stalls window construction until released, exposing the
// window between a Show call reserving its key and the window existing.
type gatedHost struct {
	fakeHost
	entered chan struct{}
	release chan struct{}
}

func (h *gatedHost) NewWindow(title string) Window {
	h.entered <- struct{}{}
	<-h.release
	return h.fakeHost.NewWindow(title)
}

type stubView struct {
	title   string
	content any
}

func (v *stubView) Title() string { return v.title }
func (v *stubView) Content() any  { return v.content }

type stubPresenter struct {
	CloseRequest[string]
}

func TestShow(t *testing.T) {
	t.Run("Opens a window with the view content", func(t *testing.T) {
		host := &fakeHost{}
		nav := NewNavigator(host)
		p := &stubPresenter{}

		err := Show(nav, p, &stubView{title: "Details", content: "body"}, ShowOptions[string]{})
		if err != nil {
			t.Fatalf("Show failed: %v", err)
		}

		if len(host.windows) != 1 {
			t.Fatalf("expected 1 window, got %d", len(host.windows))
		}
		w := host.windows[0]
		if w.title != "Details" || w.content != "body" || !w.shown {
			t.Errorf("window not set up from view: %+v", w)
		}
	})

	t.Run("Nil view is an error", func(t *testing.T) {
		nav := NewNavigator(&fakeHost{})
		if err := Show[string](nav, &stubPresenter{}, nil, ShowOptions[string]{}); err == nil {
			t.Error("expected error for nil view")
		}
	})

	t.Run("Nil presenter is an error", func(t *testing.T) {
		nav := NewNavigator(&fakeHost{})
		if err := Show[string](nav, nil, &stubView{}, ShowOptions[string]{}); err == nil {
			t.Error("expected error for nil presenter")
		}
	})
}

func TestCloseProtocol(t *testing.T) {
	t.Run("Ok close request delivers value and closes window", func(t *testing.T) {
		host := &fakeHost{}
		nav := NewNavigator(host)
		p := &stubPresenter{}

		var got Result[string]
		err := Show(nav, p, &stubView{title: "Edit"}, ShowOptions[string]{
			OnClosed: func(r Result[string]) { got = r },
		})
		if err != nil {
			t.Fatalf("Show failed: %v", err)
		}

		p.RequestClose(Ok("saved"))

		if v, ok := got.Value(); !ok || v != "saved" {
			t.Errorf("expected ok(saved), got %v", got)
		}
		if !host.windows[0].closed {
			t.Error("window should be closed after the close request")
		}
	})

	t.Run("Chrome close delivers Cancelled", func(t *testing.T) {
		host := &fakeHost{}
		nav := NewNavigator(host)
		p := &stubPresenter{}

		delivered := 0
		var got Result[string]
		Show(nav, p, &stubView{title: "Edit"}, ShowOptions[string]{
			OnClosed: func(r Result[string]) { delivered++; got = r },
		})

		host.windows[0].Close() // user clicks the window chrome

		if delivered != 1 {
			t.Fatalf("expected exactly one delivery, got %d", delivered)
		}
		if _, ok := got.Value(); ok {
			t.Errorf("expected cancelled, got %v", got)
		}
	})

	t.Run("Result is delivered exactly once", func(t *testing.T) {
		host := &fakeHost{}
		nav := NewNavigator(host)
		p := &stubPresenter{}

		delivered := 0
		Show(nav, p, &stubView{title: "Edit"}, ShowOptions[string]{
			OnClosed: func(Result[string]) { delivered++ },
		})

		p.RequestClose(Ok("value")) // triggers Close, which fires onClosed too

		if delivered != 1 {
			t.Errorf("expected exactly one delivery, got %d", delivered)
		}
	})

	t.Run("Close request without navigator is dropped", func(t *testing.T) {
		p := &stubPresenter{}
		p.RequestClose(Ok("orphan")) // must not panic
	})
}

func TestSingletonWindows(t *testing.T) {
	t.Run("Same key activates instead of duplicating", func(t *testing.T) {
		host := &fakeHost{}
		nav := NewNavigator(host)

		Show(nav, &stubPresenter{}, &stubView{title: "One"}, ShowOptions[string]{Key: "contact-1"})
		Show(nav, &stubPresenter{}, &stubView{title: "One"}, ShowOptions[string]{Key: "contact-1"})

		if len(host.windows) != 1 {
			t.Fatalf("expected 1 window, got %d", len(host.windows))
		}
		if host.windows[0].activate != 1 {
			t.Errorf("expected existing window activated once, got %d", host.windows[0].activate)
		}
	})

	t.Run("Racing Shows with the same key build one window", func(t *testing.T) {
		host := &gatedHost{entered: make(chan struct{}), release: make(chan struct{})}
		nav := NewNavigator(host)

		done := make(chan struct{})
		go func() {
			Show(nav, &stubPresenter{}, &stubView{title: "One"}, ShowOptions[string]{Key: "contact-1"})
			close(done)
		}()

		// First Show is inside the host with the key already reserved.
		select {
		case <-host.entered:
		case <-time.After(2 * time.Second):
			t.Fatal("first Show never reached the host")
		}

		// Second Show must find the reservation, not open a second window.
		if err := Show(nav, &stubPresenter{}, &stubView{title: "One"}, ShowOptions[string]{Key: "contact-1"}); err != nil {
			t.Fatalf("Show failed: %v", err)
		}

		close(host.release)
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("first Show never returned")
		}

		if host.count() != 1 {
			t.Fatalf("expected 1 window for singleton key, got %d", host.count())
		}
		if host.windows[0].activate != 1 {
			t.Errorf("expected the activation replayed once the window landed, got %d", host.windows[0].activate)
		}
	})

	t.Run("Different keys open separate windows", func(t *testing.T) {
		host := &fakeHost{}
		nav := NewNavigator(host)

		Show(nav, &stubPresenter{}, &stubView{}, ShowOptions[string]{Key: "a"})
		Show(nav, &stubPresenter{}, &stubView{}, ShowOptions[string]{Key: "b"})

		if len(host.windows) != 2 {
			t.Errorf("expected 2 windows, got %d", len(host.windows))
		}
		if nav.OpenCount() != 2 {
			t.Errorf("expected 2 tracked singletons, got %d", nav.OpenCount())
		}
	})

	t.Run("Key is reusable after close", func(t *testing.T) {
		host := &fakeHost{}
		nav := NewNavigator(host)

		Show(nav, &stubPresenter{}, &stubView{}, ShowOptions[string]{Key: "a"})
		host.windows[0].Close()

		if nav.OpenCount() != 0 {
			t.Fatalf("expected 0 tracked singletons after close, got %d", nav.OpenCount())
		}

		Show(nav, &stubPresenter{}, &stubView{}, ShowOptions[string]{Key: "a"})
		if len(host.windows) != 2 {
			t.Errorf("expected a fresh window after close, got %d total", len(host.windows))
		}
	})
}

func TestShowModal(t *testing.T) {
	t.Run("Blocks until the close request and returns its result", func(t *testing.T) {
		host := &fakeHost{}
		nav := NewNavigator(host)
		p := &stubPresenter{}

		type outcome struct {
			res Result[string]
			err error
		}
		resCh := make(chan outcome, 1)
		go func() {
			r, err := ShowModal(nav, p, &stubView{title: "Modal"})
			resCh <- outcome{res: r, err: err}
		}()

		// Wait for the window, then complete the interaction.
		deadline := time.After(2 * time.Second)
		for host.count() == 0 {
			select {
			case <-deadline:
				t.Fatal("modal window never opened")
			case <-time.After(5 * time.Millisecond):
			}
		}
		p.RequestClose(Ok("done"))

		select {
		case out := <-resCh:
			if out.err != nil {
				t.Fatalf("ShowModal failed: %v", out.err)
			}
			if v, ok := out.res.Value(); !ok || v != "done" {
				t.Errorf("expected ok(done), got %v", out.res)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("ShowModal never returned")
		}
	})

	t.Run("Nil view fails immediately", func(t *testing.T) {
		nav := NewNavigator(&fakeHost{})
		if _, err := ShowModal[string](nav, &stubPresenter{}, nil); err == nil {
			t.Error("expected error for nil view")
		}
	})
}
