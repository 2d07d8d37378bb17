package mainthread

import (
	"sync"
	"testing"
)

func TestOnMain(t *testing.T) {
	t.Run("Before capture reports false", func(t *testing.T) {
		mainID.Store(0)
		if OnMain() {
			t.Error("OnMain should be false before Capture")
		}
	})

	t.Run("Capturing goroutine reports true", func(t *testing.T) {
		Capture()
		if !OnMain() {
			t.Error("OnMain should be true on the capturing goroutine")
		}
	})

	t.Run("Other goroutine reports false", func(t *testing.T) {
		Capture()
		var wg sync.WaitGroup
		var other bool
		wg.Add(1)
		go func() {
			defer wg.Done()
			other = OnMain()
		}()
		wg.Wait()
		if other {
			t.Error("OnMain should be false on a different goroutine")
		}
	})
}
