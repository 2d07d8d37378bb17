package actions

import (
	"sync"
)

// Target is the widget surface the binder drives. It deliberately mirrors
// fyne.Disableable so stock Fyne widgets satisfy it without an adapter,
// while keeping this package free of toolkit imports.
type Target interface {
	Enable()
	Disable()
}

type binding struct {
	target Target
	action ViewAction
}

// Binder keeps widgets' enabled state in sync with the dispatcher's
// can-execute answers. Event wiring (click, checked-changed) is done by
// toolkit glue that translates native widget events into Dispatch calls;
// the binder only owns the state push in the other direction.
type Binder struct {
	dispatcher *Dispatcher

	mu       sync.Mutex
	bindings []binding
}

// NewBinder creates a binder attached to d and subscribes it to
// can-execute change notifications.
func NewBinder(d *Dispatcher) *Binder {
	if d == nil {
		panic("actions: NewBinder called with nil dispatcher")
	}
	b := &Binder{dispatcher: d}
	d.OnCanExecuteChanged(b.Refresh)
	return b
}

// Dispatcher returns the dispatcher this binder pushes state for.
func (b *Binder) Dispatcher() *Dispatcher { return b.dispatcher }

// Bind ties target's enabled state to action and applies the current
// state immediately. A nil target panics.
func (b *Binder) Bind(target Target, action ViewAction) {
	if target == nil {
		panic("actions: Bind called with nil target for " + action.Key())
	}
	b.mu.Lock()
	b.bindings = append(b.bindings, binding{target: target, action: action})
	b.mu.Unlock()
	b.apply(target, action)
}

// Refresh re-evaluates every bound action's predicate and pushes the
// result to its widget. Runs on the UI goroutine.
func (b *Binder) Refresh() {
	b.mu.Lock()
	snapshot := append([]binding(nil), b.bindings...)
	b.mu.Unlock()
	for _, bd := range snapshot {
		b.apply(bd.target, bd.action)
	}
}

func (b *Binder) apply(target Target, action ViewAction) {
	if b.dispatcher.CanExecute(action) {
		target.Enable()
	} else {
		target.Disable()
	}
}
