package actions

import (
	"reflect"
	"sync"

	"fynemvp/internal/debuglog"
)

const logPrefix = "actions"

type registration struct {
	handler    func(payload any)
	canExecute func() bool
}

// Dispatcher maps action identities to handlers with optional can-execute
// gating. Registration may happen from any goroutine; Dispatch and the
// can-execute queries are expected on the UI goroutine only, as handlers
// are invoked inline.
type Dispatcher struct {
	mu        sync.RWMutex
	regs      map[ViewAction]*registration
	listeners []func()
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{regs: make(map[ViewAction]*registration)}
}

// Register associates action with a zero-argument handler. A nil
// canExecute means the action is always executable. Registering the same
// action again replaces the previous handler. A nil handler panics.
func (d *Dispatcher) Register(action ViewAction, handler func(), canExecute func() bool) {
	if handler == nil {
		panic("actions: Register called with nil handler for " + action.Key())
	}
	d.store(action, &registration{
		handler:    func(any) { handler() },
		canExecute: canExecute,
	})
}

// RegisterWith associates action with a handler taking a typed payload.
// Dispatching with a payload of the wrong type is logged and dropped.
func RegisterWith[T any](d *Dispatcher, action ViewAction, handler func(T), canExecute func() bool) {
	if handler == nil {
		panic("actions: RegisterWith called with nil handler for " + action.Key())
	}
	pt := reflect.TypeOf((*T)(nil)).Elem()
	d.store(action, &registration{
		handler: func(payload any) {
			v, ok := payload.(T)
			if !ok {
				debuglog.Log(logPrefix, debuglog.LevelWarn, debuglog.UseGlobal,
					"%s: payload %T does not match registered type %v, dropped", action.Key(), payload, pt)
				return
			}
			handler(v)
		},
		canExecute: canExecute,
	})
}

func (d *Dispatcher) store(action ViewAction, reg *registration) {
	d.mu.Lock()
	if _, exists := d.regs[action]; exists {
		debuglog.Log(logPrefix, debuglog.LevelVerbose, debuglog.UseGlobal,
			"%s: replacing existing registration", action.Key())
	}
	d.regs[action] = reg
	d.mu.Unlock()
}

// Unregister removes the handler for action. Unknown actions are ignored.
func (d *Dispatcher) Unregister(action ViewAction) {
	d.mu.Lock()
	delete(d.regs, action)
	d.mu.Unlock()
}

// Dispatch invokes the handler registered for action, if any, unless its
// can-execute predicate currently reports false. Dispatching an
// unregistered action is a deliberate no-op, not an error: widgets may
// outlive the presenter that owned the handler.
func (d *Dispatcher) Dispatch(action ViewAction) {
	d.DispatchWith(action, nil)
}

// DispatchWith invokes the handler for action with payload.
func (d *Dispatcher) DispatchWith(action ViewAction, payload any) {
	d.mu.RLock()
	reg := d.regs[action]
	d.mu.RUnlock()

	if reg == nil {
		debuglog.Log(logPrefix, debuglog.LevelVerbose, debuglog.UseGlobal,
			"%s: dispatch with no registration, ignored", action.Key())
		return
	}
	if reg.canExecute != nil && !reg.canExecute() {
		return
	}
	reg.handler(payload)
}

// CanExecute reports whether action would run if dispatched now.
// Unregistered actions report false so bound widgets stay disabled.
func (d *Dispatcher) CanExecute(action ViewAction) bool {
	d.mu.RLock()
	reg := d.regs[action]
	d.mu.RUnlock()

	if reg == nil {
		return false
	}
	if reg.canExecute == nil {
		return true
	}
	return reg.canExecute()
}

// RaiseCanExecuteChanged re-evaluates every predicate by notifying the
// registered listeners (typically a Binder, which pushes enabled state to
// its widgets). Presenters call this after state changes that affect
// gating.
func (d *Dispatcher) RaiseCanExecuteChanged() {
	d.mu.RLock()
	listeners := append(([]func())(nil), d.listeners...)
	d.mu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}

// OnCanExecuteChanged registers fn to run on RaiseCanExecuteChanged.
func (d *Dispatcher) OnCanExecuteChanged(fn func()) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	d.listeners = append(d.listeners, fn)
	d.mu.Unlock()
}
