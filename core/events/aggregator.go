// Package events implements a process-wide publish/subscribe bus for
// presenter-to-presenter messaging. Messages are plain Go values keyed by
// their concrete type; delivery is marshaled onto the UI goroutine through
// a Poster supplied at construction time so handlers can touch widgets no
// matter which goroutine published.
package events

import (
	"reflect"
	"sync"
	"sync/atomic"
	"weak"

	"fynemvp/internal/debuglog"
)

const logPrefix = "events"

// Poster queues work onto the UI goroutine. Implementations decide whether
// the caller is already there and may run fn inline in that case.
type Poster interface {
	Post(fn func())
}

// PosterFunc adapts a function to the Poster interface.
type PosterFunc func(func())

func (f PosterFunc) Post(fn func()) { f(fn) }

// Aggregator is the message bus. The zero value is not usable; construct
// with New. Safe for concurrent use.
type Aggregator struct {
	poster Poster

	mu     sync.Mutex
	subs   map[reflect.Type][]*Subscription
	nextID uint64
}

// New creates an aggregator that delivers through poster. A nil poster
// means handlers run inline on the publishing goroutine, which is what
// tests and headless tools want.
func New(poster Poster) *Aggregator {
	return &Aggregator{
		poster: poster,
		subs:   make(map[reflect.Type][]*Subscription),
	}
}

// Subscription is the token returned by Subscribe and SubscribeWeak.
// Unsubscribe detaches it; a weak subscription also detaches itself once
// its owner has been collected.
type Subscription struct {
	agg     *Aggregator
	msgType reflect.Type
	id      uint64
	closed  atomic.Bool

	// filter runs on the publisher goroutine before any marshaling so a
	// rejected message never crosses the goroutine boundary. Nil accepts all.
	filter func(any) bool

	// prepare binds msg into a ready-to-run handler invocation. reports
	// alive=false once the subscription's owner has been collected.
	prepare func(msg any) (fn func(), alive bool)
}

// Unsubscribe removes the subscription from the bus. Safe to call more
// than once and on a nil receiver.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.closed.Swap(true) {
		return
	}
	s.agg.remove(s.msgType, s.id)
}

// Active reports whether the subscription is still registered.
func (s *Subscription) Active() bool {
	return s != nil && !s.closed.Load()
}

// SubscribeOption configures a single subscription.
type SubscribeOption[T any] func(*subscribeConfig[T])

type subscribeConfig[T any] struct {
	filter func(T) bool
}

// WithFilter rejects messages for which pred returns false. The predicate
// executes on the publisher goroutine.
func WithFilter[T any](pred func(T) bool) SubscribeOption[T] {
	return func(c *subscribeConfig[T]) { c.filter = pred }
}

// Subscribe registers handler for messages of type T and returns its token.
// The bus holds the handler strongly until Unsubscribe is called.
// A nil handler is a wiring defect and panics.
func Subscribe[T any](a *Aggregator, handler func(T), opts ...SubscribeOption[T]) *Subscription {
	if handler == nil {
		panic("events: Subscribe called with nil handler")
	}
	sub := newSubscription(a, typeOf[T](), opts)
	sub.prepare = func(msg any) (func(), bool) {
		m := msg.(T)
		return func() { handler(m) }, true
	}
	a.add(sub)
	return sub
}

// SubscribeWeak registers an owner-bound handler without keeping owner
// alive: the bus holds only a weak pointer to it, and handler must be an
// owner-taking function (typically a method expression such as
// (*Presenter).OnSaved) so that no closure pins the owner either. Once the
// owner is collected the subscription is purged on the next Publish of T.
//
// The caller must hold a strong reference to owner elsewhere for as long
// as it wants deliveries; a subscription whose owner is only reachable
// through the bus silently stops receiving messages.
func SubscribeWeak[O any, T any](a *Aggregator, owner *O, handler func(*O, T), opts ...SubscribeOption[T]) *Subscription {
	if owner == nil {
		panic("events: SubscribeWeak called with nil owner")
	}
	if handler == nil {
		panic("events: SubscribeWeak called with nil handler")
	}
	wp := weak.Make(owner)
	sub := newSubscription(a, typeOf[T](), opts)
	sub.prepare = func(msg any) (func(), bool) {
		o := wp.Value()
		if o == nil {
			return nil, false
		}
		// o is pinned by the returned closure, keeping the owner alive
		// for the duration of the (possibly posted) invocation.
		m := msg.(T)
		return func() { handler(o, m) }, true
	}
	a.add(sub)
	return sub
}

// Publish delivers msg to every live subscriber of type T. It may be
// called from any goroutine; handlers run through the aggregator's Poster.
// A panicking handler is logged and skipped, it never stops delivery to
// the remaining subscribers or reaches the publisher.
func Publish[T any](a *Aggregator, msg T) {
	t := typeOf[T]()

	a.mu.Lock()
	snapshot := append([]*Subscription(nil), a.subs[t]...)
	a.mu.Unlock()

	var dead []*Subscription
	for _, sub := range snapshot {
		if sub.closed.Load() {
			continue
		}
		if sub.filter != nil && !sub.filter(msg) {
			continue
		}
		fn, alive := sub.prepare(msg)
		if !alive {
			dead = append(dead, sub)
			continue
		}
		a.dispatch(fn)
	}

	if len(dead) > 0 {
		debuglog.Log(logPrefix, debuglog.LevelVerbose, debuglog.UseGlobal,
			"purging %d dead subscription(s) for %v", len(dead), t)
		for _, sub := range dead {
			sub.Unsubscribe()
		}
	}
}

func (a *Aggregator) dispatch(fn func()) {
	run := func() {
		defer func() {
			if r := recover(); r != nil {
				debuglog.Log(logPrefix, debuglog.LevelError, debuglog.UseGlobal,
					"subscriber panic recovered: %v", r)
			}
		}()
		fn()
	}
	if a.poster != nil {
		a.poster.Post(run)
		return
	}
	run()
}

func newSubscription[T any](a *Aggregator, t reflect.Type, opts []SubscribeOption[T]) *Subscription {
	var cfg subscribeConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}
	sub := &Subscription{agg: a, msgType: t}
	if cfg.filter != nil {
		pred := cfg.filter
		sub.filter = func(msg any) bool { return pred(msg.(T)) }
	}
	return sub
}

func (a *Aggregator) add(sub *Subscription) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextID++
	sub.id = a.nextID
	a.subs[sub.msgType] = append(a.subs[sub.msgType], sub)
}

func (a *Aggregator) remove(t reflect.Type, id uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	list := a.subs[t]
	for i, s := range list {
		if s.id == id {
			a.subs[t] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(a.subs[t]) == 0 {
		delete(a.subs, t)
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
