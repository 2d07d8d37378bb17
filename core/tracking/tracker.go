// Package tracking implements dirty-state detection for edited values: a
// deep-cloned snapshot is taken up front and compared against the current
// value with go-cmp, with the comparison cached until the next mutation.
package tracking

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/go-cmp/cmp"
)

// CloneFunc produces a deep copy of v. The snapshot must not share
// mutable state with the value being edited.
type CloneFunc[T any] func(v T) T

// JSONClone deep-copies plain data structs through a JSON round trip.
// Suitable for the exported-field model types presenters edit; panics on
// types JSON cannot represent, which is a wiring defect.
func JSONClone[T any](v T) T {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("tracking: JSONClone marshal: %v", err))
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("tracking: JSONClone unmarshal: %v", err))
	}
	return out
}

// Tracker holds an original snapshot and the current value of an edited
// T. Safe for concurrent use, though presenters normally touch it from
// the UI goroutine only.
type Tracker[T any] struct {
	clone CloneFunc[T]
	opts  []cmp.Option

	mu       sync.Mutex
	original T
	current  T
	changed  *bool // nil until computed, invalidated on mutation
}

// New creates a tracker for value. clone is used for snapshots; nil means
// JSONClone. opts are passed to go-cmp, e.g. cmpopts.EquateEmpty or an
// exporter for unexported fields.
func New[T any](value T, clone CloneFunc[T], opts ...cmp.Option) *Tracker[T] {
	if clone == nil {
		clone = JSONClone[T]
	}
	return &Tracker[T]{
		clone:    clone,
		opts:     opts,
		original: clone(value),
		current:  value,
	}
}

// Value returns the current value.
func (t *Tracker[T]) Value() T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Original returns a clone of the snapshot taken at construction or at
// the last AcceptChanges.
func (t *Tracker[T]) Original() T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.clone(t.original)
}

// Set replaces the current value and invalidates the cached comparison.
func (t *Tracker[T]) Set(value T) {
	t.mu.Lock()
	t.current = value
	t.changed = nil
	t.mu.Unlock()
}

// Update mutates the current value in place and invalidates the cached
// comparison.
func (t *Tracker[T]) Update(mutate func(v *T)) {
	t.mu.Lock()
	mutate(&t.current)
	t.changed = nil
	t.mu.Unlock()
}

// IsChanged reports whether the current value differs from the snapshot.
// The comparison result is cached until the next Set/Update/AcceptChanges.
func (t *Tracker[T]) IsChanged() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.changed == nil {
		c := !cmp.Equal(t.original, t.current, t.opts...)
		t.changed = &c
	}
	return *t.changed
}

// AcceptChanges re-snapshots the current value, making it the new
// baseline.
func (t *Tracker[T]) AcceptChanges() {
	t.mu.Lock()
	t.original = t.clone(t.current)
	t.changed = nil
	t.mu.Unlock()
}

// Reset discards edits and restores the current value from the snapshot.
func (t *Tracker[T]) Reset() {
	t.mu.Lock()
	t.current = t.clone(t.original)
	t.changed = nil
	t.mu.Unlock()
}
