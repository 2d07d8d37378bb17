// Package actions routes user commands from widgets to presenter handlers.
// A ViewAction names the command, the Dispatcher owns the handler registry,
// and the Binder pushes can-execute state back onto bound widgets. All of
// it is UI-goroutine only; nothing here marshals across goroutines.
package actions

// ViewAction is the value-typed identity of a user command, qualified so
// separate presenters can use the same short name without clashing.
// Equality is by value, which makes it usable as a map key.
type ViewAction struct {
	qualifier string
	name      string
}

// NewViewAction builds an action identity. Empty parts are wiring defects
// and panic eagerly.
func NewViewAction(qualifier, name string) ViewAction {
	if qualifier == "" || name == "" {
		panic("actions: ViewAction qualifier and name must be non-empty")
	}
	return ViewAction{qualifier: qualifier, name: name}
}

// Qualifier returns the namespace part of the identity.
func (a ViewAction) Qualifier() string { return a.qualifier }

// Name returns the command name within its qualifier.
func (a ViewAction) Name() string { return a.name }

// Key returns the qualified string form, used for logging and dedup.
func (a ViewAction) Key() string { return a.qualifier + "." + a.name }

func (a ViewAction) String() string { return a.Key() }
