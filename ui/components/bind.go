// Package components holds reusable Fyne widget glue shared by the demo
// tabs and windows.
package components

import (
	"fyne.io/fyne/v2/widget"

	"fynemvp/core/actions"
)

// BindButton wires a button tap to dispatch action and ties the button's
// enabled state to the binder. The widget satisfies actions.Target
// directly through its Enable/Disable methods.
func BindButton(b *actions.Binder, btn *widget.Button, action actions.ViewAction) {
	btn.OnTapped = func() { b.Dispatcher().Dispatch(action) }
	b.Bind(btn, action)
}

// BindCheck wires a checkbox to dispatch action with the checked state as
// a bool payload, and ties the enabled state to the binder.
func BindCheck(b *actions.Binder, chk *widget.Check, action actions.ViewAction) {
	chk.OnChanged = func(on bool) { b.Dispatcher().DispatchWith(action, on) }
	b.Bind(chk, action)
}
