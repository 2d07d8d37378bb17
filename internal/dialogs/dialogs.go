// Package dialogs wraps the stock Fyne dialogs so they can be shown from
// any goroutine. Every helper routes through fyne.Do, which is a no-op
// safety cost on the UI goroutine boundary compared to mis-threaded
// widget access.
package dialogs

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ShowError shows an error dialog to the user.
func ShowError(window fyne.Window, err error) {
	fyne.Do(func() {
		dialog.ShowError(err, window)
	})
}

// ShowErrorText shows an error dialog built from a title and message.
func ShowErrorText(window fyne.Window, title, message string) {
	fyne.Do(func() {
		dialog.ShowError(fmt.Errorf("%s: %s", title, message), window)
	})
}

// ShowInfo shows an information dialog.
func ShowInfo(window fyne.Window, title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, window)
	})
}

// ShowConfirm shows a confirmation dialog and reports the choice to onConfirm.
func ShowConfirm(window fyne.Window, title, message string, onConfirm func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, onConfirm, window)
	})
}

// ShowCustom shows a dialog with arbitrary content and a single dismiss button.
func ShowCustom(window fyne.Window, title, dismiss string, content fyne.CanvasObject) {
	fyne.Do(func() {
		dialog.ShowCustom(title, dismiss, content, window)
	})
}

// ShowAutoHideInfo shows a borderless notice that hides itself after delay.
func ShowAutoHideInfo(window fyne.Window, title, message string, delay time.Duration) {
	fyne.Do(func() {
		d := dialog.NewCustomWithoutButtons(title, widget.NewLabel(message), window)
		d.Show()
		go func() {
			time.Sleep(delay)
			fyne.Do(func() { d.Hide() })
		}()
	})
}
