package contacts

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"fynemvp/core/navigation"
	"fynemvp/core/services"
)

// DetailPresenter shows one contact read-only. Opened non-modally and
// keyed by contact id, so asking for the same contact twice focuses the
// already open window.
type DetailPresenter struct {
	navigation.CloseRequest[struct{}]
}

// DetailKey is the singleton identity for a contact's detail window.
func DetailKey(contactID string) string {
	return "contact-detail:" + contactID
}

// NewDetail builds the presenter and view. Must run on the UI goroutine.
func NewDetail(contact services.Contact) (*DetailPresenter, navigation.View) {
	p := &DetailPresenter{}

	notes := widget.NewLabel(contact.Notes)
	notes.Wrapping = fyne.TextWrapWord
	closeBtn := widget.NewButton("Close", func() {
		p.RequestClose(navigation.Cancelled[struct{}]())
	})

	content := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Name", widget.NewLabel(contact.Name)),
			widget.NewFormItem("Email", widget.NewLabel(contact.Email)),
			widget.NewFormItem("Notes", notes),
		),
		closeBtn,
	)
	return p, &view{title: contact.Name, content: content}
}
