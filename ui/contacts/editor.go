// Package contacts is the master-detail demo: a roster list with
// non-modal singleton detail windows and a modal editor presenter built
// on the dispatcher, the change tracker and the validation rules.
package contacts

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"fynemvp/core/actions"
	"fynemvp/core/events"
	"fynemvp/core/navigation"
	"fynemvp/core/services"
	"fynemvp/core/tracking"
	"fynemvp/core/validation"
	"fynemvp/ui/components"
)

// SavedMessage announces that the editor committed changes to a contact.
type SavedMessage struct {
	Contact services.Contact
}

var (
	actionSave   = actions.NewViewAction("contacts.editor", "save")
	actionRevert = actions.NewViewAction("contacts.editor", "revert")
	actionCancel = actions.NewViewAction("contacts.editor", "cancel")
)

// view adapts a built widget tree to navigation.View.
type view struct {
	title   string
	content fyne.CanvasObject
}

func (v *view) Title() string { return v.title }
func (v *view) Content() any  { return v.content }

// EditorPresenter edits one contact in its own window. Save is gated on
// the tracker reporting changes and the validation rules passing; the
// outcome travels back through the close protocol and a SavedMessage on
// the bus.
type EditorPresenter struct {
	navigation.CloseRequest[services.Contact]

	bus        *events.Aggregator
	roster     *services.RosterService
	tracker    *tracking.Tracker[services.Contact]
	dispatcher *actions.Dispatcher
	problems   validation.Problems

	nameEntry     *widget.Entry
	emailEntry    *widget.Entry
	notesEntry    *widget.Entry
	problemsLabel *widget.Label
}

// NewEditor builds the presenter and its view for contact. Must run on
// the UI goroutine since it constructs widgets.
func NewEditor(bus *events.Aggregator, roster *services.RosterService, contact services.Contact) (*EditorPresenter, navigation.View) {
	p := &EditorPresenter{
		bus:     bus,
		roster:  roster,
		tracker: tracking.New(contact, nil),
	}
	p.dispatcher = actions.NewDispatcher()
	binder := actions.NewBinder(p.dispatcher)

	p.nameEntry = widget.NewEntry()
	p.emailEntry = widget.NewEntry()
	p.notesEntry = widget.NewMultiLineEntry()
	p.problemsLabel = widget.NewLabel("")
	p.problemsLabel.Wrapping = fyne.TextWrapWord
	p.loadWidgets()

	p.nameEntry.OnChanged = func(s string) {
		p.tracker.Update(func(c *services.Contact) { c.Name = s })
		p.revalidate()
	}
	p.emailEntry.OnChanged = func(s string) {
		p.tracker.Update(func(c *services.Contact) { c.Email = s })
		p.revalidate()
	}
	p.notesEntry.OnChanged = func(s string) {
		p.tracker.Update(func(c *services.Contact) { c.Notes = s })
		p.revalidate()
	}

	p.dispatcher.Register(actionSave, p.save, func() bool {
		return p.tracker.IsChanged() && p.problems.Valid()
	})
	p.dispatcher.Register(actionRevert, p.revert, func() bool {
		return p.tracker.IsChanged()
	})
	p.dispatcher.Register(actionCancel, func() {
		p.RequestClose(navigation.Cancelled[services.Contact]())
	}, nil)

	saveBtn := widget.NewButton("Save", nil)
	revertBtn := widget.NewButton("Revert", nil)
	cancelBtn := widget.NewButton("Cancel", nil)
	components.BindButton(binder, saveBtn, actionSave)
	components.BindButton(binder, revertBtn, actionRevert)
	components.BindButton(binder, cancelBtn, actionCancel)

	form := widget.NewForm(
		widget.NewFormItem("Name", p.nameEntry),
		widget.NewFormItem("Email", p.emailEntry),
		widget.NewFormItem("Notes", p.notesEntry),
	)
	content := container.NewVBox(
		form,
		p.problemsLabel,
		container.NewHBox(saveBtn, revertBtn, cancelBtn),
	)

	p.revalidate()
	return p, &view{title: "Edit " + contact.Name, content: content}
}

func (p *EditorPresenter) loadWidgets() {
	c := p.tracker.Value()
	p.nameEntry.SetText(c.Name)
	p.emailEntry.SetText(c.Email)
	p.notesEntry.SetText(c.Notes)
}

func (p *EditorPresenter) revalidate() {
	c := p.tracker.Value()
	var check validation.Check
	check.Require("name", c.Name)
	check.MaxLen("name", c.Name, 80)
	check.Require("email", c.Email)
	check.Email("email", c.Email)
	check.MaxLen("notes", c.Notes, 500)
	p.problems = check.Problems()

	if p.problems.Valid() {
		p.problemsLabel.SetText("")
	} else {
		p.problemsLabel.SetText(p.problems.String())
	}
	p.dispatcher.RaiseCanExecuteChanged()
}

func (p *EditorPresenter) save() {
	c := p.tracker.Value()
	if err := p.roster.Update(c); err != nil {
		p.problemsLabel.SetText(err.Error())
		return
	}
	p.tracker.AcceptChanges()
	events.Publish(p.bus, SavedMessage{Contact: c})
	p.RequestClose(navigation.Ok(c))
}

func (p *EditorPresenter) revert() {
	p.tracker.Reset()
	p.loadWidgets()
	p.revalidate()
}
