package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"fynemvp/core/actions"
	"fynemvp/core/events"
	"fynemvp/core/navigation"
	"fynemvp/core/services"
	"fynemvp/internal/debuglog"
	"fynemvp/internal/dialogs"
	"fynemvp/ui/components"
	"fynemvp/ui/contacts"
)

var (
	actionOpenDetails = actions.NewViewAction("contacts", "open-details")
	actionEditContact = actions.NewViewAction("contacts", "edit")
	actionAddContact  = actions.NewViewAction("contacts", "add")
)

type contactsPresenter struct {
	ctx *AppContext

	items    []services.Contact
	list     *widget.List
	selected int
}

// CreateContactsTab builds the master-detail demo: a roster list,
// singleton detail windows and a modal editor.
func CreateContactsTab(ctx *AppContext) fyne.CanvasObject {
	p := &contactsPresenter{ctx: ctx, selected: -1}
	p.items = ctx.Roster.List()

	p.list = widget.NewList(
		func() int { return len(p.items) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			c := p.items[i]
			o.(*widget.Label).SetText(fmt.Sprintf("%s  <%s>", c.Name, c.Email))
		},
	)

	dispatcher := actions.NewDispatcher()
	binder := actions.NewBinder(dispatcher)

	p.list.OnSelected = func(i widget.ListItemID) {
		p.selected = i
		dispatcher.RaiseCanExecuteChanged()
	}
	p.list.OnUnselected = func(widget.ListItemID) {
		p.selected = -1
		dispatcher.RaiseCanExecuteChanged()
	}

	// The editor publishes SavedMessage on commit; the list refreshes from
	// the bus instead of being wired to the editor directly.
	events.Subscribe(ctx.Bus, func(contacts.SavedMessage) {
		p.items = ctx.Roster.List()
		p.list.Refresh()
	})

	hasSelection := func() bool { return p.selected >= 0 && p.selected < len(p.items) }

	dispatcher.Register(actionOpenDetails, func() {
		c := p.items[p.selected]
		pres, view := contacts.NewDetail(c)
		err := navigation.Show(ctx.Navigator, pres, view, navigation.ShowOptions[struct{}]{
			Key: contacts.DetailKey(c.ID),
		})
		if err != nil {
			dialogs.ShowError(ctx.MainWindow, err)
		}
	}, hasSelection)

	dispatcher.Register(actionEditContact, func() {
		p.editContact(p.items[p.selected])
	}, hasSelection)

	dispatcher.Register(actionAddContact, func() {
		added := ctx.Roster.Add(services.Contact{Name: "New Contact"})
		p.items = ctx.Roster.List()
		p.list.Refresh()
		p.editContact(added)
	}, nil)

	details := widget.NewButton("Open Details", nil)
	edit := widget.NewButton("Edit...", nil)
	add := widget.NewButton("Add", nil)
	components.BindButton(binder, details, actionOpenDetails)
	components.BindButton(binder, edit, actionEditContact)
	components.BindButton(binder, add, actionAddContact)

	controls := container.NewVBox(
		widget.NewLabel("Contacts"),
		container.NewHBox(details, edit, add),
	)
	return container.NewBorder(controls, nil, nil, nil, p.list)
}

// editContact opens the modal editor. The presenter and its widgets are
// built here on the UI goroutine; only the blocking wait moves to a
// background goroutine.
func (p *contactsPresenter) editContact(c services.Contact) {
	pres, view := contacts.NewEditor(p.ctx.Bus, p.ctx.Roster, c)
	go func() {
		res, err := navigation.ShowModal(p.ctx.Navigator, pres, view)
		if err != nil {
			debuglog.Log("contacts", debuglog.LevelError, debuglog.UseGlobal,
				"modal editor failed: %v", err)
			dialogs.ShowError(p.ctx.MainWindow, err)
			return
		}
		if saved, ok := res.Value(); ok {
			events.Publish(p.ctx.Bus, StatusMessage{
				Source: "contacts", Text: "saved " + saved.Name,
			})
		} else {
			events.Publish(p.ctx.Bus, StatusMessage{
				Source: "contacts", Text: "edit cancelled",
			})
		}
	}()
}
