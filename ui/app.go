package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"fynemvp/internal/constants"
)

// App manages the main window's tab structure.
type App struct {
	window fyne.Window
	ctx    *AppContext
	tabs   *container.AppTabs
}

// NewApp creates the demo shell. The pub/sub tab opens first since the
// other tabs publish their status lines into it.
func NewApp(ctx *AppContext) *App {
	a := &App{
		window: ctx.MainWindow,
		ctx:    ctx,
	}

	a.tabs = container.NewAppTabs(
		container.NewTabItem("Pub/Sub", CreatePubSubTab(ctx)),
		container.NewTabItem("Contacts", CreateContactsTab(ctx)),
		container.NewTabItem("Diagnostics", CreateDiagnosticsTab(ctx)),
		container.NewTabItem("About", createAboutTab()),
	)

	return a
}

// Tabs returns the tabs container for the window content.
func (a *App) Tabs() *container.AppTabs {
	return a.tabs
}

func createAboutTab() fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabel(constants.AppName+" "+constants.AppVersion),
		widget.NewLabel("Model-View-Presenter demo: event aggregator, view actions, window navigation."),
		widget.NewLabel("Set FYNEMVP_DEBUG=verbose for framework logs."),
	)
}
