// Package ui is the Fyne side of the framework: the Poster that marshals
// aggregator deliveries onto the UI goroutine, the widget glue for the
// action binder, the window host behind the navigator, and the demo
// application's tabs.
package ui

import (
	"fyne.io/fyne/v2"

	"fynemvp/core/config"
	"fynemvp/core/events"
	"fynemvp/core/navigation"
	"fynemvp/core/services"
)

// AppContext bundles what every tab needs: the toolkit handles and the
// framework services shared across the demo.
type AppContext struct {
	Application fyne.App
	MainWindow  fyne.Window

	Settings  config.Settings
	Bus       *events.Aggregator
	Navigator *navigation.Navigator
	Roster    *services.RosterService
}
