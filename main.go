package main

import (
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"fynemvp/core/config"
	"fynemvp/core/events"
	"fynemvp/core/navigation"
	"fynemvp/core/services"
	"fynemvp/internal/constants"
	"fynemvp/internal/debuglog"
	"fynemvp/internal/mainthread"
	"fynemvp/ui"
)

// settingsPath resolves settings.jsonc next to the executable, falling
// back to the working directory when the executable path is unknown.
func settingsPath() string {
	exe, err := os.Executable()
	if err != nil {
		return constants.SettingsFileName
	}
	return filepath.Join(filepath.Dir(exe), constants.SettingsFileName)
}

func main() {
	// The goroutine running main is the one Fyne pumps events on; the
	// poster and the window host route all widget work back here.
	mainthread.Capture()

	settings, err := config.Load(settingsPath())
	if err != nil {
		log.Printf("main: settings ignored: %v", err)
	}
	debuglog.SetGlobalLevel(settings.LogLevel)

	application := app.NewWithID(constants.AppID)
	window := application.NewWindow(constants.AppName)
	window.Resize(fyne.NewSize(float32(settings.WindowWidth), float32(settings.WindowHeight)))

	ctx := &ui.AppContext{
		Application: application,
		MainWindow:  window,
		Settings:    settings,
		Bus:         events.New(ui.UIPoster()),
		Navigator:   navigation.NewNavigator(ui.NewWindowHost(application)),
		Roster:      services.NewRosterService(),
	}

	shell := ui.NewApp(ctx)
	window.SetContent(shell.Tabs())
	window.ShowAndRun()
}
