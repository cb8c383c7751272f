package main

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/UKR-PROJECTS/instaloader-gui/internal/config"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/history"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/platform"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ukr-projects.instaloader-gui"
	AppName = "Instaloader GUI"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Ensure the base download directory exists before opening the history store in it
	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Printf("failed to ensure downloads dir: %v", err)
	}

	store, err := history.Open(filepath.Join(downloadsDir, history.DefaultFileName))
	if err != nil {
		// The app still works without history; records are simply dropped
		log.Printf("failed to open history store: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, store)

	// Show and run
	myWindow.ShowAndRun()
}
