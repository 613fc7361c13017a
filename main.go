// Package main provides the entry point for the Contour Tools GUI.
package main

import (
	"log"
	"os"
	"time"

	"contour-tools/internal/app"
	"contour-tools/internal/version"
	"contour-tools/ui/mainwindow"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

const appTitle = "Contour Tools"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s", version.String())

	fyneApp := fyneapp.NewWithID("contour-tools")
	fyneApp.Settings().SetTheme(&app.ContourTheme{})

	state := app.NewState()
	defer state.Close()

	win := mainwindow.New(fyneApp, state)
	win.Resize(fyne.NewSize(1200, 800))

	if len(os.Args) > 1 {
		win.OpenImage(os.Args[1])
	} else {
		win.RestoreLastImage()
	}

	setupHotReload(win)

	win.ShowAndRun()
}

// setupHotReload prompts for a restart when the binary is recompiled.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if restart {
					log.Println("Hot reload: restarting...")
					if err := reloader.Restart(); err != nil {
						log.Printf("Hot reload: restart failed: %v", err)
					}
					return
				}
				reloader.ResetBaseline()
				reloader.Start()
			}, win.Window)
	})

	reloader.Start()
}
