package main

import (
	"log"

	"pomobar/internal/core/model"
	"pomobar/internal/core/timer"
	"pomobar/internal/notify"
	"pomobar/internal/platform"
	"pomobar/internal/sound"
	"pomobar/internal/storage"
	"pomobar/internal/ui/popover"
	"pomobar/internal/ui/preferences"
	"pomobar/internal/ui/tray"
	"pomobar/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName     = "Pomobar"
	eventBuffer = 64
)

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		if err := platform.ActivateRunning(appName); err != nil {
			log.Printf("%v", err)
		}
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	service := platform.NewService()
	store := settingsStore(service)
	settings, err := store.Load()
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	fyneApp := app.NewWithID("com.pomobar.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconRunning))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	engine := timer.New(model.DefaultTimerConfig(), timer.NewTickerScheduler(fyne.Do))
	chime := sound.NewChime(nil, settings.ChimeVolume)
	dispatcher := notify.New(fyneApp, chime, notifyOptions(settings))

	quit := func() {
		engine.Close()
		fyneApp.Quit()
	}

	panel := popover.New(fyneApp, engine, quit)
	desktopApp.SetSystemTrayWindow(panel.Window())

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		dispatcher.SetOptions(notifyOptions(settings))
		chime.SetVolume(settings.ChimeVolume)
		if err := store.Save(settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		if err := platform.ApplyAutostart(service, appName, settings.LaunchAtLogin); err != nil {
			log.Printf("autostart: %v", err)
		}
	})

	trayManager := tray.New(desktopApp, tray.SystrayIndicator{}, tray.Icons{
		Idle:    resources.MustIcon(resources.IconIdle),
		Running: resources.MustIcon(resources.IconRunning),
	}, tray.Callbacks{
		OnOpen:        panel.Show,
		OnToggle:      engine.Toggle,
		OnReset:       engine.Reset,
		OnPreferences: prefsWindow.Show,
		OnQuit:        quit,
	})

	render := func(snapshot timer.Snapshot) {
		trayManager.Render(snapshot)
		panel.Render(snapshot)
	}
	render(engine.Snapshot())

	events := engine.Subscribe(eventBuffer)
	go func() {
		for event := range events {
			fyne.Do(func() {
				dispatcher.Handle(event)
				render(event.Snapshot)
			})
		}
	}()

	guard.Serve(func() {
		fyne.Do(panel.Show)
	})

	panel.Show()
	fyneApp.Run()
}

func settingsStore(service platform.Service) *storage.Store {
	configDir, err := service.GetConfigDir()
	if err != nil {
		log.Printf("config dir: %v", err)
	}
	return storage.NewStore(configDir, appName)
}

func notifyOptions(settings preferences.Settings) notify.Options {
	return notify.Options{
		Notifications: settings.NotificationsEnabled,
		Chime:         settings.ChimeEnabled,
	}
}
