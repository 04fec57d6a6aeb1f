package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomobar/internal/sound"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	notifications *widget.Check
	chime         *widget.Check
	volume        *widget.Slider
	launchAtLogin *widget.Check
	saveButton    *widget.Button
	cancelButton  *widget.Button
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomobar Settings")

	notifications := widget.NewCheck("Show a notification when a countdown ends", nil)
	chime := widget.NewCheck("Play a chime when a countdown ends", nil)
	volume := widget.NewSlider(0, 1)
	volume.Step = 0.05
	launchAtLogin := widget.NewCheck("Launch at login", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Completion", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		notifications,
		chime,
		widget.NewLabel("Chime volume"),
		volume,
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		launchAtLogin,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 260))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		notifications: notifications,
		chime:         chime,
		volume:        volume,
		launchAtLogin: launchAtLogin,
		saveButton:    saveButton,
		cancelButton:  cancelButton,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	chime.OnChanged = func(enabled bool) {
		if enabled {
			volume.Enable()
		} else {
			volume.Disable()
		}
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.notifications.SetChecked(settings.NotificationsEnabled)
	prefs.chime.SetChecked(settings.ChimeEnabled)
	prefs.volume.SetValue(sound.ClampVolume(settings.ChimeVolume))
	if settings.ChimeEnabled {
		prefs.volume.Enable()
	} else {
		prefs.volume.Disable()
	}
	prefs.launchAtLogin.SetChecked(settings.LaunchAtLogin)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.NotificationsEnabled = prefs.notifications.Checked
	settings.ChimeEnabled = prefs.chime.Checked
	settings.ChimeVolume = sound.ClampVolume(prefs.volume.Value)
	settings.LaunchAtLogin = prefs.launchAtLogin.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
