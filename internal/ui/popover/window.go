package popover

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomobar/internal/core/timer"
)

const (
	windowWidth   = float32(280)
	windowHeight  = float32(220)
	countdownSize = float32(48)
)

// Controller receives user intents from the panel.
type Controller interface {
	Toggle()
	Reset()
	SetTaskName(name string)
}

// Window is the primary panel: task name, countdown and controls.
type Window struct {
	window     fyne.Window
	controller Controller
	taskEntry  *widget.Entry
	countdown  *canvas.Text
	toggleBtn  *widget.Button
	resetBtn   *widget.Button
	quitBtn    *widget.Button
	onQuit     func()
}

// New creates the panel window. It starts hidden.
func New(app fyne.App, controller Controller, onQuit func()) *Window {
	window := app.NewWindow("Pomobar")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	taskEntry := widget.NewEntry()
	taskEntry.SetPlaceHolder("What are you working on?")

	countdown := canvas.NewText(timer.FormatRemaining(0), theme.Color(theme.ColorNameForeground))
	countdown.Alignment = fyne.TextAlignCenter
	countdown.TextStyle = fyne.TextStyle{Monospace: true}
	countdown.TextSize = countdownSize

	popover := &Window{
		window:     window,
		controller: controller,
		taskEntry:  taskEntry,
		countdown:  countdown,
		onQuit:     onQuit,
	}

	popover.toggleBtn = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		popover.controller.Toggle()
	})
	popover.toggleBtn.Importance = widget.HighImportance
	popover.resetBtn = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		popover.controller.Reset()
	})
	popover.quitBtn = widget.NewButtonWithIcon("Quit", theme.LogoutIcon(), func() {
		if popover.onQuit != nil {
			popover.onQuit()
		}
	})
	taskEntry.OnChanged = func(text string) {
		popover.controller.SetTaskName(text)
	}

	controls := container.NewHBox(layout.NewSpacer(), popover.toggleBtn, popover.resetBtn, layout.NewSpacer())
	content := container.NewVBox(
		widget.NewLabelWithStyle("Task", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		taskEntry,
		countdown,
		controls,
		container.NewHBox(layout.NewSpacer(), popover.quitBtn),
	)

	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.SetFixedSize(true)
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return popover
}

// Show displays the panel.
func (popover *Window) Show() {
	popover.window.Show()
	popover.window.RequestFocus()
}

// Hide hides the panel without quitting.
func (popover *Window) Hide() {
	popover.window.Hide()
}

// Window returns the underlying fyne window.
func (popover *Window) Window() fyne.Window {
	return popover.window
}

// Render applies a timer snapshot to the countdown and controls. The task entry
// is the only writer of the task name, so it is left alone; queued snapshots
// may carry an older name than the one being typed.
func (popover *Window) Render(snapshot timer.Snapshot) {
	popover.countdown.Text = snapshot.Display()
	popover.countdown.Color = countdownColor(snapshot.Running)
	popover.countdown.Refresh()

	if snapshot.Running {
		popover.toggleBtn.SetText("Pause")
		popover.toggleBtn.SetIcon(theme.MediaPauseIcon())
		popover.resetBtn.Disable()
	} else {
		popover.toggleBtn.SetText("Start")
		popover.toggleBtn.SetIcon(theme.MediaPlayIcon())
		popover.resetBtn.Enable()
	}
}

func countdownColor(running bool) color.Color {
	if running {
		return theme.Color(theme.ColorNamePrimary)
	}
	return theme.Color(theme.ColorNameForeground)
}
