package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/systray"

	"pomobar/internal/core/timer"
)

const menuTitle = "Pomobar"

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Indicator renders text next to the tray icon.
type Indicator interface {
	SetTitle(title string)
	SetTooltip(tooltip string)
}

// SystrayIndicator writes the title and tooltip through fyne.io/systray.
type SystrayIndicator struct{}

// SetTitle sets the text shown beside the tray icon.
func (SystrayIndicator) SetTitle(title string) {
	systray.SetTitle(title)
}

// SetTooltip sets the tray hover text.
func (SystrayIndicator) SetTooltip(tooltip string) {
	systray.SetTooltip(tooltip)
}

// Icons holds the tray icon variants.
type Icons struct {
	Idle    fyne.Resource
	Running fyne.Resource
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnOpen        func()
	OnToggle      func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         App
	indicator   Indicator
	icons       Icons
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	resetItem   *fyne.MenuItem
	running     bool
	display     string
	menu        *fyne.Menu
	menuRunning bool
	title       string
}

// New creates a tray manager with the provided callbacks.
func New(app App, indicator Indicator, icons Icons, callbacks Callbacks) *Manager {
	if indicator == nil {
		indicator = SystrayIndicator{}
	}
	manager := &Manager{
		app:       app,
		indicator: indicator,
		icons:     icons,
		callbacks: callbacks,
		display:   timer.FormatRemaining(0),
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})
	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	manager.refresh()
	return manager
}

// StatusTitle is the text the tray shows next to its icon: the countdown while
// running, nothing otherwise.
func StatusTitle(running bool, display string) string {
	if !running {
		return ""
	}
	return display
}

// Render applies a timer snapshot to the tray.
func (manager *Manager) Render(snapshot timer.Snapshot) {
	manager.SetState(snapshot.Running, snapshot.Display())
}

// SetState updates the tray from a (running, display) pair.
func (manager *Manager) SetState(running bool, display string) {
	manager.running = running
	manager.display = display
	manager.refresh()
}

// Title returns the text currently shown beside the tray icon.
func (manager *Manager) Title() string {
	return manager.title
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) refresh() {
	manager.title = StatusTitle(manager.running, manager.display)
	manager.indicator.SetTitle(manager.title)

	if manager.running {
		manager.statusItem.Label = fmt.Sprintf("Running: %s left", manager.display)
		manager.toggleItem.Label = "Pause"
		manager.indicator.SetTooltip(fmt.Sprintf("%s - %s left", menuTitle, manager.display))
	} else {
		manager.statusItem.Label = fmt.Sprintf("Paused at %s", manager.display)
		manager.toggleItem.Label = "Start"
		manager.indicator.SetTooltip(menuTitle)
	}
	manager.resetItem.Disabled = manager.running

	// Rebuilding the tray menu resets it on some desktops, so only a change of
	// running state installs a new one. Ticks just relabel the existing items.
	if manager.menu != nil && manager.menuRunning == manager.running {
		manager.menu.Refresh()
		return
	}
	manager.menuRunning = manager.running
	manager.refreshIcon()
	manager.refreshMenu()
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	icon := manager.icons.Idle
	if manager.running && manager.icons.Running != nil {
		icon = manager.icons.Running
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) quitItem() *fyne.MenuItem {
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true
	return quit
}

func (manager *Manager) refreshMenu() {
	manager.menu = fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Open Pomobar", func() {
			if manager.callbacks.OnOpen != nil {
				manager.callbacks.OnOpen()
			}
		}),
		manager.toggleItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		manager.quitItem(),
	)
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}
