// Package notify delivers completion events to the desktop. Delivery failures
// are logged and never reach the timer engine.
package notify

import (
	"log"
	"sync"

	"fyne.io/fyne/v2"

	"pomobar/internal/core/timer"
)

const notificationTitle = "Pomobar"

// Sender shows a desktop notification.
type Sender interface {
	SendNotification(notification *fyne.Notification)
}

// Chime plays an audible cue.
type Chime interface {
	Play() error
}

// Options toggles each delivery channel.
type Options struct {
	Notifications bool
	Chime         bool
}

// Dispatcher reacts to completion events.
type Dispatcher struct {
	mu      sync.Mutex
	sender  Sender
	chime   Chime
	options Options
	logf    func(format string, args ...any)
}

// New creates a Dispatcher. Either collaborator may be nil.
func New(sender Sender, chime Chime, options Options) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		chime:   chime,
		options: options,
		logf:    log.Printf,
	}
}

// SetOptions replaces the delivery options.
func (dispatcher *Dispatcher) SetOptions(options Options) {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	dispatcher.options = options
}

// Handle delivers a completion event. Other event types are ignored.
func (dispatcher *Dispatcher) Handle(event timer.Event) {
	if event.Type != timer.EventComplete {
		return
	}

	dispatcher.mu.Lock()
	options := dispatcher.options
	dispatcher.mu.Unlock()

	message := event.Message
	if message == "" {
		message = timer.CompletionMessage(event.Snapshot.TaskName)
	}

	if options.Notifications && dispatcher.sender != nil {
		dispatcher.send(message)
	}
	if options.Chime && dispatcher.chime != nil {
		if err := dispatcher.chime.Play(); err != nil {
			dispatcher.logf("completion chime: %v", err)
		}
	}
}

func (dispatcher *Dispatcher) send(message string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			dispatcher.logf("completion notification: %v", recovered)
		}
	}()
	dispatcher.sender.SendNotification(fyne.NewNotification(notificationTitle, message))
}
