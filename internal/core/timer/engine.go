package timer

import (
	"sync"
	"time"

	"pomobar/internal/core/model"
)

// Engine owns the countdown state and enforces the start/pause/reset state machine.
type Engine struct {
	mu        sync.Mutex
	config    model.TimerConfig
	scheduler Scheduler
	duration  int
	taskName  string
	remaining int
	running   bool
	session   uint64
	cancel    Cancel
	events    []chan Event
	closed    bool
}

// New creates an idle Engine with a full countdown.
func New(config model.TimerConfig, scheduler Scheduler) *Engine {
	defaults := model.DefaultTimerConfig()
	if config.Duration <= 0 {
		config.Duration = defaults.Duration
	}
	if config.TickInterval <= 0 {
		config.TickInterval = defaults.TickInterval
	}
	if scheduler == nil {
		scheduler = NewTickerScheduler(nil)
	}

	duration := config.DurationSeconds()
	return &Engine{
		config:    config,
		scheduler: scheduler,
		duration:  duration,
		remaining: duration,
	}
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Snapshot returns the current state.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

// Duration returns the full countdown length in seconds.
func (engine *Engine) Duration() int {
	return engine.duration
}

// Start begins ticking. Starting a running countdown does nothing.
func (engine *Engine) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.startLocked()
}

// Pause stops ticking. Pausing an idle countdown does nothing.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.pauseLocked()
}

// Toggle pauses a running countdown and starts an idle one.
func (engine *Engine) Toggle() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running {
		engine.pauseLocked()
		return
	}
	engine.startLocked()
}

// Reset pauses and restores the full countdown.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.pauseLocked()
	if engine.remaining == engine.duration {
		return
	}
	engine.remaining = engine.duration
	engine.emitLocked(EventProgress, "")
}

// SetTaskName replaces the task name. It never affects the countdown.
func (engine *Engine) SetTaskName(name string) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.taskName == name {
		return
	}
	engine.taskName = name
	engine.emitLocked(EventTaskName, "")
}

// Close cancels the tick source and closes observers.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.stopTickerLocked()
	engine.running = false
	engine.closed = true
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) startLocked() {
	if engine.running || engine.closed {
		return
	}
	engine.running = true
	engine.session++
	session := engine.session
	engine.cancel = engine.scheduler.Every(engine.config.TickInterval, func() {
		engine.tick(session)
	})
	engine.emitLocked(EventStateChange, "")
}

func (engine *Engine) pauseLocked() {
	if !engine.running {
		return
	}
	engine.running = false
	engine.stopTickerLocked()
	engine.emitLocked(EventStateChange, "")
}

func (engine *Engine) stopTickerLocked() {
	// Bumping the session invalidates a fire that was already queued.
	engine.session++
	if engine.cancel != nil {
		engine.cancel.Stop()
		engine.cancel = nil
	}
}

func (engine *Engine) tick(session uint64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.running || session != engine.session {
		return
	}

	if engine.remaining > 0 {
		engine.remaining--
		engine.emitLocked(EventProgress, "")
		return
	}

	// Observers see 00:00 with the completion, the full countdown after it.
	engine.pauseLocked()
	engine.emitLocked(EventComplete, CompletionMessage(engine.taskName))
	engine.remaining = engine.duration
	engine.emitLocked(EventProgress, "")
}

func (engine *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		TaskName:  engine.taskName,
		Remaining: engine.remaining,
		Running:   engine.running,
	}
}

func (engine *Engine) emitLocked(eventType EventType, message string) {
	event := Event{
		Type:     eventType,
		Snapshot: engine.snapshotLocked(),
		Message:  message,
		At:       time.Now(),
	}
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
