package timer

import (
	"sync"
	"time"
)

// Cancel stops a periodic task. Stop may be called more than once.
type Cancel interface {
	Stop()
}

// Scheduler runs a callback periodically until it is cancelled.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Cancel
}

// TickerScheduler fires callbacks from a time.Ticker and hands each fire to a
// dispatch function, typically one that runs it on the UI thread.
type TickerScheduler struct {
	dispatch func(func())
}

// NewTickerScheduler creates a scheduler. A nil dispatch runs callbacks on the
// ticker goroutine.
func NewTickerScheduler(dispatch func(func())) *TickerScheduler {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &TickerScheduler{dispatch: dispatch}
}

type tickerTask struct {
	stopCh chan struct{}
	once   sync.Once
}

func (task *tickerTask) Stop() {
	task.once.Do(func() {
		close(task.stopCh)
	})
}

// Every starts a ticker goroutine for fn.
func (scheduler *TickerScheduler) Every(interval time.Duration, fn func()) Cancel {
	if interval <= 0 {
		interval = time.Second
	}
	task := &tickerTask{stopCh: make(chan struct{})}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-task.stopCh:
				return
			case <-ticker.C:
				select {
				case <-task.stopCh:
					return
				default:
				}
				scheduler.dispatch(fn)
			}
		}
	}()

	return task
}
