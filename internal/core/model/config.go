package model

import "time"

const (
	// DefaultDuration is the length of one Pomodoro countdown.
	DefaultDuration = 25 * time.Minute
	// DefaultTickInterval is the wall-clock period between two ticks.
	DefaultTickInterval = time.Second
)

// TimerConfig contains runtime settings for the timer engine.
type TimerConfig struct {
	Duration     time.Duration
	TickInterval time.Duration
}

// DefaultTimerConfig returns the single supported countdown configuration.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Duration:     DefaultDuration,
		TickInterval: DefaultTickInterval,
	}
}

// DurationSeconds returns the countdown length in whole seconds.
func (config TimerConfig) DurationSeconds() int {
	seconds := int(config.Duration / time.Second)
	if seconds < 0 {
		return 0
	}
	return seconds
}
