package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerScheduler_FiresThroughDispatch(t *testing.T) {
	var dispatched, fired atomic.Int32
	scheduler := NewTickerScheduler(func(fn func()) {
		dispatched.Add(1)
		fn()
	})

	cancel := scheduler.Every(5*time.Millisecond, func() {
		fired.Add(1)
	})
	defer cancel.Stop()

	require.Eventually(t, func() bool {
		return fired.Load() >= 3
	}, time.Second, time.Millisecond)
	assert.Equal(t, dispatched.Load(), fired.Load())
}

func TestTickerScheduler_StopHaltsFiring(t *testing.T) {
	var fired atomic.Int32
	scheduler := NewTickerScheduler(nil)

	cancel := scheduler.Every(2*time.Millisecond, func() {
		fired.Add(1)
	})
	require.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, time.Second, time.Millisecond)

	cancel.Stop()
	cancel.Stop()
	time.Sleep(10 * time.Millisecond)
	stopped := fired.Load()
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, stopped, fired.Load())
}

func TestEngine_WithTickerScheduler(t *testing.T) {
	engine := New(testConfig(3*time.Second, 2*time.Millisecond), NewTickerScheduler(nil))
	events := engine.Subscribe(64)
	defer engine.Close()

	engine.Start()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case event := <-events:
			if event.Type != EventComplete {
				continue
			}
			assert.Equal(t, 0, event.Snapshot.Remaining)
			require.Eventually(t, func() bool {
				snapshot := engine.Snapshot()
				return !snapshot.Running && snapshot.Remaining == 3
			}, time.Second, time.Millisecond)
			return
		case <-timeout:
			t.Fatal("countdown did not complete")
		}
	}
}
