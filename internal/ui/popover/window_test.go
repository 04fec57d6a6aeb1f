package popover

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"pomobar/internal/core/model"
	"pomobar/internal/core/timer"
)

type fakeController struct {
	calls []string
	names []string
}

func (controller *fakeController) Toggle() {
	controller.calls = append(controller.calls, "toggle")
}

func (controller *fakeController) Reset() {
	controller.calls = append(controller.calls, "reset")
}

func (controller *fakeController) SetTaskName(name string) {
	controller.names = append(controller.names, name)
}

func TestRender_Running(t *testing.T) {
	app := test.NewTempApp(t)
	popover := New(app, &fakeController{}, nil)

	popover.Render(timer.Snapshot{Remaining: 65, Running: true})

	assert.Equal(t, "01:05", popover.countdown.Text)
	assert.Equal(t, "Pause", popover.toggleBtn.Text)
	assert.True(t, popover.resetBtn.Disabled())
}

func TestNew_CountdownUsesPlainMonospace(t *testing.T) {
	app := test.NewTempApp(t)
	popover := New(app, &fakeController{}, nil)

	// The test theme ships no bold monospace face.
	assert.Equal(t, fyne.TextStyle{Monospace: true}, popover.countdown.TextStyle)
}

func TestRender_Idle(t *testing.T) {
	app := test.NewTempApp(t)
	popover := New(app, &fakeController{}, nil)

	popover.Render(timer.Snapshot{Remaining: 1500, Running: true})
	popover.Render(timer.Snapshot{Remaining: 1500})

	assert.Equal(t, "25:00", popover.countdown.Text)
	assert.Equal(t, "Start", popover.toggleBtn.Text)
	assert.False(t, popover.resetBtn.Disabled())
}

func TestRender_LeavesTaskEntryAlone(t *testing.T) {
	app := test.NewTempApp(t)
	popover := New(app, &fakeController{}, nil)
	popover.taskEntry.SetText("Write report")

	popover.Render(timer.Snapshot{TaskName: "Write", Remaining: 10})

	assert.Equal(t, "Write report", popover.taskEntry.Text)
}

func TestButtons_ForwardIntents(t *testing.T) {
	app := test.NewTempApp(t)
	controller := &fakeController{}
	quit := 0
	popover := New(app, controller, func() { quit++ })

	test.Tap(popover.toggleBtn)
	test.Tap(popover.resetBtn)
	test.Tap(popover.quitBtn)

	assert.Equal(t, []string{"toggle", "reset"}, controller.calls)
	assert.Equal(t, 1, quit)
}

func TestTaskEntry_ForwardsEdits(t *testing.T) {
	app := test.NewTempApp(t)
	controller := &fakeController{}
	popover := New(app, controller, nil)

	test.Type(popover.taskEntry, "Hi")

	assert.Equal(t, []string{"H", "Hi"}, controller.names)
}

func TestEngineRoundTrip(t *testing.T) {
	app := test.NewTempApp(t)
	engine := timer.New(model.TimerConfig{TickInterval: time.Hour}, timer.NewTickerScheduler(nil))
	defer engine.Close()
	popover := New(app, engine, nil)

	test.Tap(popover.toggleBtn)
	popover.Render(engine.Snapshot())
	assert.Equal(t, "Pause", popover.toggleBtn.Text)

	test.Tap(popover.toggleBtn)
	popover.Render(engine.Snapshot())
	assert.Equal(t, "Start", popover.toggleBtn.Text)
	assert.False(t, engine.Snapshot().Running)
}
