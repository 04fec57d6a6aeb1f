package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromName_IsStableAndInRange(t *testing.T) {
	port := portFromName("Pomobar")

	assert.Equal(t, port, portFromName("Pomobar"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}

func TestAcquireSingleInstance_SecondAcquireFails(t *testing.T) {
	name := "pomobar-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.NotEmpty(t, again.Address())
	require.NoError(t, again.Release())
}

func TestInstanceGuard_NilIsSafe(t *testing.T) {
	var guard *InstanceGuard

	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}

func TestServe_ActivatesOnKnock(t *testing.T) {
	name := "pomobar-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	defer guard.Release()

	activated := make(chan struct{}, 1)
	guard.Serve(func() {
		activated <- struct{}{}
	})

	require.NoError(t, ActivateRunning(name))
	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestActivateRunning_NoInstance(t *testing.T) {
	name := "pomobar-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	require.NoError(t, guard.Release())

	assert.Error(t, ActivateRunning(name))
}
