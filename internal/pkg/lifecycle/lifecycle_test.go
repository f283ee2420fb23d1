package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitions(t *testing.T) {
	l := New()
	assert.Equal(t, StateNew, l.State())

	var suspended, resumed, stopped int
	l.OnSuspend(func() { suspended++ })
	l.OnResume(func() { resumed++ })
	l.OnStop(func() { stopped++ })

	// Suspend before Start is a no-op.
	l.Suspend()
	assert.Equal(t, StateNew, l.State())
	assert.Equal(t, 0, suspended)

	l.Start()
	l.Suspend()
	l.Resume()
	assert.Equal(t, StateRunning, l.State())
	assert.Equal(t, 1, suspended)
	assert.Equal(t, 1, resumed)

	l.Stop()
	l.Stop()
	assert.Equal(t, StateStopped, l.State())
	assert.Equal(t, 1, stopped)
}

func TestDisposeRunsHooksExactlyOnce(t *testing.T) {
	l := New()
	var disposed int
	l.OnDispose(func() { disposed++ })

	l.Start()
	l.Dispose()
	l.Dispose()

	assert.True(t, l.IsDisposed())
	assert.Equal(t, 1, disposed)

	// A disposed session cannot be restarted.
	l.Start()
	assert.Equal(t, StateDisposed, l.State())
}
