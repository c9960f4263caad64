package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowAdmitsUpToMax(t *testing.T) {
	l := NewFixedWindow(time.Minute, 3, 10)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Admit("1.2.3.4"), "request %d should be admitted", i+1)
	}
	assert.False(t, l.Admit("1.2.3.4"), "request beyond max should be rejected")
	assert.False(t, l.Admit("1.2.3.4"), "rejections repeat until the window resets")
}

func TestFixedWindowIsolatesIdentities(t *testing.T) {
	l := NewFixedWindow(time.Minute, 1, 10)

	assert.True(t, l.Admit("a"))
	assert.False(t, l.Admit("a"))
	assert.True(t, l.Admit("b"), "a saturated window must not affect other callers")
}

func TestFixedWindowRestartsAfterElapse(t *testing.T) {
	l := NewFixedWindow(20*time.Millisecond, 1, 10)

	assert.True(t, l.Admit("a"))
	assert.False(t, l.Admit("a"))

	time.Sleep(30 * time.Millisecond)

	assert.True(t, l.Admit("a"), "elapsed window should start fresh")
}

func TestFixedWindowRejectionHasNoSideEffect(t *testing.T) {
	l := NewFixedWindow(30*time.Millisecond, 1, 100)

	assert.True(t, l.Admit("a"))
	// Rejected requests must not extend or restart the window.
	for i := 0; i < 5; i++ {
		assert.False(t, l.Admit("a"))
	}

	time.Sleep(40 * time.Millisecond)
	assert.True(t, l.Admit("a"))
}

func TestFixedWindowSweepPurgesElapsedWindows(t *testing.T) {
	l := NewFixedWindow(10*time.Millisecond, 5, 3)

	for i := 0; i < 20; i++ {
		l.Admit(fmt.Sprintf("caller-%d", i))
	}
	time.Sleep(20 * time.Millisecond)

	// These admissions cross the sweep threshold and purge the dead windows.
	for i := 0; i < 3; i++ {
		l.Admit("fresh")
	}
	assert.LessOrEqual(t, l.windows.ItemCount(), 2)
}

func TestFixedWindowReset(t *testing.T) {
	l := NewFixedWindow(time.Minute, 1, 10)

	assert.True(t, l.Admit("a"))
	assert.False(t, l.Admit("a"))

	l.Reset()

	assert.True(t, l.Admit("a"))
}
