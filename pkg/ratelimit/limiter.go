package ratelimit

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Limiter is per-caller admission control. Admit reports whether the
// request may proceed; it never blocks and carries no retry hint beyond
// the boolean. Callers surface the retry-later response themselves.
type Limiter interface {
	Admit(identity string) bool
	Reset()
}

// FixedWindow counts requests per identity inside a fixed window. The
// first request from an identity starts its window; requests beyond max
// inside the active window are rejected without side effect; a request
// after the window elapsed starts a fresh one.
//
// Windows live in a go-cache with the janitor disabled. Expiry is the
// window reset time, so go-cache's lazy expiration handles window
// restarts, and every sweepEvery-th Admit purges elapsed windows to
// bound memory.
type FixedWindow struct {
	windows    *gocache.Cache
	window     time.Duration
	max        int
	sweepEvery int64
	admits     atomic.Int64
}

func NewFixedWindow(window time.Duration, max int, sweepEvery int) *FixedWindow {
	if sweepEvery <= 0 {
		sweepEvery = 10
	}
	return &FixedWindow{
		windows:    gocache.New(window, 0), // no background janitor, swept explicitly
		window:     window,
		max:        max,
		sweepEvery: int64(sweepEvery),
	}
}

func (l *FixedWindow) Admit(identity string) bool {
	if n := l.admits.Add(1); n%l.sweepEvery == 0 {
		l.windows.DeleteExpired()
	}

	v, found := l.windows.Get(identity)
	if !found {
		l.windows.Set(identity, 1, gocache.DefaultExpiration)
		return true
	}

	if v.(int) >= l.max {
		return false
	}

	// Increment preserves the entry's original expiry, keeping the
	// window anchored to its first request.
	if err := l.windows.Increment(identity, 1); err != nil {
		// Entry expired between Get and Increment; start a fresh window.
		l.windows.Set(identity, 1, gocache.DefaultExpiration)
	}
	return true
}

// Reset drops all windows. For tests.
func (l *FixedWindow) Reset() {
	l.windows.Flush()
}
