// Package leaktest checks that background workers exit when their owner stops.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const settleInterval = 10 * time.Millisecond

// Goroutines records the goroutine count at construction.
type Goroutines struct {
	t      testing.TB
	before int
}

// Snapshot counts goroutines after letting already-exiting ones finish.
func Snapshot(t testing.TB) *Goroutines {
	t.Helper()
	runtime.Gosched()
	time.Sleep(settleInterval)
	return &Goroutines{t: t, before: runtime.NumGoroutine()}
}

// Settled fails the test unless the count drops back to within tolerance of
// the snapshot before timeout.
func (g *Goroutines) Settled(tolerance int, timeout time.Duration) {
	g.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		now := runtime.NumGoroutine()
		if now-g.before <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d", g.before, now, tolerance)
			return
		}
		time.Sleep(settleInterval)
	}
}

// Check runs fn and requires every goroutine it started to have exited.
func Check(t testing.TB, timeout time.Duration, fn func()) {
	t.Helper()
	g := Snapshot(t)
	fn()
	g.Settled(0, timeout)
}
