package leaktest

import (
	"sync"
	"testing"
	"time"
)

func TestCheck_WorkersJoined(t *testing.T) {
	Check(t, time.Second, func() {
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(time.Millisecond)
			}()
		}
		wg.Wait()
	})
}

func TestSettled_WaitsForExit(t *testing.T) {
	g := Snapshot(t)
	done := make(chan struct{})
	go func() { <-done }()

	time.AfterFunc(20*time.Millisecond, func() { close(done) })
	g.Settled(0, time.Second)
}

func TestSettled_Tolerance(t *testing.T) {
	g := Snapshot(t)
	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	g.Settled(1, 50*time.Millisecond)
}
