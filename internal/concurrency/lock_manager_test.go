package concurrency

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()
	assert.Same(t, lm.GetLock("p1"), lm.GetLock("p1"))
	assert.NotSame(t, lm.GetLock("p1"), lm.GetLock("p2"))
}

func TestWithLock_Serializes(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.WithLock("p1", func() error {
				v := counter
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestWithLock_ReturnsError(t *testing.T) {
	lm := NewLockManager()
	boom := errors.New("boom")
	assert.ErrorIs(t, lm.WithLock("p1", func() error { return boom }), boom)

	// released after an error
	assert.True(t, lm.GetLock("p1").TryLock())
}

func TestWithLock_ExclusiveAcrossWaiters(t *testing.T) {
	lm := NewLockManager()
	held := make(chan struct{})
	release := make(chan struct{})
	var active, peak int32

	enter := func() {
		n := atomic.AddInt32(&active, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = lm.WithLock("p", func() error {
			enter()
			close(held)
			<-release
			atomic.AddInt32(&active, -1)
			return nil
		})
	}()
	<-held

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.WithLock("p", func() error {
				enter()
				atomic.AddInt32(&active, -1)
				return nil
			})
		}()
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&peak))
}
