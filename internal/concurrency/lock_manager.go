// Package concurrency serializes work on one player's progress.
package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per player id. Mutexes are never removed,
// so every caller for an id contends on the same one for the life of the process.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for playerID, creating it on first use.
func (lm *LockManager) GetLock(playerID string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(playerID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding playerID's mutex.
func (lm *LockManager) WithLock(playerID string, fn func() error) error {
	mu := lm.GetLock(playerID)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
