package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/prestige/internal/domain"
)

type cachedProgress struct {
	Version  string
	Progress *domain.Progress
	CachedAt time.Time
}

// progressCache keeps recently used progress records so reads skip the store.
// Entries are deep copies; callers clone before mutating.
type progressCache struct {
	lru *expirable.LRU[string, *cachedProgress]
}

func newProgressCache(size int, ttl time.Duration) *progressCache {
	return &progressCache{
		lru: expirable.NewLRU[string, *cachedProgress](size, nil, ttl),
	}
}

func (c *progressCache) Get(playerID string) (*domain.Progress, bool) {
	entry, found := c.lru.Get(playerID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		return nil, false
	}
	return entry.Progress.Clone(), true
}

func (c *progressCache) Set(p *domain.Progress) {
	c.lru.Add(p.PlayerID, &cachedProgress{
		Version:  CacheSchemaVersion,
		Progress: p.Clone(),
		CachedAt: time.Now(),
	})
}

func (c *progressCache) Invalidate(playerID string) {
	c.lru.Remove(playerID)
}

func (c *progressCache) Len() int {
	return c.lru.Len()
}
