package cache

import (
	"time"

	"github.com/elastic/go-freelru"
	"github.com/zeebo/xxh3"
)

const defaultSize = 2048

type CacheConfig struct {
	Name     string
	Size     uint32
	Lifetime time.Duration
}

func hashString(key string) uint32 {
	return uint32(xxh3.HashString(key))
}

// LRUCache is a bounded string-keyed cache with per-entry lifetime.
type LRUCache[V any] struct {
	name string
	lru  *freelru.SyncedLRU[string, V]
}

func NewLRUCache[V any](conf *CacheConfig) *LRUCache[V] {
	size := conf.Size
	if size == 0 {
		size = defaultSize
	}
	lru, err := freelru.NewSynced[string, V](size, hashString)
	if err != nil {
		panic(err)
	}
	if conf.Lifetime > 0 {
		lru.SetLifetime(conf.Lifetime)
	}
	return &LRUCache[V]{name: conf.Name, lru: lru}
}

func (c *LRUCache[V]) Get(key string, value *V) bool {
	v, ok := c.lru.Get(key)
	if ok {
		*value = v
	}
	return ok
}

func (c *LRUCache[V]) Add(key string, value V) error {
	c.lru.Add(key, value)
	return nil
}

func (c *LRUCache[V]) Remove(key string) {
	c.lru.Remove(key)
}
