package app

import (
	"encoding/json"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// Views never expire; they are only valid until the next mutation, which
// clears the whole cache.
const viewCacheExpire = 0

// ViewCache memoizes derived views (streak, month counts, calendars).
// It is cleared after every mutation. A nil *ViewCache is a valid no-op cache.
type ViewCache struct {
	cache *freecache.Cache
}

// NewViewCache creates a cache of sizeMB megabytes.
func NewViewCache(sizeMB int) *ViewCache {
	if sizeMB < 1 {
		sizeMB = 1
	}
	return &ViewCache{cache: freecache.NewCache(sizeMB * megabyte)}
}

// Get decodes the cached value for key into v.
func (c *ViewCache) Get(key string, v any) bool {
	if c == nil {
		return false
	}
	raw, err := c.cache.Get([]byte(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Errorf("failed to decode cached view %s: %s", key, err)
		return false
	}
	log.Tracef("view %s served from cache", key)
	return true
}

// Set stores v under key.
func (c *ViewCache) Set(key string, v any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to encode view %s: %s", key, err)
		return
	}
	if err := c.cache.Set([]byte(key), raw, viewCacheExpire); err != nil {
		log.Errorf("failed to cache view %s: %s", key, err)
	}
}

// Clear drops every cached view.
func (c *ViewCache) Clear() {
	if c == nil {
		return
	}
	c.cache.Clear()
}

// Len returns the number of cached views.
func (c *ViewCache) Len() int64 {
	if c == nil {
		return 0
	}
	return c.cache.EntryCount()
}
