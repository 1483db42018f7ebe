/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"sync"
	"time"

	"github.com/wso2/gdpr-notice-generator/internal/system/log"
)

type CacheItem[V any] struct {
	Value      V
	Expiration time.Time
}

// Cache is a keyed store whose entries expire after a TTL. A zero TTL keeps entries forever.
type Cache[V any] struct {
	items map[string]CacheItem[V]
	mutex sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
}

// NewCache creates a new cache with a TTL (time-to-live)
func NewCache[V any](defaultTTL time.Duration) *Cache[V] {
	return &Cache[V]{
		items: make(map[string]CacheItem[V]),
		ttl:   defaultTTL,
		now:   time.Now,
	}
}

// WithClock replaces the time source, used by tests to move past expiry.
func (c *Cache[V]) WithClock(now func() time.Time) *Cache[V] {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.now = now
	return c
}

// Set adds an item to the cache
func (c *Cache[V]) Set(key string, value V) {
	log.GetLogger().Debug("Setting cache entry", log.String("key", key))
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[key] = CacheItem[V]{
		Value:      value,
		Expiration: c.expiryFrom(c.now()),
	}
}

// Get retrieves an item from the cache
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, found := c.items[key]
	if !found {
		log.GetLogger().Debug("Cache entry not found", log.String("key", key))
		return zero, false
	}
	if c.expired(item) {
		log.GetLogger().Debug("Cache entry expired", log.String("key", key))
		return zero, false
	}
	return item.Value, true
}

// Delete removes an item from the cache
func (c *Cache[V]) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.items, key)
}

// PurgeExpired drops expired entries and returns how many were removed.
func (c *Cache[V]) PurgeExpired() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	removed := 0
	for key, item := range c.items {
		if c.expired(item) {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

// Keys returns the keys of all live entries in no particular order.
func (c *Cache[V]) Keys() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	keys := make([]string, 0, len(c.items))
	for key, item := range c.items {
		if !c.expired(item) {
			keys = append(keys, key)
		}
	}
	return keys
}

func (c *Cache[V]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items)
}

func (c *Cache[V]) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

func (c *Cache[V]) expired(item CacheItem[V]) bool {
	return !item.Expiration.IsZero() && c.now().After(item.Expiration)
}
