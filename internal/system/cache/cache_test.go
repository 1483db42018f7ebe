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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGetDelete(t *testing.T) {
	c := NewCache[string](time.Minute)
	c.Set("a", "alpha")

	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "alpha", got)

	c.Set("b", "beta")
	assert.ElementsMatch(t, []string{"a", "b"}, c.Keys())

	c.Delete("a")
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	c := NewCache[int](10 * time.Minute).WithClock(func() time.Time { return now })
	c.Set("k", 7)

	now = now.Add(9 * time.Minute)
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 1, c.PurgeExpired())
	assert.Equal(t, 0, c.Len())
}

func TestCache_ZeroTTLNeverExpires(t *testing.T) {
	now := time.Now()
	c := NewCache[string](0).WithClock(func() time.Time { return now })
	c.Set("k", "v")
	now = now.Add(1000 * time.Hour)

	_, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 0, c.PurgeExpired())
}
