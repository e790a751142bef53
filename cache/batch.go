// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
)

// called when the batch window closes; a window that has already
// closed is ignored
func (c *Cache) fire(window uint64) {
	c.Lock()
	if window != c.window {
		c.Unlock()
		return
	}
	c.window++
	c.timer = nil
	if c.disposed || 0 == len(c.pending) {
		c.Unlock()
		return
	}

	batch := c.pending
	c.pending = make(map[string]*pendingEntry)
	c.inFlight.Add(len(batch))
	c.Unlock()

	c.stats.batches.Increment()
	c.stats.fetches.Add(uint64(len(batch)))
	c.log.Debugf("batching %d requests", len(batch))

	for key, entry := range batch {
		go c.resolve(key, entry)
	}
}

// fetch one URL and hand the outcome to all of its waiters
func (c *Cache) resolve(key string, entry *pendingEntry) {
	defer c.inFlight.Done()

	ctx := context.Background()
	if c.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.fetchTimeout)
		defer cancel()
	}

	body, err := c.fetcher.Fetch(ctx, entry.url)
	if nil != err {
		c.stats.failures.Increment()
		c.log.Warnf("fetch: %q  error: %s", entry.url, err)
		deliver(entry, result{err: err})
		return
	}

	c.entries.Set(key, body, gocache.NoExpiration)
	deliver(entry, result{body: body})
}

// each waiter channel has room for exactly one result
func deliver(entry *pendingEntry, r result) {
	for _, w := range entry.waiters {
		w <- r
	}
}
