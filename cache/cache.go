// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/counter"
	"github.com/bitmark-inc/pokedex/fault"
)

// DefaultBatchDelay - window used when Options.BatchDelay is zero
const DefaultBatchDelay = 50 * time.Millisecond

// Fetcher - the network side of the cache
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Options - tuning for a cache instance
type Options struct {
	BatchDelay time.Duration

	// maps a URL to its cache key, nil is exact match
	Identity func(string) string

	// bound on each fetch, zero for none
	FetchTimeout time.Duration
}

type result struct {
	body []byte
	err  error
}

type pendingEntry struct {
	url     string
	waiters []chan result
}

type statistics struct {
	hits     counter.Counter
	misses   counter.Counter
	batches  counter.Counter
	fetches  counter.Counter
	failures counter.Counter
}

// Statistics - snapshot of the cache counters
type Statistics struct {
	Hits     uint64 `json:"hits"`
	Misses   uint64 `json:"misses"`
	Batches  uint64 `json:"batches"`
	Fetches  uint64 `json:"fetches"`
	Failures uint64 `json:"failures"`
}

// Cache - batching cache instance
type Cache struct {
	sync.Mutex

	log          *logger.L
	fetcher      Fetcher
	delay        time.Duration
	identity     func(string) string
	fetchTimeout time.Duration

	entries  *gocache.Cache
	pending  map[string]*pendingEntry
	timer    *time.Timer
	window   uint64 // current batch window, a callback of an older one does nothing
	inFlight sync.WaitGroup
	disposed bool

	stats statistics
}

func exact(url string) string {
	return url
}

// New - create a cache over a fetcher
func New(fetcher Fetcher, options Options, log *logger.L) *Cache {
	delay := options.BatchDelay
	if delay <= 0 {
		delay = DefaultBatchDelay
	}
	identity := options.Identity
	if nil == identity {
		identity = exact
	}

	return &Cache{
		log:          log,
		fetcher:      fetcher,
		delay:        delay,
		identity:     identity,
		fetchTimeout: options.FetchTimeout,
		entries:      gocache.New(gocache.NoExpiration, 0),
		pending:      make(map[string]*pendingEntry),
	}
}

// Request - body of url, from the cache if present, otherwise from the
// next batch
//
// cancelling ctx only abandons the wait, the fetch still completes and
// its result is cached
func (c *Cache) Request(ctx context.Context, url string) ([]byte, error) {
	key := c.identity(url)

	c.Lock()
	if c.disposed {
		c.Unlock()
		return nil, fault.CacheDisposed
	}

	if body, found := c.entries.Get(key); found {
		c.Unlock()
		c.stats.hits.Increment()
		return body.([]byte), nil
	}
	c.stats.misses.Increment()

	w := make(chan result, 1)
	entry, ok := c.pending[key]
	if !ok {
		entry = &pendingEntry{url: url}
		c.pending[key] = entry
	}
	entry.waiters = append(entry.waiters, w)

	if nil == c.timer {
		window := c.window
		c.timer = time.AfterFunc(c.delay, func() {
			c.fire(window)
		})
	}
	c.Unlock()

	select {
	case r := <-w:
		return r.body, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Fire - close the current batch window now
func (c *Cache) Fire() {
	c.Lock()
	if nil != c.timer {
		c.timer.Stop()
	}
	window := c.window
	c.Unlock()
	c.fire(window)
}

// Pending - number of callers waiting on the open batch
func (c *Cache) Pending() int {
	c.Lock()
	defer c.Unlock()

	n := 0
	for _, entry := range c.pending {
		n += len(entry.waiters)
	}
	return n
}

// Clear - drop every cached body, batches already open are not
// affected
func (c *Cache) Clear() {
	c.entries.Flush()
	c.log.Info("cleared")
}

// Len - number of cached bodies
func (c *Cache) Len() int {
	return c.entries.ItemCount()
}

// Stats - current counters
func (c *Cache) Stats() Statistics {
	return Statistics{
		Hits:     c.stats.hits.Uint64(),
		Misses:   c.stats.misses.Uint64(),
		Batches:  c.stats.batches.Uint64(),
		Fetches:  c.stats.fetches.Uint64(),
		Failures: c.stats.failures.Uint64(),
	}
}

// ResetStats - set all counters back to zero, returns the values
// before the reset
func (c *Cache) ResetStats() Statistics {
	return Statistics{
		Hits:     c.stats.hits.Reset(),
		Misses:   c.stats.misses.Reset(),
		Batches:  c.stats.batches.Reset(),
		Fetches:  c.stats.fetches.Reset(),
		Failures: c.stats.failures.Reset(),
	}
}

// Dispose - stop the batch timer, fail all waiting callers and reject
// further requests; returns once every fetch in progress has finished
func (c *Cache) Dispose() {
	c.Lock()
	if c.disposed {
		c.Unlock()
		c.inFlight.Wait()
		return
	}
	c.disposed = true
	if nil != c.timer {
		c.timer.Stop()
		c.timer = nil
	}
	batch := c.pending
	c.pending = make(map[string]*pendingEntry)
	c.Unlock()

	for _, entry := range batch {
		deliver(entry, result{err: fault.CacheDisposed})
	}

	c.inFlight.Wait()
	c.entries.Flush()
	c.log.Info("disposed")
}
