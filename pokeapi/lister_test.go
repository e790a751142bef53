// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pokeapi_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/pokeapi"
)

type slowFetcher struct {
	calls   int32
	release chan struct{}
	body    []byte
	err     error
}

func (f *slowFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	atomic.AddInt32(&f.calls, 1)
	if nil != f.release {
		<-f.release
	}
	return f.body, f.err
}

const listBody = `{
  "count": 1118,
  "next": "https://pokeapi.co/api/v2/pokemon?offset=2&limit=2",
  "previous": null,
  "results": [
    {"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"},
    {"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon/2/"}
  ]
}`

func TestListerList(t *testing.T) {
	f := &slowFetcher{body: []byte(listBody)}
	l := pokeapi.NewLister(pokeapi.NewEndpoints(""), f, logger.New("testing"))

	page, err := l.List(context.Background(), 2, 0)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 1118, page.Count, "wrong count")
	assert.Nil(t, page.Previous, "previous should be absent")
	assert.NotNil(t, page.Next, "next should be present")
	assert.Equal(t, []string{"bulbasaur", "ivysaur"}, page.Names(), "wrong names")
}

func TestListerSharesConcurrentCalls(t *testing.T) {
	f := &slowFetcher{
		body:    []byte(listBody),
		release: make(chan struct{}),
	}
	l := pokeapi.NewLister(pokeapi.NewEndpoints(""), f, logger.New("testing"))

	const n = 5
	var wg sync.WaitGroup
	pages := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			page, err := l.List(context.Background(), 2, 0)
			if nil == err {
				pages[i] = len(page.Results)
			}
		}(i)
	}

	// let every caller join the call in progress
	time.Sleep(100 * time.Millisecond)
	close(f.release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&f.calls), "listing not shared")
	for i, count := range pages {
		assert.Equal(t, 2, count, "%d: wrong result count", i)
	}

	// completed calls are not cached
	_, err := l.List(context.Background(), 2, 0)
	assert.Nil(t, err, "list error")
	assert.Equal(t, int32(2), atomic.LoadInt32(&f.calls), "listing was cached")
}

func TestListerFailure(t *testing.T) {
	expected := errors.New("offline")
	f := &slowFetcher{err: expected}
	l := pokeapi.NewLister(pokeapi.NewEndpoints(""), f, logger.New("testing"))

	page, err := l.Types(context.Background())
	assert.Equal(t, expected, err, "wrong error")
	assert.Nil(t, page, "page returned on failure")
}

func TestListerBadJSON(t *testing.T) {
	f := &slowFetcher{body: []byte("<html>")}
	l := pokeapi.NewLister(pokeapi.NewEndpoints(""), f, logger.New("testing"))

	_, err := l.List(context.Background(), 20, 0)
	assert.NotNil(t, err, "expected decode error")
}
