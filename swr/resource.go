// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package swr

import (
	"context"
	"sync"
	"time"
)

// DefaultDedupingInterval - used when Options.DedupingInterval is zero
const DefaultDedupingInterval = 2 * time.Second

// Func - the wrapped operation
type Func func(ctx context.Context) (interface{}, error)

// Listener - receives every state change
type Listener func(State)

// Options - behaviour of a resource
type Options struct {
	// revalidations closer than this to the previous request are dropped
	DedupingInterval time.Duration
	InitialData      interface{}
	OnSuccess        func(data interface{})
	OnError          func(err error)

	// clock, nil for time.Now
	Now func() time.Time
}

// State - snapshot of a resource
type State struct {
	Data         interface{} `json:"data"`
	IsLoading    bool        `json:"isLoading"`
	IsError      bool        `json:"isError"`
	Err          error       `json:"-"`
	IsValidating bool        `json:"isValidating"`
	IsStale      bool        `json:"isStale"`
}

// Resource - one wrapped operation and its state
type Resource struct {
	sync.Mutex

	fetch    Func
	interval time.Duration
	now      func() time.Time

	onSuccess func(interface{})
	onError   func(error)

	state       State
	lastRequest time.Time
	listeners   map[int]Listener
	nextID      int
	closed      bool
}

// New - create a resource; it starts in the loading state and nothing
// is fetched until Execute
func New(fetch Func, options Options) *Resource {
	interval := options.DedupingInterval
	if 0 == interval {
		interval = DefaultDedupingInterval
	}
	now := options.Now
	if nil == now {
		now = time.Now
	}

	return &Resource{
		fetch:     fetch,
		interval:  interval,
		now:       now,
		onSuccess: options.OnSuccess,
		onError:   options.OnError,
		state: State{
			Data:      options.InitialData,
			IsLoading: true,
		},
		listeners: make(map[int]Listener),
	}
}

// Execute - full load
func (r *Resource) Execute(ctx context.Context) error {
	return r.execute(ctx, false)
}

// Retry - same as Execute, used after an error
func (r *Resource) Retry(ctx context.Context) error {
	return r.execute(ctx, false)
}

// Revalidate - refresh keeping the current data visible
//
// the deduping interval is measured from the start of the previous
// request, not its completion, so a revalidation arriving while a slow
// request is still running is dropped
func (r *Resource) Revalidate(ctx context.Context) error {
	return r.execute(ctx, true)
}

// State - current snapshot
func (r *Resource) State() State {
	r.Lock()
	defer r.Unlock()
	return r.state
}

// Subscribe - call l on every change until the returned function is
// called
func (r *Resource) Subscribe(l Listener) func() {
	r.Lock()
	defer r.Unlock()

	id := r.nextID
	r.nextID++
	r.listeners[id] = l

	return func() {
		r.Lock()
		delete(r.listeners, id)
		r.Unlock()
	}
}

// Close - stop all state changes and callbacks, a fetch in progress
// still runs to completion but its outcome is discarded
func (r *Resource) Close() {
	r.Lock()
	r.closed = true
	r.listeners = make(map[int]Listener)
	r.Unlock()
}

func (r *Resource) execute(ctx context.Context, isRevalidation bool) error {
	now := r.now()

	r.Lock()
	if r.closed {
		r.Unlock()
		return nil
	}
	if isRevalidation && now.Sub(r.lastRequest) < r.interval {
		r.Unlock()
		return nil
	}
	r.lastRequest = now

	if isRevalidation && nil != r.state.Data {
		r.state.IsValidating = true
		r.state.IsStale = true
	} else {
		r.state.IsLoading = true
		r.state.IsError = false
		r.state.Err = nil
	}
	r.publish()

	data, err := r.fetch(ctx)

	r.Lock()
	if r.closed {
		r.Unlock()
		return err
	}
	if nil != err {
		r.state.IsLoading = false
		r.state.IsError = true
		r.state.Err = err
		r.state.IsValidating = false
	} else {
		r.state = State{Data: data}
	}
	r.publish()

	if nil != err {
		if nil != r.onError {
			r.onError(err)
		}
		return err
	}
	if nil != r.onSuccess {
		r.onSuccess(data)
	}
	return nil
}

// called with the lock held, releases it before notifying
func (r *Resource) publish() {
	snapshot := r.state
	listeners := make([]Listener, 0, len(r.listeners))
	for _, l := range r.listeners {
		listeners = append(listeners, l)
	}
	r.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}
