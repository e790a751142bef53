// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of long lived goroutines that can be
// stopped together
package background

import (
	"sync"
)

// Process - type signature for background process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle type
type T struct {
	sync.Mutex
	shutdown chan struct{}
	done     sync.WaitGroup
	stopped  bool
}

// Start - start up a set of background processes, all sharing the
// same args
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
	}

	register.done.Add(len(processes))
	for _, p := range processes {
		go func(p Process) {
			defer register.done.Done()
			p.Run(args, register.shutdown)
		}(p)
	}
	return register
}

// Stop - stop a set of background processes and wait for all of
// them to return, safe to call more than once
func (t *T) Stop() {
	if nil == t {
		return
	}

	t.Lock()
	if !t.stopped {
		t.stopped = true
		close(t.shutdown)
	}
	t.Unlock()

	t.done.Wait()
}
