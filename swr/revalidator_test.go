// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package swr_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/background"
	"github.com/bitmark-inc/pokedex/swr"
)

func TestRevalidator(t *testing.T) {
	c := &counting{}
	k := newClock()
	r := swr.New(c.fetch, swr.Options{Now: k.now})
	_ = r.Execute(context.Background())

	trigger := make(chan struct{})
	p := background.Start(background.Processes{
		swr.NewRevalidator(r, trigger, logger.New("testing")),
	}, nil)
	defer p.Stop()

	// too soon, dropped
	trigger <- struct{}{}

	k.advance(3 * time.Second)
	trigger <- struct{}{}

	deadline := time.Now().Add(2 * time.Second)
	for 2 != c.count() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	assert.Equal(t, 2, c.count(), "wrong number of fetches")
}

func TestRevalidatorStopsOnClosedTrigger(t *testing.T) {
	r := swr.New((&counting{}).fetch, swr.Options{})
	trigger := make(chan struct{})
	close(trigger)

	p := background.Start(background.Processes{
		swr.NewRevalidator(r, trigger, logger.New("testing")),
	}, nil)
	p.Stop()
}
